package cli

import (
	"errors"

	"github.com/spf13/cobra"

	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
	"github.com/manateeit/spec-kit-assistant/internal/installer"
	"github.com/manateeit/spec-kit-assistant/internal/output"
)

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update [directory]",
		Short: "Refresh installed Spec Kit Assistant commands",
		Long: `Overwrite every existing installation (the project scope of
[directory] and the global scope) with the current commands.

Scopes that are not installed are not created.`,
		Example: `  spec-kit-assistant update
  spec-kit-assistant update ./my-project`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationProjectDir: "true"},
		GroupID:     GroupMaintenance,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := newSpinner(cmd)
			in, err := a.newInstaller(nil, copyProgress(sp))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			output.PrintHeader(out, "Updating Spec Kit Assistant commands...")

			sp.Start("Refreshing installations")
			res, err := in.Update(cmd.Context(), directoryArg(args))
			sp.Stop("", err == nil)
			if err != nil {
				if errors.Is(err, installer.ErrSourceNotFound) {
					return clierrors.SourceCommandsNotFound(a.sourceLabel(), err)
				}
				return clierrors.UpdateFailed(err)
			}

			output.PrintUpdateResult(out, res, a.cfg.Namespace)
			return nil
		},
	}
}
