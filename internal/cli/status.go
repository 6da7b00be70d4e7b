package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
	"github.com/manateeit/spec-kit-assistant/internal/output"
)

func newStatusCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "status [directory]",
		Aliases: []string{"st"},
		Short:   "Show where Spec Kit Assistant is installed (st)",
		Long: `Show the installation state of the project scope of [directory]
(or the current directory) and of the global scope, including the number
of installed commands and whether GitHub Spec Kit was detected.

Nothing is modified.`,
		Example: `  spec-kit-assistant status
  spec-kit-assistant status ./my-project
  spec-kit-assistant status --json`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationProjectDir: "true"},
		GroupID:     GroupMaintenance,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.newInstaller(nil, nil)
			if err != nil {
				return err
			}

			report, err := in.Status(cmd.Context(), directoryArg(args))
			if err != nil {
				return clierrors.StatusFailed(err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			output.PrintStatus(cmd.OutOrStdout(), report, a.cfg.Namespace)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the status report as JSON")

	return cmd
}
