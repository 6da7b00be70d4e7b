package cli

import (
	"github.com/spf13/cobra"

	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
	"github.com/manateeit/spec-kit-assistant/internal/installer"
	"github.com/manateeit/spec-kit-assistant/internal/output"
)

type uninstallFlags struct {
	project bool
	global  bool
	yes     bool
}

func newUninstallCmd(a *app) *cobra.Command {
	var f uninstallFlags

	cmd := &cobra.Command{
		Use:   "uninstall [directory]",
		Short: "Remove Spec Kit Assistant commands",
		Long: `Remove the .claude/commands/spec-kit-assistant directory of the
selected scope after confirmation. The .claude/commands directory itself
and any other commands in it are left alone.`,
		Example: `  spec-kit-assistant uninstall
  spec-kit-assistant uninstall --global
  spec-kit-assistant uninstall ./my-project --yes`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationProjectDir: "true"},
		GroupID:     GroupMaintenance,
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := scopeFlags("uninstall", f.project, f.global)
			if err != nil {
				return err
			}

			in, err := a.newInstaller(a.confirmFunc(cmd, nil), nil)
			if err != nil {
				return err
			}

			req := installer.UninstallRequest{
				WorkingDir: directoryArg(args),
				Global:     global,
				Force:      f.yes,
			}
			res, err := in.Uninstall(cmd.Context(), req)
			if err != nil {
				return clierrors.UninstallFailed(res.Path, err)
			}

			output.PrintUninstallResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&f.project, "project", "p", false, "Remove the project installation (default)")
	cmd.Flags().BoolVarP(&f.global, "global", "g", false, "Remove the global installation")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Remove without asking for confirmation")

	return cmd
}
