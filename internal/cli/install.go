package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/installer"
	"github.com/manateeit/spec-kit-assistant/internal/output"
)

type installFlags struct {
	force   bool
	project bool
	global  bool
}

func newInstallCmd(a *app) *cobra.Command {
	var f installFlags

	cmd := &cobra.Command{
		Use:   "install [directory]",
		Short: "Install Spec Kit Assistant commands",
		Long: `Install the Spec Kit Assistant slash commands into
.claude/commands/spec-kit-assistant.

By default the commands are installed into the project in [directory]
(or the current directory). With --global they go to your home directory
and are available in every project.

An existing installation is only overwritten after confirmation,
unless --force is given or SKA_YES is set. Other files in the install
directory are preserved.`,
		Example: `  spec-kit-assistant install
  spec-kit-assistant install ./my-project
  spec-kit-assistant install --global
  spec-kit-assistant install --force`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationProjectDir: "true"},
		GroupID:     GroupSetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd, args, f)
		},
	}

	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Overwrite an existing installation without asking")
	cmd.Flags().BoolVarP(&f.project, "project", "p", false, "Install into the project directory (default)")
	cmd.Flags().BoolVarP(&f.global, "global", "g", false, "Install into the home directory")

	return cmd
}

func (a *app) runInstall(cmd *cobra.Command, args []string, f installFlags) error {
	global, err := scopeFlags("install", f.project, f.global)
	if err != nil {
		return err
	}

	sp := newSpinner(cmd)
	in, err := a.newInstaller(a.confirmFunc(cmd, func() { sp.Stop("", true) }), copyProgress(sp))
	if err != nil {
		return err
	}

	req := installer.InstallRequest{
		WorkingDir: directoryArg(args),
		Global:     global,
		Force:      f.force,
	}
	target := in.Roots().Resolve(req.WorkingDir, req.Global)

	out := cmd.OutOrStdout()
	output.PrintHeader(out, fmt.Sprintf("Installing Spec Kit Assistant commands to %s...", target))
	fmt.Fprintln(out)

	sp.Start("Copying commands")
	res, err := in.Install(cmd.Context(), req)
	sp.Stop("", err == nil)
	if err != nil {
		return a.installError(target, err)
	}

	output.PrintInstallResult(out, res)
	if res.Skipped {
		return nil
	}
	templates, err := a.sourceTemplates()
	if err != nil {
		a.logger.Warn("listing commands failed", "error", err)
		return nil
	}
	output.PrintAvailableCommands(out, templates)
	return nil
}
