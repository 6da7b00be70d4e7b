package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
	"github.com/manateeit/spec-kit-assistant/internal/installer"
	"github.com/manateeit/spec-kit-assistant/internal/progress"
	"github.com/manateeit/spec-kit-assistant/internal/scope"
)

// newInstaller wires an Installer to the loaded configuration. onCopy may be nil.
func (a *app) newInstaller(confirm installer.ConfirmFunc, onCopy func(name string)) (*installer.Installer, error) {
	roots, err := scope.DetectRoots()
	if err != nil {
		return nil, clierrors.HomeDirUnavailable(err)
	}
	roots.Namespace = a.cfg.Namespace

	source, label := commands.Source(a.cfg.SourceDir)
	return installer.New(installer.Options{
		Roots:       roots,
		Source:      source,
		SourceLabel: label,
		Confirm:     confirm,
		Logger:      a.logger,
		OnCopy:      onCopy,
	}), nil
}

// sourceLabel names the configured command source.
func (a *app) sourceLabel() string {
	_, label := commands.Source(a.cfg.SourceDir)
	return label
}

// sourceTemplates reads the configured command source for the command listing.
func (a *app) sourceTemplates() ([]commands.CommandTemplate, error) {
	source, _ := commands.Source(a.cfg.SourceDir)
	return commands.ListTemplates(source)
}

// copyProgress shows each file name on the spinner.
func copyProgress(sp *progress.Spinner) func(name string) {
	return func(name string) {
		sp.Update("Copying " + name)
	}
}

// installError converts an installer error into a CLIError.
func (a *app) installError(target string, err error) error {
	if errors.Is(err, installer.ErrSourceNotFound) {
		return clierrors.SourceCommandsNotFound(a.sourceLabel(), err)
	}
	return clierrors.InstallFailed(target, err)
}

// scopeFlags validates --project/--global and reports whether global was chosen.
func scopeFlags(command string, project, global bool) (bool, error) {
	if project && global {
		return false, clierrors.ConflictingScopeFlags(command)
	}
	return global, nil
}

// directoryArg returns the optional [directory] argument.
func directoryArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// newSpinner returns a spinner that only animates when cmd writes to a terminal.
func newSpinner(cmd *cobra.Command) *progress.Spinner {
	out := cmd.OutOrStdout()
	caps := progress.TerminalCapabilities{}
	if out == os.Stdout {
		caps = progress.DetectTerminalCapabilities()
	}
	return progress.NewSpinner(out, caps)
}
