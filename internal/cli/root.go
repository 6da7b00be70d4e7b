// Package cli implements the spec-kit-assistant command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/config"
	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
)

// Command group IDs for organizing help output
const (
	GroupSetup       = "setup"
	GroupMaintenance = "maintenance"
	GroupDevelopment = "development"
)

// annotationProjectDir marks commands whose first argument is a project
// directory; its .spec-kit-assistant config is loaded instead of the cwd's.
const annotationProjectDir = "project-dir-arg"

// app carries state shared by every subcommand of one root command.
type app struct {
	configPath string
	debug      bool
	noColor    bool

	cfg    *config.Configuration
	logger *slog.Logger
}

// newRootCmd builds a fresh command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "spec-kit-assistant",
		Short: "Install Spec Kit Assistant slash commands for Claude Code",
		Long: `spec-kit-assistant installs the Spec Kit Assistant slash commands into
.claude/commands/spec-kit-assistant, either for a single project or globally
in your home directory.

When the project also uses GitHub Spec Kit (a .specify directory), the
commands run in full compatibility mode.

Source: https://github.com/manateeit/spec-kit-assistant`,
		Example: `  # Install into the current project
  spec-kit-assistant install

  # Install for every project
  spec-kit-assistant install --global

  # Show what is installed where
  spec-kit-assistant status

  # Refresh existing installations
  spec-kit-assistant update`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
	}

	a.bindPersistentFlags(cmd)

	cmd.AddGroup(
		&cobra.Group{ID: GroupSetup, Title: "Setup:"},
		&cobra.Group{ID: GroupMaintenance, Title: "Maintenance:"},
		&cobra.Group{ID: GroupDevelopment, Title: "Development:"},
	)

	cmd.AddCommand(
		newInstallCmd(a),
		newStatusCmd(a),
		newUninstallCmd(a),
		newUpdateCmd(a),
		newValidateCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func (a *app) bindPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
}

// setup loads configuration and configures logging and colors.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.applyColor()

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigPath:    a.configPath,
		ProjectDir:    projectDir(cmd, args),
		WarningWriter: cmd.ErrOrStderr(),
	})
	if err != nil {
		path := a.configPath
		if path == "" {
			path = "configuration"
		}
		return clierrors.ConfigParseError(path, err)
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), a.debug || cfg.Debug)
	a.logger.Debug("configuration loaded",
		"namespace", cfg.Namespace,
		"source_dir", cfg.SourceDir,
		"skip_confirmations", cfg.SkipConfirmations,
	)
	return nil
}

func (a *app) applyColor() {
	if a.noColor {
		color.NoColor = true
	}
}

// projectDir returns the [directory] argument of commands annotated with
// annotationProjectDir, else "" (the current directory).
func projectDir(cmd *cobra.Command, args []string) string {
	if cmd.Annotations[annotationProjectDir] == "" {
		return ""
	}
	return directoryArg(args)
}

// newLogger returns a text logger at Debug level when debug is set, else Warn.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return executeWithSignals(newRootCmd())
}

// ExecuteValidateCommands runs the standalone validate-commands command.
func ExecuteValidateCommands() error {
	return executeWithSignals(newValidateCommandsCmd())
}

func executeWithSignals(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, cmd)
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), clierrors.FormatSimpleError(err, clierrors.Argument))
	}
	return err
}
