package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
	"github.com/manateeit/spec-kit-assistant/internal/output"
	"github.com/manateeit/spec-kit-assistant/internal/validation"
)

type validateFlags struct {
	minLength int
	branding  string
	watch     bool
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [directory]",
		Short: "Check command files for required frontmatter",
		Long: `Validate markdown command files. Without [directory] the commands
that install would copy are checked (the bundled set, or source_dir from
the configuration).

Each file must start with a '---' frontmatter block containing a
description. Short files and files without the branding string produce
warnings. The command exits with status 1 when any file fails.`,
		Example: `  spec-kit-assistant validate
  spec-kit-assistant validate ./commands
  spec-kit-assistant validate ./commands --watch`,
		Args:    cobra.MaximumNArgs(1),
		GroupID: GroupDevelopment,
	}
	bindValidate(cmd, a)
	return cmd
}

// newValidateCommandsCmd builds the standalone validate-commands root command.
func newValidateCommandsCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "validate-commands [directory]",
		Short: "Check command files for required frontmatter",
		Long: `Validate markdown command files in [directory], or the bundled
Spec Kit Assistant commands when no directory is given. Exits with status 1
when any file fails.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
	}
	a.bindPersistentFlags(cmd)
	bindValidate(cmd, a)
	return cmd
}

func bindValidate(cmd *cobra.Command, a *app) {
	var f validateFlags
	cmd.Flags().IntVar(&f.minLength, "min-length", validation.DefaultMinLength, "Warn when a file has fewer characters")
	cmd.Flags().StringVar(&f.branding, "branding", validation.DefaultBranding, "Warn when a file lacks this string")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Re-validate whenever a file in the directory changes")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.runValidate(cmd, args, f)
	}
}

func (a *app) runValidate(cmd *cobra.Command, args []string, f validateFlags) error {
	opts := validation.Options{
		MinLength: a.cfg.Validation.MinLength,
		Branding:  a.cfg.Validation.Branding,
	}
	if cmd.Flags().Changed("min-length") {
		opts.MinLength = f.minLength
	}
	if cmd.Flags().Changed("branding") {
		opts.Branding = f.branding
	}

	dir := directoryArg(args)
	if dir == "" {
		dir = a.cfg.SourceDir
	}
	source, label := commands.Source(dir)

	if !f.watch {
		return a.validateOnce(cmd, source, label, opts)
	}
	if dir == "" {
		return clierrors.WatchNeedsDirectory(cmd.CommandPath())
	}
	return a.watchValidate(cmd, dir, source, label, opts)
}

func (a *app) validateOnce(cmd *cobra.Command, source fs.FS, label string, opts validation.Options) error {
	report, err := validation.Validate(source, label, opts)
	if err != nil {
		if errors.Is(err, validation.ErrNoCommands) {
			return clierrors.SourceCommandsNotFound(label, err)
		}
		return clierrors.CommandsUnreadable(label, err)
	}

	output.PrintValidationReport(cmd.OutOrStdout(), report)
	if !report.Valid {
		return clierrors.ValidationFailed(report.FailedCount())
	}
	return nil
}

// watchValidate validates once, then again after every change until the
// command's context is cancelled. Failures are reported but do not stop the loop.
func (a *app) watchValidate(cmd *cobra.Command, dir string, source fs.FS, label string, opts validation.Options) error {
	out := cmd.OutOrStdout()
	rerun := func() {
		if err := a.validateOnce(cmd, source, label, opts); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), clierrors.FormatSimpleError(err, clierrors.Validation))
		}
		fmt.Fprintf(out, "\nWatching %s for changes (Ctrl+C to stop)...\n", dir)
	}

	if _, err := os.Stat(dir); err != nil {
		return clierrors.SourceCommandsNotFound(label, err)
	}
	rerun()

	err := validation.Watch(cmd.Context(), dir, validation.DefaultDebounce, a.logger, func() {
		output.PrintSeparator(out)
		rerun()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return clierrors.Wrap(err, clierrors.IO)
	}
	return nil
}
