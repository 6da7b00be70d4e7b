package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/build"
	"github.com/manateeit/spec-kit-assistant/internal/commands"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, Go version and bundled commands for spec-kit-assistant",
		Example: `  # Show version info
  spec-kit-assistant version

  # Plain output (for scripts)
  spec-kit-assistant version --plain`,
		Args: cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			printPrettyVersion(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")

	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "spec-kit-assistant %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func printPrettyVersion(out io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintln(out, cyan("Spec Kit Assistant"))
	fmt.Fprintln(out)

	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
	for _, item := range info {
		fmt.Fprintf(out, "%s  %s\n", yellow(fmt.Sprintf("%10s", item.label)), item.value)
	}

	if build.IsDevBuild() {
		fmt.Fprintf(out, "%s  %s\n", yellow(fmt.Sprintf("%10s", "Build")), dim("development build (not a release)"))
	}
	if names, err := commands.GetTemplateNames(); err == nil {
		fmt.Fprintf(out, "%s  %s\n", yellow(fmt.Sprintf("%10s", "Commands")), dim(strings.Join(names, ", ")))
	}
}

// truncateCommit shortens a full commit hash to 7 characters.
func truncateCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
