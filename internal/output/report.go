package output

import (
	"fmt"
	"io"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	"github.com/manateeit/spec-kit-assistant/internal/compat"
	"github.com/manateeit/spec-kit-assistant/internal/installer"
	"github.com/manateeit/spec-kit-assistant/internal/validation"
)

// PrintInstallResult prints the per-command lines and the summary of an install.
func PrintInstallResult(out io.Writer, res installer.InstallResult) {
	if res.Skipped {
		PrintWarning(out, "Installation cancelled.")
		return
	}
	for _, name := range res.Commands {
		PrintSuccess(out, "Installed /"+name)
	}
	fmt.Fprintln(out)
	PrintCompat(out, res.Compat)
	fmt.Fprintln(out)
	fmt.Fprintln(out, boldGreen(fmt.Sprintf("Successfully installed %d Spec Kit Assistant commands!", res.Installed)))
}

// PrintAvailableCommands prints the command reference shown after an install,
// one line per template with its frontmatter description.
func PrintAvailableCommands(out io.Writer, templates []commands.CommandTemplate) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, cyan("Available commands:"))
	for _, tpl := range templates {
		line := fmt.Sprintf("  %-16s", "/"+tpl.Name)
		if tpl.Description != "" {
			line += " - " + tpl.Description
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
	PrintWarning(out, "Tip: Use these commands in Claude Code to enhance your spec-driven development workflow!")
}

// PrintCompat prints the Spec Kit compatibility section.
func PrintCompat(out io.Writer, res compat.Result) {
	fmt.Fprintln(out, "Spec Kit Compatibility:")
	if res.Mode == compat.FullCompatibility {
		PrintSuccess(out, "GitHub Spec Kit detected - full compatibility mode")
		constitution := warnFmt("Not found")
		if res.HasGovernanceFile {
			constitution = successFmt("Found")
		}
		fmt.Fprintf(out, "  └─ Constitution: %s\n", constitution)
		return
	}
	PrintWarning(out, "GitHub Spec Kit not detected - standalone mode")
	PrintDetail(out, "Commands will work independently of spec-kit workflow")
}

// PrintStatus prints a status report.
func PrintStatus(out io.Writer, report installer.StatusReport, namespace string) {
	PrintHeader(out, "Spec Kit Assistant Status")
	fmt.Fprintln(out)
	for _, st := range report.Scopes {
		state := failFmt("✗ Not installed")
		if st.Installed {
			state = successFmt("✓ Installed")
		}
		fmt.Fprintf(out, "%s: %s\n", st.Scope.Label(namespace), state)
		if st.Installed {
			PrintDetail(out, fmt.Sprintf("%d commands available", st.CommandCount))
		}
	}
	fmt.Fprintln(out)
	PrintCompat(out, report.Compat)
}

// PrintUninstallResult prints the outcome of an uninstall.
func PrintUninstallResult(out io.Writer, res installer.UninstallResult) {
	switch {
	case res.NotInstalled:
		PrintWarning(out, "Spec Kit Assistant is not installed in the specified location.")
	case res.Removed:
		PrintSuccess(out, "Successfully uninstalled Spec Kit Assistant commands.")
	default:
		PrintWarning(out, "Uninstall cancelled.")
	}
}

// PrintUpdateResult prints the outcome of an update.
func PrintUpdateResult(out io.Writer, res installer.UpdateResult, namespace string) {
	if !res.Found() {
		PrintWarning(out, "No Spec Kit Assistant installation found. Run 'spec-kit-assistant install' first.")
		return
	}
	for _, r := range res.Results {
		PrintSuccess(out, fmt.Sprintf("%s: updated %d commands", r.Scope.Label(namespace), r.Installed))
	}
	fmt.Fprintln(out)
	PrintSuccess(out, "Update completed!")
}

// PrintValidationReport prints per-file results and a summary line.
func PrintValidationReport(out io.Writer, report validation.Report) {
	fmt.Fprintf(out, "Validating %d command files in %s...\n", len(report.Files), report.Source)
	for _, f := range report.Files {
		for _, msg := range f.Failures {
			PrintFailure(out, fmt.Sprintf("%s: %s", f.File, msg))
		}
		for _, msg := range f.Warnings {
			PrintWarning(out, fmt.Sprintf("⚠ %s: %s", f.File, msg))
		}
		if f.Valid() {
			PrintSuccess(out, f.File+": Valid")
		}
	}
	fmt.Fprintln(out)
	if report.Valid {
		PrintSuccess(out, fmt.Sprintf("All %d commands validated successfully", len(report.Files)))
		return
	}
	PrintFailure(out, "Command validation failed")
}
