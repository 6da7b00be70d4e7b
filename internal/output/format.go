// Package output provides terminal output formatting for the spec-kit-assistant CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	headerFmt  = color.New(color.FgBlue, color.Bold).SprintFunc()
	successFmt = color.New(color.FgGreen).SprintFunc()
	boldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	failFmt    = color.New(color.FgRed).SprintFunc()
	warnFmt    = color.New(color.FgYellow).SprintFunc()
	dim        = color.New(color.Faint).SprintFunc()
	cyan       = color.New(color.FgCyan).SprintFunc()
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintHeader prints a bold blue heading line.
func PrintHeader(out io.Writer, text string) {
	fmt.Fprintln(out, headerFmt(text))
}

// PrintSuccess prints a green check mark followed by message.
func PrintSuccess(out io.Writer, message string) {
	fmt.Fprintf(out, "%s %s\n", boldGreen("✓"), successFmt(message))
}

// PrintWarning prints a yellow message.
func PrintWarning(out io.Writer, message string) {
	fmt.Fprintln(out, warnFmt(message))
}

// PrintFailure prints a red cross followed by message.
func PrintFailure(out io.Writer, message string) {
	fmt.Fprintf(out, "%s %s\n", failFmt("✗"), failFmt(message))
}

// PrintDetail prints an indented tree branch in dim text.
func PrintDetail(out io.Writer, message string) {
	fmt.Fprintf(out, "  %s\n", dim("└─ "+message))
}

// PrintSeparator prints a dim rule across the terminal.
func PrintSeparator(out io.Writer) {
	fmt.Fprintln(out, dim(strings.Repeat("─", GetTerminalWidth())))
}
