package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// style names the colored parts of a formatted error.
type style int

const (
	styleLabel style = iota
	styleCategory
	styleMessage
	styleUsageLabel
	styleUsage
	styleFixLabel
	styleBullet
)

var styles = map[style]*color.Color{
	styleLabel:      color.New(color.FgRed, color.Bold),
	styleCategory:   color.New(color.FgYellow),
	styleMessage:    color.New(color.FgRed),
	styleUsageLabel: color.New(color.FgCyan, color.Bold),
	styleUsage:      color.New(color.FgCyan),
	styleFixLabel:   color.New(color.FgGreen, color.Bold),
	styleBullet:     color.New(color.FgGreen),
}

// painter renders text in a style, or unchanged when plain is set.
type painter struct{ plain bool }

func (p painter) paint(s style, text string) string {
	if p.plain {
		return text
	}
	return styles[s].Sprint(text)
}

// FormatError renders err for the terminal. Colors follow fatih/color's
// detection, so piped output and --no-color stay plain.
func FormatError(err *CLIError) string {
	return render(err, painter{})
}

// render lays out an error as:
//
//	Error [Category]: message
//
//	Usage: ...
//
//	To fix this:
//	  • step
func render(err *CLIError, p painter) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n",
		p.paint(styleLabel, "Error"),
		p.paint(styleCategory, err.Category.String()),
		p.paint(styleMessage, err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", p.paint(styleUsageLabel, "Usage: "), p.paint(styleUsage, err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.paint(styleFixLabel, "To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", p.paint(styleBullet, "•"), step)
		}
	}

	return sb.String()
}

// FormatSimpleError formats any error. A CLIError anywhere in the chain keeps
// its own category and remediation; other errors get category.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}
