package progress

import (
	"os"

	"golang.org/x/term"
)

// ASCIIEnv forces ASCII symbols when set to "1".
const ASCIIEnv = "SKA_ASCII"

// DetectTerminalCapabilities inspects stdout and the NO_COLOR and SKA_ASCII
// environment variables.
func DetectTerminalCapabilities() TerminalCapabilities {
	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	return capabilities(isTTY, os.Getenv("NO_COLOR") != "", os.Getenv(ASCIIEnv) == "1", width)
}

func capabilities(isTTY, noColor, forceASCII bool, width int) TerminalCapabilities {
	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// SelectSymbols returns the symbol set for the given capabilities.
// Unicode: ✓/✗ with braille spinner (set 14). ASCII: [OK]/[FAIL] with |/-\ spinner (set 9).
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return ProgressSymbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: 14,
		}
	}

	return ProgressSymbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9,
	}
}
