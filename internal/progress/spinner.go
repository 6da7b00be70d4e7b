package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerDelay = 100 * time.Millisecond

// Spinner shows activity while files are copied. It is a no-op when the
// output is not a terminal so piped output and tests stay clean.
type Spinner struct {
	out     io.Writer
	caps    TerminalCapabilities
	symbols ProgressSymbols
	s       *spinner.Spinner
}

// NewSpinner creates a spinner writing to out.
func NewSpinner(out io.Writer, caps TerminalCapabilities) *Spinner {
	return &Spinner{
		out:     out,
		caps:    caps,
		symbols: SelectSymbols(caps),
	}
}

// Enabled reports whether the spinner animates.
func (p *Spinner) Enabled() bool {
	return p.caps.IsTTY
}

// Start begins animating with message as the suffix.
func (p *Spinner) Start(message string) {
	if !p.Enabled() {
		return
	}
	if p.s == nil {
		p.s = spinner.New(spinner.CharSets[p.symbols.SpinnerSet], spinnerDelay, spinner.WithWriter(p.out))
	}
	p.s.Suffix = " " + message
	p.s.Start()
}

// Update replaces the message while the spinner runs.
func (p *Spinner) Update(message string) {
	if p.s == nil {
		return
	}
	p.s.Lock()
	p.s.Suffix = " " + message
	p.s.Unlock()
}

// Stop halts the spinner and prints a completion line.
func (p *Spinner) Stop(message string, ok bool) {
	if p.s == nil {
		return
	}
	p.s.Stop()
	p.s = nil

	if message == "" {
		return
	}
	symbol := p.symbols.Checkmark
	if !ok {
		symbol = p.symbols.Failure
	}
	fmt.Fprintf(p.out, "%s %s\n", symbol, message)
}
