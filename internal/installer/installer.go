// Package installer reconciles installed Spec Kit Assistant commands with the
// bundled source commands. It implements install, status, uninstall and
// update on top of the scope, fsutil and compat packages.
//
// Interactive confirmation is injected as a ConfirmFunc so the reconciliation
// logic never touches a terminal directly.
package installer

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	"github.com/manateeit/spec-kit-assistant/internal/scope"
)

// ErrSourceNotFound is returned when the source holds no command files.
var ErrSourceNotFound = errors.New("source commands not found")

// Prompts shown through ConfirmFunc.
const (
	OverwritePrompt = "Spec Kit Assistant is already installed. Overwrite?"
	removePrompt    = "Remove Spec Kit Assistant from %s?"
)

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(message string) bool

// AlwaysConfirm answers yes to every prompt.
func AlwaysConfirm(string) bool { return true }

// NeverConfirm answers no to every prompt.
func NeverConfirm(string) bool { return false }

// Options configures an Installer.
type Options struct {
	// Roots are the working and home directories scopes resolve against.
	Roots scope.Roots
	// Source holds the command files to install. Defaults to the embedded commands.
	Source fs.FS
	// SourceLabel names Source in errors and logs.
	SourceLabel string
	// Confirm is consulted before overwriting or removing an installation.
	// Defaults to NeverConfirm so a missing prompt never destroys data.
	Confirm ConfirmFunc
	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
	// OnCopy, if set, is called with each file name before it is copied.
	OnCopy func(name string)
}

// Installer performs install, status, uninstall and update operations.
type Installer struct {
	roots       scope.Roots
	source      fs.FS
	sourceLabel string
	confirm     ConfirmFunc
	log         *slog.Logger
	onCopy      func(name string)
}

// New creates an Installer from opts, filling in defaults.
func New(opts Options) *Installer {
	in := &Installer{
		roots:       opts.Roots,
		source:      opts.Source,
		sourceLabel: opts.SourceLabel,
		confirm:     opts.Confirm,
		log:         opts.Logger,
		onCopy:      opts.OnCopy,
	}
	if in.source == nil {
		in.source, in.sourceLabel = commands.Source("")
	}
	if in.sourceLabel == "" {
		in.sourceLabel = "source"
	}
	if in.confirm == nil {
		in.confirm = NeverConfirm
	}
	if in.log == nil {
		in.log = slog.Default()
	}
	if in.onCopy == nil {
		in.onCopy = func(string) {}
	}
	return in
}

// Roots returns the roots the installer resolves scopes against.
func (in *Installer) Roots() scope.Roots {
	return in.roots
}
