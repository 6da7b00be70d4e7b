// Package scope resolves where Spec Kit Assistant commands are installed.
// A scope is either the project (relative to a working directory) or global
// (relative to the user's home directory). Both roots are injected through
// Roots so that callers and tests never read process-global state ad hoc.
package scope

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultNamespace is the sub-directory of .claude/commands that holds the commands.
const DefaultNamespace = "spec-kit-assistant"

// Scope identifies an installation location.
type Scope int

const (
	// Project installs under <workingDir>/.claude/commands/<namespace>.
	Project Scope = iota
	// Global installs under <homeDir>/.claude/commands/<namespace>.
	Global
)

// All lists every scope in reporting order.
var All = []Scope{Project, Global}

// String returns the lowercase scope name.
func (s Scope) String() string {
	switch s {
	case Project:
		return "project"
	case Global:
		return "global"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// MarshalText renders the scope name, which keeps JSON reports readable.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Label returns the display form used in status output,
// e.g. "Project (.claude/commands/spec-kit-assistant)".
func (s Scope) Label(namespace string) string {
	rel := filepath.Join(".claude", "commands", namespaceOrDefault(namespace))
	if s == Global {
		return "Global (" + filepath.Join("~", rel) + ")"
	}
	return "Project (" + rel + ")"
}

// Roots holds the two filesystem roots a scope can be resolved against.
type Roots struct {
	WorkingDir string
	HomeDir    string
	// Namespace overrides DefaultNamespace when non-empty.
	Namespace string
}

// DetectRoots reads the current working directory and home directory.
func DetectRoots() (Roots, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Roots{}, fmt.Errorf("getting working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Roots{}, fmt.Errorf("getting home directory: %w", err)
	}
	return Roots{WorkingDir: wd, HomeDir: home}, nil
}

// FromFlag maps the --global flag to a scope.
func FromFlag(global bool) Scope {
	if global {
		return Global
	}
	return Project
}

// Resolve returns the install directory. When global is true, workingDir is
// ignored. An empty workingDir falls back to r.WorkingDir.
func (r Roots) Resolve(workingDir string, global bool) string {
	if global {
		return r.InstallDir(r.HomeDir)
	}
	if workingDir == "" {
		workingDir = r.WorkingDir
	}
	return r.InstallDir(workingDir)
}

// ResolveScope is Resolve keyed by Scope.
func (r Roots) ResolveScope(s Scope, workingDir string) string {
	return r.Resolve(workingDir, s == Global)
}

// WorkingDirFor returns the directory compatibility checks run against for the
// given scope: the explicit working directory, else r.WorkingDir.
func (r Roots) WorkingDirFor(workingDir string) string {
	if workingDir == "" {
		return r.WorkingDir
	}
	return workingDir
}

// InstallDir joins base with .claude/commands/<namespace>.
func (r Roots) InstallDir(base string) string {
	return filepath.Join(base, ".claude", "commands", namespaceOrDefault(r.Namespace))
}

func namespaceOrDefault(ns string) string {
	if ns == "" {
		return DefaultNamespace
	}
	return ns
}
