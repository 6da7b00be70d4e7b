// Package compat detects whether a GitHub Spec Kit installation is present in
// a working directory. The result is informational only.
package compat

import (
	"path/filepath"

	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
)

// Marker paths, relative to the working directory.
const (
	SpecifyDir       = ".specify"
	ConstitutionPath = "memory/constitution.md"
)

// Mode classifies the working directory.
type Mode int

const (
	// Standalone means no Spec Kit was detected.
	Standalone Mode = iota
	// FullCompatibility means a .specify directory was found.
	FullCompatibility
)

// String returns the mode name.
func (m Mode) String() string {
	if m == FullCompatibility {
		return "full"
	}
	return "standalone"
}

// MarshalText renders the mode name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Result is the outcome of Detect.
type Result struct {
	Mode Mode `json:"mode"`
	// HasGovernanceFile is only meaningful in FullCompatibility mode.
	HasGovernanceFile bool `json:"has_constitution"`
}

// Detect inspects workingDir for Spec Kit markers.
func Detect(workingDir string) (Result, error) {
	isDir, err := fsutil.IsDir(filepath.Join(workingDir, SpecifyDir))
	if err != nil {
		return Result{}, err
	}
	if !isDir {
		return Result{Mode: Standalone}, nil
	}

	hasConstitution, err := fsutil.Exists(filepath.Join(workingDir, filepath.FromSlash(ConstitutionPath)))
	if err != nil {
		return Result{}, err
	}
	return Result{Mode: FullCompatibility, HasGovernanceFile: hasConstitution}, nil
}
