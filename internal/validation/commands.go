// Package validation checks Spec Kit Assistant command files for the
// structure Claude Code needs: a leading frontmatter block with a
// description, plus soft checks on length and branding.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Defaults for Options.
const (
	DefaultMinLength = 500
	DefaultBranding  = "Spec Kit Assistant"
)

// ErrNoCommands is returned when the directory is missing or holds no command files.
var ErrNoCommands = errors.New("no command files found")

// Options tunes the soft checks.
type Options struct {
	// MinLength is the character count below which a warning is emitted.
	MinLength int
	// Branding must appear somewhere in the file, else a warning is emitted.
	Branding string
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{MinLength: DefaultMinLength, Branding: DefaultBranding}
}

// FileResult holds the outcome for one command file.
type FileResult struct {
	File     string   `json:"file"`
	Length   int      `json:"length"`
	Failures []string `json:"failures,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Valid is true when the file has no failures. Warnings do not count.
func (r FileResult) Valid() bool {
	return len(r.Failures) == 0
}

// Report aggregates every file in the directory.
type Report struct {
	Source string       `json:"source"`
	Files  []FileResult `json:"files"`
	Valid  bool         `json:"valid"`
}

// FailedCount returns the number of files with at least one failure.
func (r Report) FailedCount() int {
	n := 0
	for _, f := range r.Files {
		if !f.Valid() {
			n++
		}
	}
	return n
}

// WarningCount returns the total number of warnings.
func (r Report) WarningCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Warnings)
	}
	return n
}

// Validate checks every command file at the root of fsys. source labels fsys
// in errors and the report.
func Validate(fsys fs.FS, source string, opts Options) (Report, error) {
	report := Report{Source: source, Valid: true}

	files, err := fsutil.ListFS(fsys, fsutil.MarkdownExt)
	if err != nil {
		return report, fmt.Errorf("%w in %s: %w", ErrNoCommands, source, err)
	}
	if len(files) == 0 {
		return report, fmt.Errorf("%w in %s", ErrNoCommands, source)
	}

	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return report, fmt.Errorf("reading %s: %w", name, err)
		}
		res := CheckFile(name, content, opts)
		if !res.Valid() {
			report.Valid = false
		}
		report.Files = append(report.Files, res)
	}
	return report, nil
}

// CheckFile runs every check against a single file's content.
func CheckFile(name string, content []byte, opts Options) FileResult {
	res := FileResult{File: name, Length: utf8.RuneCount(content)}

	if !bytes.HasPrefix(content, []byte(commands.FrontmatterDelimiter)) {
		res.Failures = append(res.Failures, "Missing frontmatter")
		return res
	}

	if !hasDescription(content) {
		res.Failures = append(res.Failures, "Missing description in frontmatter")
	}

	if opts.MinLength > 0 && res.Length < opts.MinLength {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Content seems short (%d chars)", res.Length))
	}

	if opts.Branding != "" && !bytes.Contains(content, []byte(opts.Branding)) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Missing %s branding", opts.Branding))
	}

	return res
}

// hasDescription reports whether the frontmatter declares a non-empty description.
// A well-formed block is decoded as YAML; an unclosed or unparsable block
// falls back to a plain text search.
func hasDescription(content []byte) bool {
	block, _, found := commands.SplitFrontmatter(content)
	if !found {
		return bytes.Contains(content, []byte("description:"))
	}

	var fm map[string]any
	if err := yaml.Unmarshal(block, &fm); err != nil {
		return bytes.Contains(block, []byte("description:"))
	}
	switch v := fm["description"].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}
