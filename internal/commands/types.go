// Package commands provides the embedded Spec Kit Assistant command files and
// helpers for reading their metadata.
package commands

// CommandTemplate represents a command file from a source filesystem.
type CommandTemplate struct {
	Name        string // Filename without extension (e.g., "ska-start")
	Filename    string // Filename with extension (e.g., "ska-start.md")
	Description string // Description from YAML frontmatter
	Content     []byte // Raw markdown content
}
