package commands

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// FrontmatterDelimiter opens and closes the YAML block at the top of a command file.
const FrontmatterDelimiter = "---"

// Frontmatter is the YAML header of a command file.
type Frontmatter struct {
	Description  string `yaml:"description"`
	ArgumentHint string `yaml:"argument-hint"`
}

// SplitFrontmatter separates the YAML block between the leading delimiters
// from the body. found is false when content does not start with the
// delimiter or the block is never closed.
func SplitFrontmatter(content []byte) (block, body []byte, found bool) {
	if !bytes.HasPrefix(content, []byte(FrontmatterDelimiter)) {
		return nil, content, false
	}

	rest := content[len(FrontmatterDelimiter):]
	idx := bytes.Index(rest, []byte("\n"+FrontmatterDelimiter))
	if idx < 0 {
		return nil, content, false
	}

	block = rest[:idx]
	body = bytes.TrimLeft(rest[idx+1+len(FrontmatterDelimiter):], "\r\n")
	return block, body, true
}

// ParseFrontmatter decodes the frontmatter of content.
func ParseFrontmatter(content []byte) (Frontmatter, error) {
	block, _, found := SplitFrontmatter(content)
	if !found {
		return Frontmatter{}, fmt.Errorf("missing frontmatter")
	}
	var fm Frontmatter
	if err := yaml.Unmarshal(block, &fm); err != nil {
		return Frontmatter{}, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return fm, nil
}

// ListTemplates reads every command file in fsys, sorted by filename.
func ListTemplates(fsys fs.FS) ([]CommandTemplate, error) {
	files, err := fsutil.ListFS(fsys, fsutil.MarkdownExt)
	if err != nil {
		return nil, err
	}

	templates := make([]CommandTemplate, 0, len(files))
	for _, f := range files {
		content, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		// Metadata is best effort; the validator reports broken frontmatter.
		fm, _ := ParseFrontmatter(content)
		templates = append(templates, CommandTemplate{
			Name:        CommandName(f),
			Filename:    f,
			Description: fm.Description,
			Content:     content,
		})
	}
	return templates, nil
}
