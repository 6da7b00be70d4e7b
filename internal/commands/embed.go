package commands

import (
	"embed"
	"io/fs"
	"os"
	"strings"

	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
)

// TemplateFS embeds the Spec Kit Assistant slash commands shipped with the binary.
//
//go:embed *.md
var TemplateFS embed.FS

// BundledLabel names the embedded source in user-facing output.
const BundledLabel = "bundled commands"

// Source returns the filesystem commands are installed from and a label for
// it. An empty dir selects the embedded templates.
func Source(dir string) (fs.FS, string) {
	if dir == "" {
		return TemplateFS, BundledLabel
	}
	return os.DirFS(dir), dir
}

// GetTemplateNames returns a list of all embedded command names (without extension).
func GetTemplateNames() ([]string, error) {
	files, err := fsutil.ListFS(TemplateFS, fsutil.MarkdownExt)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, CommandName(f))
	}
	return names, nil
}

// CommandName derives the slash-command identifier from a filename.
func CommandName(filename string) string {
	return strings.TrimSuffix(filename, fsutil.MarkdownExt)
}
