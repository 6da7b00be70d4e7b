// Package fsutil provides the read-only filesystem checks used by the
// installer: existence checks and extension-filtered directory listings.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// MarkdownExt is the extension of command files.
const MarkdownExt = ".md"

// Exists reports whether path exists. A missing path is not an error; any
// other stat failure (e.g. permission denied) is returned wrapped.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// ListFiles returns the names of regular files in dir whose name ends in ext,
// sorted by name.
func ListFiles(dir, ext string) ([]string, error) {
	names, err := ListFS(os.DirFS(dir), ext)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	return names, nil
}

// ListFS is ListFiles over the root of an fs.FS.
func ListFS(fsys fs.FS, ext string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	pattern := "*" + ext
	// fs.ReadDir returns entries sorted by filename.
	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if ok {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// CountFiles returns how many files ListFiles would return.
func CountFiles(dir, ext string) (int, error) {
	names, err := ListFiles(dir, ext)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}
