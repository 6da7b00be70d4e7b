package installer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	"github.com/manateeit/spec-kit-assistant/internal/compat"
	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"github.com/manateeit/spec-kit-assistant/internal/scope"
	"golang.org/x/sync/errgroup"
)

// InstallRequest selects where to install.
type InstallRequest struct {
	// WorkingDir is the project directory; empty means the current directory.
	// Ignored for the target path when Global is set, but still used for the
	// compatibility check.
	WorkingDir string
	Global     bool
	// Force overwrites an existing installation without asking.
	Force bool
}

// InstallResult describes the outcome of an install.
type InstallResult struct {
	Scope scope.Scope `json:"scope"`
	Path  string      `json:"path"`
	// Commands lists the installed command names in copy order.
	Commands  []string `json:"commands"`
	Installed int      `json:"installed"`
	// Skipped is true when the user declined to overwrite.
	Skipped bool          `json:"skipped"`
	Compat  compat.Result `json:"compat"`
}

// Install copies every source command file into the scope selected by req.
func (in *Installer) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	sc := scope.FromFlag(req.Global)
	target := in.roots.Resolve(req.WorkingDir, req.Global)
	return in.installAt(ctx, sc, target, in.roots.WorkingDirFor(req.WorkingDir), req.Force)
}

// installAt reconciles target with the source. workingDir is only used for
// the compatibility report.
func (in *Installer) installAt(ctx context.Context, sc scope.Scope, target, workingDir string, force bool) (InstallResult, error) {
	result := InstallResult{Scope: sc, Path: target}

	files, err := in.sourceFiles()
	if err != nil {
		return result, err
	}

	exists, err := fsutil.Exists(target)
	if err != nil {
		return result, err
	}
	if exists && !force {
		if !in.confirm(OverwritePrompt) {
			in.log.Debug("install declined", "path", target)
			result.Skipped = true
			return result, nil
		}
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return result, fmt.Errorf("creating %s: %w", target, err)
	}

	// Compatibility detection shares no state with the copy loop.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := compat.Detect(workingDir)
		if err != nil {
			in.log.Warn("compatibility check failed", "dir", workingDir, "error", err)
			return nil
		}
		result.Compat = res
		return nil
	})
	g.Go(func() error {
		for _, name := range files {
			if err := gctx.Err(); err != nil {
				return err
			}
			in.onCopy(name)
			if err := copyFile(in.source, name, target); err != nil {
				return err
			}
			result.Installed++
			result.Commands = append(result.Commands, commands.CommandName(name))
			in.log.Debug("installed command", "file", name, "path", target)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, err
	}

	return result, nil
}

// sourceFiles lists the command files to install. A missing or empty source
// is fatal and reported before anything is written.
func (in *Installer) sourceFiles() ([]string, error) {
	files, err := fsutil.ListFS(in.source, fsutil.MarkdownExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, in.sourceLabel, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrSourceNotFound, fsutil.MarkdownExt, in.sourceLabel)
	}
	return files, nil
}

// copyFile writes name from src into dir, replacing any existing file of the
// same name. The content goes to a temporary file first and is renamed into
// place so a destination file is never left half written.
func copyFile(src fs.FS, name, dir string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("installing %s: %w", name, err)
	}
	return nil
}
