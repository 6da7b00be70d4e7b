package installer

import (
	"context"
	"fmt"
	"os"

	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"github.com/manateeit/spec-kit-assistant/internal/scope"
)

// UninstallRequest selects the installation to remove.
type UninstallRequest struct {
	WorkingDir string
	Global     bool
	// Force removes without asking.
	Force bool
}

// UninstallResult describes the outcome of an uninstall.
type UninstallResult struct {
	Scope scope.Scope `json:"scope"`
	Path  string      `json:"path"`
	// Removed is true only when the directory was deleted.
	Removed bool `json:"removed"`
	// NotInstalled is true when there was nothing to remove.
	NotInstalled bool `json:"not_installed"`
}

// Uninstall deletes the install directory of the selected scope after
// confirmation. A missing installation is not an error.
func (in *Installer) Uninstall(ctx context.Context, req UninstallRequest) (UninstallResult, error) {
	target := in.roots.Resolve(req.WorkingDir, req.Global)
	result := UninstallResult{Scope: scope.FromFlag(req.Global), Path: target}

	exists, err := fsutil.Exists(target)
	if err != nil {
		return result, err
	}
	if !exists {
		result.NotInstalled = true
		return result, nil
	}

	if !req.Force && !in.confirm(fmt.Sprintf(removePrompt, target)) {
		in.log.Debug("uninstall declined", "path", target)
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := os.RemoveAll(target); err != nil {
		return result, fmt.Errorf("removing %s: %w", target, err)
	}
	in.log.Debug("uninstalled", "path", target)
	result.Removed = true
	return result, nil
}
