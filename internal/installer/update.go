package installer

import (
	"context"

	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"github.com/manateeit/spec-kit-assistant/internal/scope"
)

// UpdateResult lists the scopes that were refreshed.
type UpdateResult struct {
	Updated []scope.Scope   `json:"updated"`
	Results []InstallResult `json:"results"`
}

// Found reports whether any installation existed.
func (r UpdateResult) Found() bool {
	return len(r.Updated) > 0
}

// Update force-reinstalls every scope that already has an installation for
// dir. It never creates a scope that is absent. When the project and global
// scopes resolve to the same directory it is copied once and both scopes are
// reported.
func (in *Installer) Update(ctx context.Context, dir string) (UpdateResult, error) {
	dir = in.roots.WorkingDirFor(dir)

	type candidate struct {
		scope scope.Scope
		path  string
	}
	var present []candidate
	for _, sc := range scope.All {
		path := in.roots.ResolveScope(sc, dir)
		exists, err := fsutil.Exists(path)
		if err != nil {
			return UpdateResult{}, err
		}
		if exists {
			present = append(present, candidate{scope: sc, path: path})
		}
	}

	var result UpdateResult
	if len(present) == 0 {
		in.log.Debug("no installation found", "dir", dir)
		return result, nil
	}

	done := make(map[string]bool, len(present))
	for _, c := range present {
		if done[c.path] {
			result.Updated = append(result.Updated, c.scope)
			continue
		}
		res, err := in.installAt(ctx, c.scope, c.path, dir, true)
		if err != nil {
			return result, err
		}
		done[c.path] = true
		result.Updated = append(result.Updated, c.scope)
		result.Results = append(result.Results, res)
	}
	return result, nil
}
