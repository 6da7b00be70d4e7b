package installer

import (
	"context"

	"github.com/manateeit/spec-kit-assistant/internal/compat"
	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"github.com/manateeit/spec-kit-assistant/internal/scope"
)

// ScopeStatus is the derived installation state of one scope.
type ScopeStatus struct {
	Scope        scope.Scope `json:"scope"`
	Path         string      `json:"path"`
	Installed    bool        `json:"installed"`
	CommandCount int         `json:"command_count"`
}

// StatusReport covers both scopes plus the compatibility of the directory.
type StatusReport struct {
	Directory string        `json:"directory"`
	Scopes    []ScopeStatus `json:"scopes"`
	Compat    compat.Result `json:"compat"`
}

// Scope returns the entry for s.
func (r StatusReport) Scope(s scope.Scope) ScopeStatus {
	for _, st := range r.Scopes {
		if st.Scope == s {
			return st
		}
	}
	return ScopeStatus{Scope: s}
}

// Status inspects the project scope of dir and the global scope. An empty dir
// means the current directory. Nothing is modified.
func (in *Installer) Status(ctx context.Context, dir string) (StatusReport, error) {
	dir = in.roots.WorkingDirFor(dir)
	report := StatusReport{Directory: dir}

	for _, sc := range scope.All {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		st, err := scopeStatus(sc, in.roots.ResolveScope(sc, dir))
		if err != nil {
			return report, err
		}
		report.Scopes = append(report.Scopes, st)
	}

	res, err := compat.Detect(dir)
	if err != nil {
		return report, err
	}
	report.Compat = res
	return report, nil
}

func scopeStatus(sc scope.Scope, path string) (ScopeStatus, error) {
	st := ScopeStatus{Scope: sc, Path: path}
	exists, err := fsutil.Exists(path)
	if err != nil || !exists {
		return st, err
	}
	st.Installed = true
	st.CommandCount, err = fsutil.CountFiles(path, fsutil.MarkdownExt)
	return st, err
}
