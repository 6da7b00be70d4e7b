// Package cli tests command execution end to end against temporary directories.
// Related: internal/cli/root.go, internal/installer
// Tags: cli, install, status, uninstall, update, validate

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manateeit/spec-kit-assistant/internal/commands"
	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
)

func init() {
	color.NoColor = true
}

type cliResult struct {
	out    string
	errOut string
	err    error
}

// isolate points HOME and the user config directory at a temp dir and
// returns it. Tests using it cannot run in parallel.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("SKA_YES", "")
	t.Setenv("SKA_SOURCE_DIR", "")
	return home
}

func runCmd(t *testing.T, root *cobra.Command, stdin string, args ...string) cliResult {
	t.Helper()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := execute(context.Background(), root)
	return cliResult{out: out.String(), errOut: errOut.String(), err: err}
}

func run(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	return runCmd(t, newRootCmd(), stdin, args...)
}

func installDir(base string) string {
	return filepath.Join(base, ".claude", "commands", "spec-kit-assistant")
}

func bundledCount(t *testing.T) int {
	t.Helper()
	names, err := commands.GetTemplateNames()
	require.NoError(t, err)
	return len(names)
}

func countMarkdown(t *testing.T, dir string) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	require.NoError(t, err)
	return len(matches)
}

func requireCategory(t *testing.T, err error, want clierrors.ErrorCategory) {
	t.Helper()
	require.Error(t, err)
	cliErr := clierrors.AsCLIError(err)
	require.NotNil(t, cliErr, "expected a CLIError, got %v", err)
	assert.Equal(t, want, cliErr.Category)
}

func TestInstallCmd_Project(t *testing.T) {
	isolate(t)
	project := t.TempDir()

	res := run(t, "", "install", project)
	require.NoError(t, res.err)

	assert.Equal(t, bundledCount(t), countMarkdown(t, installDir(project)))
	assert.Contains(t, res.out, "Installed /ska-start")
	assert.Contains(t, res.out, "Successfully installed")
	assert.Contains(t, res.out, "standalone mode")
	assert.Contains(t, res.out, "Available commands:")
}

func TestInstallCmd_Global(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()

	res := run(t, "", "install", project, "--global")
	require.NoError(t, res.err)

	assert.Equal(t, bundledCount(t), countMarkdown(t, installDir(home)))
	assert.NoDirExists(t, installDir(project))
}

func TestInstallCmd_ExistingInstallation(t *testing.T) {
	tests := map[string]struct {
		stdin      string
		args       []string
		env        map[string]string
		wantPrompt bool
		wantOut    string
	}{
		"declined": {
			stdin:      "n\n",
			wantPrompt: true,
			wantOut:    "Installation cancelled.",
		},
		"empty answer declines": {
			stdin:      "\n",
			wantPrompt: true,
			wantOut:    "Installation cancelled.",
		},
		"confirmed": {
			stdin:      "yes\n",
			wantPrompt: true,
			wantOut:    "Successfully installed",
		},
		"force": {
			args:    []string{"--force"},
			wantOut: "Successfully installed",
		},
		"SKA_YES": {
			env:     map[string]string{"SKA_YES": "1"},
			wantOut: "Successfully installed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			project := t.TempDir()
			target := installDir(project)
			require.NoError(t, os.MkdirAll(target, 0o755))
			marker := filepath.Join(target, "ska-start.md")
			require.NoError(t, os.WriteFile(marker, []byte("old"), 0o644))

			res := run(t, tt.stdin, append([]string{"install", project}, tt.args...)...)
			require.NoError(t, res.err)

			if tt.wantPrompt {
				assert.Contains(t, res.out, "Spec Kit Assistant is already installed. Overwrite? [y/N]: ")
			} else {
				assert.NotContains(t, res.out, "[y/N]")
			}
			assert.Contains(t, res.out, tt.wantOut)

			data, err := os.ReadFile(marker)
			require.NoError(t, err)
			if strings.Contains(tt.wantOut, "cancelled") {
				assert.Equal(t, "old", string(data))
			} else {
				assert.NotEqual(t, "old", string(data))
			}
		})
	}
}

func TestScopeFlags_Conflict(t *testing.T) {
	for _, command := range []string{"install", "uninstall"} {
		t.Run(command, func(t *testing.T) {
			isolate(t)
			project := t.TempDir()

			res := run(t, "", command, project, "--project", "--global")
			requireCategory(t, res.err, clierrors.Argument)
			assert.Contains(t, res.errOut, "--project and --global cannot be used together")
			assert.NoDirExists(t, filepath.Join(project, ".claude"))
		})
	}
}

func TestInstallCmd_SourceDirFromEnv(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	source := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(source, "custom.md"), []byte("---\ndescription: x\n---\n"), 0o644))
	t.Setenv("SKA_SOURCE_DIR", source)

	res := run(t, "", "install", project)
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(installDir(project), "custom.md"))
	assert.Equal(t, 1, countMarkdown(t, installDir(project)))
}

func TestInstallCmd_EmptySourceDir(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	t.Setenv("SKA_SOURCE_DIR", t.TempDir())

	res := run(t, "", "install", project)
	requireCategory(t, res.err, clierrors.NotFound)
	assert.NoDirExists(t, installDir(project))
}

func TestStatusCmd(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	require.NoError(t, run(t, "", "install", project).err)

	res := run(t, "", "status", project)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Project (.claude/commands/spec-kit-assistant): ✓ Installed")
	assert.Contains(t, res.out, "commands available")
	assert.Contains(t, res.out, "Global (~/.claude/commands/spec-kit-assistant): ✗ Not installed")
}

func TestStatusCmd_JSON(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".specify"), 0o755))

	res := run(t, "", "status", project, "--json")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"scope": "project"`)
	assert.Contains(t, res.out, `"scope": "global"`)
	assert.Contains(t, res.out, `"installed": false`)
	assert.Contains(t, res.out, `"mode": "full"`)
	assert.Contains(t, res.out, `"has_constitution": false`)
}

func TestUninstallCmd(t *testing.T) {
	tests := map[string]struct {
		install     bool
		stdin       string
		args        []string
		wantOut     string
		wantRemoved bool
	}{
		"not installed": {
			wantOut: "Spec Kit Assistant is not installed in the specified location.",
		},
		"declined": {
			install: true,
			stdin:   "n\n",
			wantOut: "Uninstall cancelled.",
		},
		"confirmed": {
			install:     true,
			stdin:       "y\n",
			wantOut:     "Successfully uninstalled",
			wantRemoved: true,
		},
		"yes flag": {
			install:     true,
			args:        []string{"--yes"},
			wantOut:     "Successfully uninstalled",
			wantRemoved: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			project := t.TempDir()
			if tt.install {
				require.NoError(t, run(t, "", "install", project).err)
			}

			res := run(t, tt.stdin, append([]string{"uninstall", project}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Contains(t, res.out, tt.wantOut)

			switch {
			case tt.wantRemoved:
				assert.NoDirExists(t, installDir(project))
				assert.DirExists(t, filepath.Join(project, ".claude", "commands"))
			case tt.install:
				assert.DirExists(t, installDir(project))
			default:
				assert.NoDirExists(t, filepath.Join(project, ".claude"))
			}
		})
	}
}

func TestUpdateCmd(t *testing.T) {
	isolate(t)
	project := t.TempDir()

	res := run(t, "", "update", project)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "No Spec Kit Assistant installation found")
	assert.NoDirExists(t, filepath.Join(project, ".claude"))

	require.NoError(t, run(t, "", "install", project).err)
	stale := filepath.Join(installDir(project), "ska-plan.md")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	res = run(t, "", "update", project)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Project (.claude/commands/spec-kit-assistant): updated")
	assert.Contains(t, res.out, "Update completed!")

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestValidateCmd(t *testing.T) {
	good := "---\ndescription: Start\n---\n" + strings.Repeat("Spec Kit Assistant ", 40)

	tests := map[string]struct {
		files    map[string]string
		args     []string
		wantCat  *clierrors.ErrorCategory
		contains []string
	}{
		"all valid": {
			files:    map[string]string{"a.md": good},
			contains: []string{"a.md: Valid", "All 1 commands validated successfully"},
		},
		"missing frontmatter": {
			files:    map[string]string{"a.md": good, "b.md": "# no frontmatter"},
			wantCat:  ptr(clierrors.Validation),
			contains: []string{"b.md: Missing frontmatter", "Command validation failed"},
		},
		"min length override": {
			files:    map[string]string{"a.md": good},
			args:     []string{"--min-length", "5000"},
			contains: []string{"Content seems short", "All 1 commands validated successfully"},
		},
		"branding override": {
			files:    map[string]string{"a.md": good},
			args:     []string{"--branding", "Acme"},
			contains: []string{"Missing Acme branding"},
		},
		"no markdown files": {
			files:   map[string]string{"notes.txt": "x"},
			wantCat: ptr(clierrors.NotFound),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			dir := t.TempDir()
			for file, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
			}

			res := run(t, "", append([]string{"validate", dir}, tt.args...)...)
			if tt.wantCat != nil {
				requireCategory(t, res.err, *tt.wantCat)
			} else {
				require.NoError(t, res.err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, res.out, s)
			}
		})
	}
}

func TestValidateCmd_Bundled(t *testing.T) {
	isolate(t)

	res := run(t, "", "validate")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "bundled commands")
	assert.Contains(t, res.out, "validated successfully")
}

func TestValidateCmd_WatchNeedsDirectory(t *testing.T) {
	isolate(t)

	res := run(t, "", "validate", "--watch")
	requireCategory(t, res.err, clierrors.Argument)
}

func TestValidateCommandsCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.md"), []byte("no frontmatter"), 0o644))

	res := runCmd(t, newValidateCommandsCmd(), "")
	require.NoError(t, res.err)

	res = runCmd(t, newValidateCommandsCmd(), "", dir)
	requireCategory(t, res.err, clierrors.Validation)
	assert.Contains(t, res.out, "x.md: Missing frontmatter")
	assert.Equal(t, ExitFailure, ExitCode(res.err))
}

func TestConfigFlag_Missing(t *testing.T) {
	isolate(t)

	res := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yml"), "status")
	requireCategory(t, res.err, clierrors.Configuration)
	assert.Contains(t, res.errOut, "Configuration Error")
}

func TestConfigFlag_Namespace(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("namespace: ska\n"), 0o644))

	res := run(t, "", "--config", cfgPath, "install", project)
	require.NoError(t, res.err)
	assert.DirExists(t, filepath.Join(project, ".claude", "commands", "ska"))
}

func TestCommands_BlockedCommandsDir(t *testing.T) {
	tests := map[string][]string{
		"install": {"install"},
		"status":  {"status"},
		"update":  {"update"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			project := t.TempDir()
			blocker := filepath.Join(project, ".claude", "commands")
			require.NoError(t, os.MkdirAll(filepath.Dir(blocker), 0o755))
			require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

			res := run(t, "", append(args, project)...)
			requireCategory(t, res.err, clierrors.IO)
			assert.Equal(t, ExitFailure, ExitCode(res.err))
			assert.Contains(t, res.errOut, "I/O Error")
			assert.FileExists(t, blocker)
		})
	}
}

func TestInstallCmd_ProjectConfigFromDirectoryArg(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	cfgPath := filepath.Join(project, ".spec-kit-assistant", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("namespace: custom\n"), 0o644))

	res := run(t, "", "install", project)
	require.NoError(t, res.err)
	assert.DirExists(t, filepath.Join(project, ".claude", "commands", "custom"))
	assert.NoDirExists(t, installDir(project))

	res = run(t, "", "status", project)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, ".claude/commands/custom")
}

func TestUninstallCmd_YesEnv(t *testing.T) {
	tests := map[string]struct {
		value       string
		wantRemoved bool
	}{
		"true":  {value: "true", wantRemoved: true},
		"one":   {value: "1", wantRemoved: true},
		"false": {value: "false"},
		"zero":  {value: "0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			project := t.TempDir()
			require.NoError(t, run(t, "", "install", project).err)

			t.Setenv("SKA_YES", tt.value)
			res := run(t, "n\n", "uninstall", project)
			require.NoError(t, res.err)

			if tt.wantRemoved {
				assert.NoDirExists(t, installDir(project))
				return
			}
			assert.Contains(t, res.out, "Uninstall cancelled.")
			assert.DirExists(t, installDir(project))
		})
	}
}

func TestYesEnv_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("SKA_YES", "maybe")

	res := run(t, "", "status", t.TempDir())
	requireCategory(t, res.err, clierrors.Configuration)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(clierrors.NewIOError("x")))
}

func ptr[T any](v T) *T { return &v }
