package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manateeit/spec-kit-assistant/internal/config"
	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
)

func TestConfigInitCmd_User(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, ".config", "spec-kit-assistant", "config.yml")

	res := run(t, "", "config", "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Created config at "+want)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultConfigTemplate(), string(data))
	require.NoError(t, config.ValidateYAMLSyntax(want))

	// The written file must load cleanly on the next run.
	require.NoError(t, run(t, "", "status", t.TempDir()).err)
}

func TestConfigInitCmd_Existing(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr bool
	}{
		"kept without force":  {wantErr: true},
		"replaced with force": {args: []string{"--force"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			home := isolate(t)
			path := filepath.Join(home, ".config", "spec-kit-assistant", "config.yml")
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte("namespace: mine\n"), 0o644))

			res := run(t, "", append([]string{"config", "init"}, tt.args...)...)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.wantErr {
				requireCategory(t, res.err, clierrors.Configuration)
				assert.Contains(t, res.errOut, "--force")
				assert.Equal(t, "namespace: mine\n", string(data))
				return
			}
			require.NoError(t, res.err)
			assert.Equal(t, config.GetDefaultConfigTemplate(), string(data))
		})
	}
}

func TestConfigInitCmd_Project(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()

	res := run(t, "", "config", "init", project, "--project")
	require.NoError(t, res.err)

	assert.FileExists(t, filepath.Join(project, ".spec-kit-assistant", "config.yml"))
	assert.NoFileExists(t, filepath.Join(home, ".config", "spec-kit-assistant", "config.yml"))
}

func TestConfigInitCmd_BrokenConfigDoesNotBlock(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "spec-kit-assistant", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("namespace: [unclosed\n"), 0o644))

	requireCategory(t, run(t, "", "status", t.TempDir()).err, clierrors.Configuration)

	res := run(t, "", "config", "init", "--force")
	require.NoError(t, res.err)
	require.NoError(t, run(t, "", "status", t.TempDir()).err)
}

func TestConfigInitCmd_WriteFailure(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	blocker := filepath.Join(project, ".spec-kit-assistant")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	res := run(t, "", "config", "init", project, "--project")
	requireCategory(t, res.err, clierrors.IO)
	assert.FileExists(t, blocker)
}
