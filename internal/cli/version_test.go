package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manateeit/spec-kit-assistant/internal/build"
)

func TestVersionCmd_Plain(t *testing.T) {
	isolate(t)

	res := run(t, "", "version", "--plain")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "spec-kit-assistant "+build.Version)
	assert.Contains(t, res.out, "commit: "+build.Commit)
	assert.Contains(t, res.out, "go: "+runtime.Version())
}

func TestVersionCmd_Pretty(t *testing.T) {
	var buf bytes.Buffer
	printPrettyVersion(&buf)

	assert.Contains(t, buf.String(), "Spec Kit Assistant")
	assert.Contains(t, buf.String(), "ska-start")
}

func TestVersionCmd_PrettyMarksDevBuild(t *testing.T) {
	orig := build.Version
	t.Cleanup(func() { build.Version = orig })

	build.Version = "dev"
	var buf bytes.Buffer
	printPrettyVersion(&buf)
	assert.Contains(t, buf.String(), "development build")

	build.Version = "v1.2.0"
	buf.Reset()
	printPrettyVersion(&buf)
	assert.NotContains(t, buf.String(), "development build")
	assert.Contains(t, buf.String(), "v1.2.0")
}

func TestTruncateCommit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commit string
		want   string
	}{
		"full hash": {commit: "0123456789abcdef", want: "0123456"},
		"short":     {commit: "abc", want: "abc"},
		"unknown":   {commit: "unknown", want: "unknown"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateCommit(tt.commit))
		})
	}
}
