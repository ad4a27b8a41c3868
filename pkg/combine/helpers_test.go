package combine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument(t *testing.T) {
	got := BuildDocument("proj/\n└── a.go", "// a.go\n\npackage a\n")
	assert.Equal(t, "proj/\n└── a.go\n\n"+strings.Repeat("=", 40)+"\n\n// a.go\n\npackage a\n", got)
}

func TestResolveRoot(t *testing.T) {
	dir := t.TempDir()
	abs, err := ResolveRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, abs)

	wd, err := os.Getwd()
	require.NoError(t, err)
	abs, err = ResolveRoot(".")
	require.NoError(t, err)
	assert.Equal(t, wd, abs)

	_, err = ResolveRoot(filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, ErrNotDirectory)
}
