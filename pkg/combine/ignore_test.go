package combine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipDir(t *testing.T) {
	for name := range SkipDirs {
		assert.True(t, ShouldSkipDir(name, nil), name)
	}
	assert.True(t, ShouldSkipDir(".cache", nil))
	assert.True(t, ShouldSkipDir("vendor", []string{"vendor"}))
	assert.False(t, ShouldSkipDir("vendor", nil))
	assert.False(t, ShouldSkipDir("src", []string{"vendor"}))
}

func TestLoadIgnoreFiles_NothingToMatch(t *testing.T) {
	root := t.TempDir()

	gi, err := LoadIgnoreFiles(root, "", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, gi)

	gi, err = LoadIgnoreFiles(root, "", []string{"", "# only a comment"}, nil)
	require.NoError(t, err)
	assert.Nil(t, gi)
}

func TestLoadIgnoreFiles_MergesFileAndLines(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "custom.ignore"), []byte("*.tmp\n"), 0o644))

	gi, err := LoadIgnoreFiles(root, "custom.ignore", []string{"secrets/"}, nil)
	require.NoError(t, err)
	require.NotNil(t, gi)
	assert.Equal(t, 2, gi.Len())

	assert.True(t, gi.MatchesPath("a/b.tmp"))
	assert.True(t, gi.MatchesPath("secrets/"))
	assert.True(t, gi.MatchesPath("deep/secrets/key.pem"))
	assert.False(t, gi.MatchesPath("main.go"))
}

func TestLoadIgnoreFiles_UnreadableFile(t *testing.T) {
	root := t.TempDir()
	// A directory in place of the ignore file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(root, DefaultIgnoreFile), 0o755))

	_, err := LoadIgnoreFiles(root, "", nil, nil)
	assert.Error(t, err)
}

func TestIgnored(t *testing.T) {
	root := t.TempDir()
	gi, err := LoadIgnoreFiles(root, "", []string{"gen/", "*.log"}, nil)
	require.NoError(t, err)

	assert.True(t, Ignored(gi, root, filepath.Join(root, "gen"), true))
	assert.False(t, Ignored(gi, root, filepath.Join(root, "gen"), false))
	assert.True(t, Ignored(gi, root, filepath.Join(root, "x", "out.log"), false))
	assert.False(t, Ignored(nil, root, filepath.Join(root, "out.log"), false))

	var none *CombineIgnore
	assert.False(t, Ignored(none, root, filepath.Join(root, "out.log"), false))
}
