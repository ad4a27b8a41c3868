package combine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree_FilterScenario(t *testing.T) {
	root := makeTree(t, map[string]string{
		"a/x.py":  "",
		"a/y.txt": "",
		"b/z.py":  "",
	})
	opts := Options{Extensions: NormalizeExtensions([]string{"py"})}

	files, err := Scan(root, opts)
	require.NoError(t, err)

	want := strings.Join([]string{
		"proj/",
		"├── a/",
		"│   └── x.py",
		"└── b/",
		"    └── z.py",
	}, "\n")
	assert.Equal(t, want, RenderTree(root, files, opts))
}

func TestRenderTree_InterleavesByName(t *testing.T) {
	root := makeTree(t, map[string]string{
		"a.py":   "",
		"b/c.py": "",
		"c.py":   "",
	})

	files, err := Scan(root, Options{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"proj/",
		"├── a.py",
		"├── b/",
		"│   └── c.py",
		"└── c.py",
	}, "\n")
	assert.Equal(t, want, RenderTree(root, files, Options{}))
}

func TestRenderTree_DeepContinuationPrefixes(t *testing.T) {
	root := makeTree(t, map[string]string{
		"a/b/c/d.go": "",
		"a/e.go":     "",
		"z.go":       "",
	})

	files, err := Scan(root, Options{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"proj/",
		"├── a/",
		"│   ├── b/",
		"│   │   └── c/",
		"│   │       └── d.go",
		"│   └── e.go",
		"└── z.go",
	}, "\n")
	assert.Equal(t, want, RenderTree(root, files, Options{}))
}

func TestRenderTree_OmitsDirectoriesWithoutMatches(t *testing.T) {
	root := makeTree(t, map[string]string{
		"src/main.go":       "",
		"docs/readme.md":    "",
		"empty/sub/n.txt":   "",
		"node_modules/x.go": "",
	})
	opts := Options{Extensions: ExtensionFilter{".go"}}

	files, err := Scan(root, opts)
	require.NoError(t, err)
	tree := RenderTree(root, files, opts)

	assert.Contains(t, tree, "src/")
	assert.NotContains(t, tree, "docs/")
	assert.NotContains(t, tree, "empty/")
	assert.NotContains(t, tree, "sub/")
	assert.NotContains(t, tree, "node_modules")
}

func TestRenderTree_NoMatchesIsRootOnly(t *testing.T) {
	root := makeTree(t, map[string]string{"notes.txt": ""})

	assert.Equal(t, "proj/", RenderTree(root, nil, Options{}))
}
