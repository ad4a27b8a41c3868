package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rtt/pkg/clipboard"
	"rtt/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's own config out of the tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("RTT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func project(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "proj")
	for name, content := range map[string]string{
		"a/x.py":  "x = 1\n",
		"a/y.txt": "text\n",
		"b/z.py":  "z = 2\n",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRoot_PrintsDocument(t *testing.T) {
	isolate(t)
	root := project(t)

	code, out, errOut := execute(t, root, "PY")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "proj/\n├── a/\n│   └── x.py\n└── b/\n    └── z.py\n\n"+strings.Repeat("=", 40)+"\n\n"))
	assert.Contains(t, out, "// "+filepath.Join("a", "x.py")+"\n\nx = 1\n")
	assert.Contains(t, out, "\n\n"+strings.Repeat("-", 40)+"\n\n// "+filepath.Join("b", "z.py"))
	assert.NotContains(t, out, "y.txt")
}

func TestRoot_TreeFlag(t *testing.T) {
	isolate(t)
	root := project(t)

	code, out, _ := execute(t, root, "--tree")
	require.Equal(t, 0, code)
	assert.Equal(t, "proj/\n├── a/\n│   ├── x.py\n│   └── y.txt\n└── b/\n    └── z.py\n", out)
}

func TestRoot_OutputFlag(t *testing.T) {
	isolate(t)
	root := project(t)
	outFile := filepath.Join(t.TempDir(), "out.txt")

	code, out, _ := execute(t, root, ".py", "-o", outFile)
	require.Equal(t, 0, code)
	assert.Equal(t, "rtt: written to "+outFile+" (2 files)\n", out)
	assert.FileExists(t, outFile)
}

func TestRoot_CopyFlag(t *testing.T) {
	isolate(t)
	root := project(t)
	mem := &clipboard.Memory{}
	orig := newClipboard
	newClipboard = func() clipboard.Writer { return mem }
	t.Cleanup(func() { newClipboard = orig })

	code, out, _ := execute(t, root, "py", "-c")
	require.Equal(t, 0, code)
	assert.Equal(t, "rtt: copied to clipboard (2 files)\n", out)
	assert.Contains(t, mem.Text, "// "+filepath.Join("b", "z.py"))
}

func TestRoot_InvalidPath(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nowhere")

	code, out, errOut := execute(t, missing)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Equal(t, "rtt: error: '"+missing+"' is not a directory\n", errOut)
}

func TestRoot_NoMatches(t *testing.T) {
	isolate(t)
	root := project(t)
	outFile := filepath.Join(t.TempDir(), "out.txt")

	code, _, errOut := execute(t, root, ".rs", "-o", outFile)
	assert.Equal(t, 1, code)
	assert.Equal(t, "rtt: no files found matching criteria.\n", errOut)
	assert.NoFileExists(t, outFile)
}

func TestRoot_MissingPathArgument(t *testing.T) {
	isolate(t)

	code, _, errOut := execute(t)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut, "rtt: error: "), errOut)
}

func TestRoot_ConfigDefaults(t *testing.T) {
	isolate(t)
	root := project(t)
	cfgPath := filepath.Join(t.TempDir(), "rtt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("extensions: [txt]\nskip_dirs: [b]\n"), 0o644))

	code, out, errOut := execute(t, root, "--tree", "--config", cfgPath)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "proj/\n└── a/\n    └── y.txt\n", out)

	// Command-line extensions replace the configured ones.
	code, out, _ = execute(t, root, "py", "--tree", "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.Equal(t, "proj/\n└── a/\n    └── x.py\n", out)
}

func TestRoot_IgnoreFlag(t *testing.T) {
	isolate(t)
	root := project(t)

	code, out, _ := execute(t, root, "--tree", "--ignore", "a/", "--ignore", "*.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "proj/\n└── b/\n    └── z.py\n", out)
}

func TestRoot_BadConfig(t *testing.T) {
	isolate(t)
	root := project(t)
	cfgPath := filepath.Join(t.TempDir(), "rtt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0o644))

	code, _, errOut := execute(t, root, "--config", cfgPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid log_level")
}

func TestVersion(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, "version", "--short")
	require.Equal(t, 0, code)
	assert.Equal(t, version.Version+"\n", out)

	code, out, _ = execute(t, "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "rtt version "+version.Version), out)
}
