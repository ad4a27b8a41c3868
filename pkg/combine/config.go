// File: pkg/combine/config.go
package combine

import (
	"go.uber.org/zap"
)

// Options controls which files a scan collects.
type Options struct {
	Extensions ExtensionFilter // Suffix filter; empty matches every file.
	SkipDirs   []string        // Directory names pruned in addition to SkipDirs.
	Ignore     IgnoreParser    // Optional gitignore-style matcher, may be nil.
	Logger     *zap.Logger     // Debug output for skipped paths, may be nil.
}

// Arguments holds the command-line arguments for a run.
type Arguments struct {
	Path       string   // Directory to scan, as given by the user.
	Extensions []string // Raw extension tokens, normalized before use.
	Output     string   // Destination file; empty means stdout or clipboard.
	TreeOnly   bool     // Print the tree and skip merging.
	Copy       bool     // Place the document on the clipboard.
	SkipDirs   []string // Extra directory names to prune.
	Ignore     []string // Extra gitignore-style patterns.
	IgnoreFile string   // Name of the ignore file looked up in the root.
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
