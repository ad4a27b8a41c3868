// File: pkg/combine/helpers.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildDocument joins the tree and the merged content with DocumentSeparator.
func BuildDocument(tree, merged string) string {
	return tree + DocumentSeparator + merged
}

// ResolveRoot returns the absolute form of path after checking that it is a
// directory. The error wraps ErrNotDirectory.
func ResolveRoot(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("'%s' is %w", path, ErrNotDirectory)
	}
	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("'%s' is %w", path, ErrNotDirectory)
	}
	return absPath, nil
}
