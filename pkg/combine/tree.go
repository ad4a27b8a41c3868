// File: pkg/combine/tree.go
package combine

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// RenderTree draws root and the part of its hierarchy that leads to the
// matched files. Directories without a matched descendant are left out.
// Entries at each level keep the name order of the directory listing.
func RenderTree(root string, matched []string, opts Options) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	logger := opts.logger()

	matchedSet := make(map[string]bool, len(matched))
	relevant := make(map[string]bool)
	for _, file := range matched {
		matchedSet[file] = true
		parent := filepath.Dir(file)
		for parent != absRoot && strings.HasPrefix(parent, absRoot) {
			relevant[parent] = true
			next := filepath.Dir(parent)
			if next == parent {
				break
			}
			parent = next
		}
	}

	lines := []string{filepath.Base(absRoot) + "/"}
	generateTreeRecursively(absRoot, "", matchedSet, relevant, opts, logger, &lines)

	logger.Debug("Rendered tree",
		zap.Int("lines", len(lines)),
		zap.Int("relevantDirs", len(relevant)))
	return strings.Join(lines, "\n")
}

type treeEntry struct {
	name  string
	path  string
	isDir bool
}

// generateTreeRecursively appends one line per kept entry of directory.
func generateTreeRecursively(directory, prefix string, matched, relevant map[string]bool, opts Options, logger *zap.Logger, lines *[]string) {
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		logger.Debug("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return
	}

	var entries []treeEntry
	for _, entry := range dirEntries {
		path := filepath.Join(directory, entry.Name())
		if IsDirEntry(path, entry) {
			if ShouldSkipDir(entry.Name(), opts.SkipDirs) {
				continue
			}
			if relevant[path] {
				entries = append(entries, treeEntry{name: entry.Name(), path: path, isDir: true})
			}
		} else if matched[path] {
			entries = append(entries, treeEntry{name: entry.Name(), path: path})
		}
	}

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir {
			*lines = append(*lines, prefix+connector+entry.name+"/")
			generateTreeRecursively(entry.path, prefix+extension, matched, relevant, opts, logger, lines)
		} else {
			*lines = append(*lines, prefix+connector+entry.name)
		}
	}
}
