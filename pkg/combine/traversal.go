// File: pkg/combine/traversal.go
package combine

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Scan walks root and returns the absolute paths of all matching files.
// At each level the directory's own files come first, sorted by name,
// followed by each kept subdirectory in name order. Skip-listed and dot
// directories are pruned before they are entered; dotfiles are dropped.
// Unreadable directories are skipped without error.
func Scan(root string, opts Options) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	logger := opts.logger()
	logger.Debug("Starting file collection",
		zap.String("root", absRoot),
		zap.Strings("extensions", opts.Extensions))

	var files []string
	scanDir(absRoot, absRoot, opts, logger, &files)

	logger.Debug("Completed file collection", zap.Int("matchedFiles", len(files)))
	return files, nil
}

func scanDir(root, dir string, opts Options, logger *zap.Logger, files *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("Skipping unreadable directory", zap.String("directory", dir), zap.Error(err))
		return
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if IsDirEntry(path, entry) {
			if ShouldSkipDir(name, opts.SkipDirs) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				continue
			}
			if Ignored(opts.Ignore, root, path, true) {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				continue
			}
			// Linked directories are listed but never followed.
			if entry.Type()&fs.ModeSymlink == 0 {
				subdirs = append(subdirs, path)
			}
			continue
		}

		if IsHidden(name) || !opts.Extensions.Matches(name) {
			continue
		}
		if Ignored(opts.Ignore, root, path, false) {
			logger.Debug("Skipping ignored file", zap.String("filePath", path))
			continue
		}
		*files = append(*files, path)
	}

	for _, sub := range subdirs {
		scanDir(root, sub, opts, logger, files)
	}
}

// IsDirEntry reports whether the entry is a directory, following symlinks.
func IsDirEntry(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
