// File: pkg/combine/ignore.go
package combine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// DefaultIgnoreFile is looked up in the scanned root.
const DefaultIgnoreFile = ".rttignore"

// SkipDirs lists directory names that are never descended into.
var SkipDirs = map[string]bool{
	".git":          true,
	".svn":          true,
	".hg":           true,
	"node_modules":  true,
	"__pycache__":   true,
	".tox":          true,
	".eggs":         true,
	".mypy_cache":   true,
	".pytest_cache": true,
	"venv":          true,
	".venv":         true,
	"env":           true,
	".idea":         true,
	".vscode":       true,
	".DS_Store":     true,
	"dist":          true,
	"build":         true,
	".next":         true,
}

// IgnoreParser defines the interface for matching paths against ignore patterns.
// Paths are slash-separated and relative to the scanned root.
type IgnoreParser interface {
	MatchesPath(path string) bool
}

// IsHidden reports whether a directory entry name is a dot entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ShouldSkipDir reports whether a directory with this name is pruned.
// Dot directories are always pruned.
func ShouldSkipDir(name string, extra []string) bool {
	if SkipDirs[name] || IsHidden(name) {
		return true
	}
	for _, e := range extra {
		if e == name {
			return true
		}
	}
	return false
}

// CombineIgnore adapts a compiled gitignore to IgnoreParser.
type CombineIgnore struct {
	matcher  *gitignore.GitIgnore
	patterns int
	logger   *zap.Logger
}

// LoadIgnoreFiles compiles the ignore file found in root (if any) together
// with the extra pattern lines. It returns nil when there is nothing to match.
func LoadIgnoreFiles(root, fileName string, lines []string, logger *zap.Logger) (*CombineIgnore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fileName == "" {
		fileName = DefaultIgnoreFile
	}

	var all []string
	ignorePath := filepath.Join(root, fileName)
	content, err := os.ReadFile(ignorePath)
	switch {
	case err == nil:
		all = append(all, strings.Split(string(content), "\n")...)
		logger.Debug("Loaded ignore file", zap.String("file", ignorePath))
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("Ignore file does not exist and will be skipped", zap.String("file", ignorePath))
	default:
		return nil, fmt.Errorf("failed to read ignore file %s: %w", ignorePath, err)
	}
	all = append(all, lines...)

	count := 0
	for _, line := range all {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}

	logger.Debug("Compiled ignore patterns", zap.Int("totalPatterns", count))
	return &CombineIgnore{
		matcher:  gitignore.CompileIgnoreLines(all...),
		patterns: count,
		logger:   logger,
	}, nil
}

// MatchesPath checks if the given path matches any of the ignore patterns.
func (gi *CombineIgnore) MatchesPath(path string) bool {
	if gi == nil || gi.matcher == nil {
		return false
	}
	matched := gi.matcher.MatchesPath(path)
	if matched {
		gi.logger.Debug("Path matches ignore pattern", zap.String("path", path))
	}
	return matched
}

// Len returns the number of active patterns.
func (gi *CombineIgnore) Len() int {
	if gi == nil {
		return 0
	}
	return gi.patterns
}

// Ignored checks path, made relative to root, against gi. Directories get a
// trailing slash so that patterns like "gen/" apply to them.
func Ignored(gi IgnoreParser, root, path string, isDir bool) bool {
	if gi == nil {
		return false
	}
	if c, ok := gi.(*CombineIgnore); ok && c == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return gi.MatchesPath(rel)
}
