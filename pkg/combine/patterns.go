// File: pkg/combine/patterns.go
package combine

import (
	"strings"
)

// ExtensionFilter is a set of lowercase, dot-prefixed suffixes.
// A nil or empty filter matches every file.
type ExtensionFilter []string

// NormalizeExtensions trims, lowercases and dot-prefixes each token.
// Blank tokens are dropped.
func NormalizeExtensions(tokens []string) ExtensionFilter {
	var exts ExtensionFilter
	for _, token := range tokens {
		ext := strings.ToLower(strings.TrimSpace(token))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// ParseExtensionList splits a comma-separated entry such as ".swift, .py".
func ParseExtensionList(text string) ExtensionFilter {
	return NormalizeExtensions(strings.Split(text, ","))
}

// Matches reports whether the file name ends with one of the suffixes.
// Matching is on the raw suffix, so ".gz" also accepts "a.tar.gz".
func (f ExtensionFilter) Matches(name string) bool {
	if len(f) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range f {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
