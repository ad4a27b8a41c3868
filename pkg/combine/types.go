package combine

import (
	"errors"
	"strings"
)

// Constants
const (
	PreviewLimit  = 8192 // Bytes read for a preview
	SeparatorSize = 40   // Width of the block and document separators
)

var (
	// BlockSeparator sits between two merge blocks.
	BlockSeparator = "\n\n" + strings.Repeat("-", SeparatorSize) + "\n\n"
	// DocumentSeparator sits between the tree and the merged content.
	DocumentSeparator = "\n\n" + strings.Repeat("=", SeparatorSize) + "\n\n"
	// TruncationMarker is appended to a preview that hit PreviewLimit.
	TruncationMarker = "\n\n... (preview truncated) ..."
)

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrNoMatches    = errors.New("no files found matching criteria")
)

// FileContent holds one merge block before it is joined.
type FileContent struct {
	Path    string // Path relative to the root
	Content string // Decoded content or an inline error message
}
