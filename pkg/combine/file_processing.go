package combine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Merge renders one block per file, in order, and joins them with
// BlockSeparator. Read failures become inline error text.
func Merge(root string, files []string, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	parts := make([]string, 0, len(files))
	for _, file := range files {
		block := ProcessSingleFile(file, absRoot, logger)
		parts = append(parts, "// "+block.Path+"\n\n"+block.Content)
	}

	logger.Debug("Merged files", zap.Int("totalFiles", len(parts)))
	return strings.Join(parts, BlockSeparator) + "\n"
}

// ProcessSingleFile reads a file for merging. It never fails: an unreadable
// file yields "Error reading file: ..." as its content.
func ProcessSingleFile(filePath, parentDir string, logger *zap.Logger) FileContent {
	relativePath, relErr := filepath.Rel(parentDir, filePath)
	if relErr != nil {
		logger.Debug("Unable to determine relative path, using absolute path",
			zap.String("filePath", filePath),
			zap.String("parentDir", parentDir),
			zap.Error(relErr))
		relativePath = filePath
	}

	fileBytes, readErr := os.ReadFile(filePath)
	if readErr != nil {
		logger.Debug("Failed to read file", zap.String("filePath", filePath), zap.Error(readErr))
		return FileContent{
			Path:    relativePath,
			Content: fmt.Sprintf("Error reading file: %v", readErr),
		}
	}

	logger.Debug("Read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return FileContent{
		Path:    relativePath,
		Content: decodeText(fileBytes, ""),
	}
}

// Preview reads at most PreviewLimit bytes of a file. Invalid bytes are
// replaced with U+FFFD and TruncationMarker is appended when the file is
// longer than the limit.
func Preview(filePath string) string {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}
	defer file.Close()

	buf, err := io.ReadAll(io.LimitReader(file, PreviewLimit+1))
	if err != nil {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}

	truncated := len(buf) > PreviewLimit
	if truncated {
		buf = trimPartialRune(buf[:PreviewLimit])
	}

	content := decodeText(buf, string(utf8.RuneError))
	if truncated {
		content += TruncationMarker
	}
	return content
}

// decodeText turns raw bytes into text with universal newlines. Invalid
// UTF-8 sequences are replaced by replacement, which may be empty.
func decodeText(b []byte, replacement string) string {
	text := strings.ToValidUTF8(string(b), replacement)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		c := b[len(b)-i]
		if !utf8.RuneStart(c) {
			continue
		}
		if !utf8.FullRune(b[len(b)-i:]) {
			return b[:len(b)-i]
		}
		break
	}
	return b
}
