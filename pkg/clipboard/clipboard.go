// Package clipboard places text on the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard helper can be used.
var ErrUnavailable = errors.New("clipboard not available")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the platform clipboard (pbcopy, xclip, xsel, wl-copy, or the
// Windows API).
type System struct{}

// WriteAll copies text. Missing helpers are reported as ErrUnavailable.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard holding the last copied text.
type Memory struct {
	Text string
	Err  error
}

// WriteAll stores text, or returns Err when it is set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
