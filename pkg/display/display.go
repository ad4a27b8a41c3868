// Package display prints rtt's one-line status messages.
package display

import (
	"fmt"
	"io"
	"os"

	"rtt/pkg/version"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Prefix starts every status line.
const Prefix = version.Name + ": "

// Printer writes status lines, colored when the writer is a terminal.
type Printer struct {
	out      io.Writer
	useColor bool
}

// New returns a Printer for w. Color is used only for terminal files and
// honors NO_COLOR through color.NoColor.
func New(w io.Writer) *Printer {
	return &Printer{out: w, useColor: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success prints a confirmation such as "rtt: written to out.txt (3 files)".
func (p *Printer) Success(format string, args ...any) {
	p.print(color.FgGreen, format, args...)
}

// Warn prints a recoverable condition.
func (p *Printer) Warn(format string, args ...any) {
	p.print(color.FgYellow, format, args...)
}

// Error prints a fatal condition.
func (p *Printer) Error(format string, args ...any) {
	p.print(color.FgRed, format, args...)
}

func (p *Printer) print(attr color.Attribute, format string, args ...any) {
	msg := Prefix + fmt.Sprintf(format, args...)
	if p.useColor {
		c := color.New(attr)
		c.EnableColor()
		msg = c.Sprint(msg)
	}
	fmt.Fprintln(p.out, msg)
}
