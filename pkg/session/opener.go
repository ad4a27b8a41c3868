package session

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener reveals a directory in the system file browser.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) error

// Open calls f(path).
func (f OpenerFunc) Open(path string) error { return f(path) }

// SystemOpener runs the platform's file-browser command and waits for it.
type SystemOpener struct{}

// Open launches open, xdg-open or explorer depending on the OS.
func (SystemOpener) Open(path string) error {
	name, args := openCommand(runtime.GOOS, path)
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("could not open folder %s: %w", path, err)
	}
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "explorer", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
