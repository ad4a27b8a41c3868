// Package output writes generated documents to disk.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// FileMode is the permission of newly created documents.
const FileMode = 0o644

// WriteFile stores data at path, writing through symlinks to the file they
// point at. Regular files are replaced through a temp file and a rename
// under an advisory lock on "<file>.lock", so a reader never sees a partial
// document and two runs never interleave. The lock file is left in place.
// An existing file keeps its permissions. Anything else, such as a device
// or a pipe, is opened and written directly.
func WriteFile(path string, data []byte, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	target, mode, regular, err := resolveTarget(path)
	if err != nil {
		return err
	}
	if !regular {
		logger.Debug("Writing directly to non-regular file", zap.String("path", target))
		return writeDirect(target, data, mode)
	}

	lockPath := target + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", lockPath, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("Failed to release output lock", zap.String("lock", lockPath), zap.Error(err))
		}
	}()

	if err := atomicWrite(target, data, mode); err != nil {
		logger.Debug("Failed to write file", zap.String("path", target), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file",
		zap.String("path", target),
		zap.Int("bytes", len(data)),
		zap.Stringer("mode", mode))
	return nil
}

// resolveTarget follows path to the file that will receive the data. A
// missing path is a new regular file with FileMode.
func resolveTarget(path string) (target string, mode fs.FileMode, regular bool, err error) {
	target = path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	info, err := os.Stat(target)
	switch {
	case err == nil:
		return target, info.Mode().Perm(), info.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return target, FileMode, true, nil
	default:
		return "", 0, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

func writeDirect(path string, data []byte, mode fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}
	return f.Close()
}

func atomicWrite(path string, data []byte, mode fs.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rtt-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}
