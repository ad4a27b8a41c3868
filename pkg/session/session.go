// Package session is the view-model behind the desktop front end: the
// selected root, the extension entry, the checkbox tree and the actions
// bound to its buttons. It holds no widget code, so every handler can be
// driven from tests.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"rtt/pkg/clipboard"
	"rtt/pkg/combine"
	"rtt/pkg/output"

	"go.uber.org/zap"
)

// DefaultExtensions pre-fills the extension entry.
const DefaultExtensions = ".swift, .py"

var (
	ErrNoRoot          = errors.New("no folder selected")
	ErrNothingSelected = errors.New("no files selected")
	ErrUnknownEntry    = errors.New("entry not in tree")
)

// Settings configures a Session.
type Settings struct {
	Opener     Opener           // defaults to SystemOpener
	Clipboard  clipboard.Writer // defaults to clipboard.System
	Logger     *zap.Logger
	SkipDirs   []string
	Ignore     []string
	IgnoreFile string
}

// Session holds the state of one window.
type Session struct {
	Root          string
	ExtensionText string
	Tree          *Entry

	settings Settings
	logger   *zap.Logger
	index    map[string]*Entry
	matched  int
}

// New creates an empty session with the default extension text.
func New(settings Settings) *Session {
	if settings.Opener == nil {
		settings.Opener = SystemOpener{}
	}
	if settings.Clipboard == nil {
		settings.Clipboard = clipboard.System{}
	}
	logger := settings.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ExtensionText: DefaultExtensions,
		settings:      settings,
		logger:        logger,
		index:         map[string]*Entry{},
	}
}

// SelectRoot makes dir the scanned folder and rescans. It returns the
// number of matching files; zero is not an error.
func (s *Session) SelectRoot(dir string) (int, error) {
	root, err := combine.ResolveRoot(dir)
	if err != nil {
		return 0, err
	}
	s.Root = root
	return s.Scan()
}

// SetExtensions replaces the extension entry text and rescans when a root
// is selected.
func (s *Session) SetExtensions(text string) (int, error) {
	s.ExtensionText = text
	if s.Root == "" {
		return 0, nil
	}
	return s.Scan()
}

// Scan rebuilds the entry tree. Every kept directory is listed, even when
// empty; only matching files are listed, and they start checked.
func (s *Session) Scan() (int, error) {
	if s.Root == "" {
		return 0, ErrNoRoot
	}

	opts := combine.Options{
		Extensions: combine.ParseExtensionList(s.ExtensionText),
		SkipDirs:   s.settings.SkipDirs,
		Logger:     s.logger,
	}
	gi, err := combine.LoadIgnoreFiles(s.Root, s.settings.IgnoreFile, s.settings.Ignore, s.logger)
	if err != nil {
		return 0, err
	}
	if gi != nil {
		opts.Ignore = gi
	}

	files, err := combine.Scan(s.Root, opts)
	if err != nil {
		return 0, err
	}
	matched := make(map[string]bool, len(files))
	for _, f := range files {
		matched[f] = true
	}

	s.index = map[string]*Entry{}
	s.Tree = &Entry{Path: s.Root, Name: filepath.Base(s.Root), Kind: Directory}
	s.index[s.Root] = s.Tree
	s.buildChildren(s.Tree, matched, opts)
	s.matched = len(files)

	s.logger.Debug("Scanned session root",
		zap.String("root", s.Root),
		zap.String("extensions", s.ExtensionText),
		zap.Int("matchedFiles", s.matched))
	return s.matched, nil
}

// buildChildren lists subdirectories first, then matched files, each in
// name order.
func (s *Session) buildChildren(parent *Entry, matched map[string]bool, opts combine.Options) {
	dirEntries, err := os.ReadDir(parent.Path)
	if err != nil {
		s.logger.Debug("Skipping unreadable directory", zap.String("directory", parent.Path), zap.Error(err))
		return
	}

	var dirs, files []*Entry
	linked := map[*Entry]bool{}
	for _, de := range dirEntries {
		path := filepath.Join(parent.Path, de.Name())
		if combine.IsDirEntry(path, de) {
			if combine.ShouldSkipDir(de.Name(), opts.SkipDirs) || combine.Ignored(opts.Ignore, s.Root, path, true) {
				continue
			}
			d := &Entry{Path: path, Name: de.Name(), Kind: Directory, Parent: parent}
			linked[d] = de.Type()&fs.ModeSymlink != 0
			dirs = append(dirs, d)
		} else if matched[path] {
			files = append(files, &Entry{Path: path, Name: de.Name(), Kind: File, State: Checked, Parent: parent})
		}
	}

	for _, d := range dirs {
		parent.Children = append(parent.Children, d)
		s.index[d.Path] = d
		if !linked[d] {
			s.buildChildren(d, matched, opts)
		}
	}
	for _, f := range files {
		parent.Children = append(parent.Children, f)
		s.index[f.Path] = f
	}
}

// Matched returns the number of matching files found by the last scan.
func (s *Session) Matched() int { return s.matched }

// Entry looks up an entry by absolute path.
func (s *Session) Entry(path string) (*Entry, bool) {
	e, ok := s.index[path]
	return e, ok
}

// Toggle flips the entry at path, cascading into directories.
func (s *Session) Toggle(path string) (State, error) {
	e, ok := s.index[path]
	if !ok {
		return Unchecked, fmt.Errorf("%w: %s", ErrUnknownEntry, path)
	}
	next := Toggle(e)
	s.logger.Debug("Toggled entry",
		zap.String("path", path),
		zap.Stringer("kind", e.Kind),
		zap.Stringer("state", next))
	return next, nil
}

// Preview returns the preview pane text for the entry at path.
func (s *Session) Preview(path string) (string, error) {
	e, ok := s.index[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntry, path)
	}
	if e.Kind == Directory {
		return fmt.Sprintf("[Folder: %s]", e.Name), nil
	}
	return combine.Preview(e.Path), nil
}

// Selected returns the checked files in tree order. Directories are never
// part of the selection, whatever their own state.
func (s *Session) Selected() []string {
	var selected []string
	if s.Tree == nil {
		return selected
	}
	Walk(s.Tree, func(e *Entry) bool {
		if e.Kind == File && e.State == Checked {
			selected = append(selected, e.Path)
		}
		return true
	})
	return selected
}

// Generate merges the selected files.
func (s *Session) Generate() (string, error) {
	selected := s.Selected()
	if len(selected) == 0 {
		return "", ErrNothingSelected
	}
	return combine.Merge(s.Root, selected, s.logger), nil
}

// Copy places text on the clipboard.
func (s *Session) Copy(text string) error {
	return s.settings.Clipboard.WriteAll(text)
}

// Export saves text to path.
func (s *Session) Export(path, text string) error {
	return output.WriteFile(path, []byte(text), s.logger)
}

// OpenRoot reveals the selected folder in the file browser.
func (s *Session) OpenRoot() error {
	if s.Root == "" {
		return ErrNoRoot
	}
	if _, err := os.Stat(s.Root); err != nil {
		return fmt.Errorf("could not open folder: %w", err)
	}
	return s.settings.Opener.Open(s.Root)
}
