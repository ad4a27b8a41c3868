package session

// Kind distinguishes files from directories.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "folder"
	}
	return "file"
}

// State is the inclusion state of an entry.
type State int

const (
	Unchecked State = iota
	Checked
)

func (s State) String() string {
	if s == Checked {
		return "checked"
	}
	return "unchecked"
}

// Toggled returns the opposite state.
func (s State) Toggled() State {
	if s == Checked {
		return Unchecked
	}
	return Checked
}

// Entry is one node of the selection tree.
type Entry struct {
	Path     string // absolute
	Name     string
	Kind     Kind
	State    State
	Parent   *Entry
	Children []*Entry
}

// Label renders the entry the way a tree view shows it, e.g. "[x] main.go".
func (e *Entry) Label() string {
	box := "[ ]"
	if e.State == Checked {
		box = "[x]"
	}
	if e.Kind == Directory {
		return box + " " + e.Name + "/"
	}
	return box + " " + e.Name
}

// SetState assigns s to e and, for a directory, to every descendant,
// overwriting whatever they held before.
func SetState(e *Entry, s State) {
	e.State = s
	for _, child := range e.Children {
		SetState(child, s)
	}
}

// Toggle flips e and cascades the new state to its descendants.
func Toggle(e *Entry) State {
	next := e.State.Toggled()
	SetState(e, next)
	return next
}

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of that entry.
func Walk(e *Entry, fn func(*Entry) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		Walk(child, fn)
	}
}
