package search

// Key identifies a keyboard key relevant to the overlay.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

// ParseKey maps terminal and DOM key names to a Key.
func ParseKey(name string) Key {
	switch name {
	case "up", "ArrowUp":
		return KeyUp
	case "down", "ArrowDown":
		return KeyDown
	case "enter", "Enter":
		return KeyEnter
	case "esc", "Escape":
		return KeyEscape
	default:
		return KeyOther
	}
}

// State is the mutable part of the overlay: the query and the selection.
type State struct {
	Query    string
	Selected int
}

// Action is the side effect a key press asks the overlay to perform.
type Action int

const (
	ActionNone Action = iota
	ActionNavigate
	ActionClose
)

// Reduce applies key to s given n visible results. It never moves the
// selection below zero or past the last result.
func Reduce(s State, n int, key Key) (State, Action) {
	switch key {
	case KeyDown:
		s.Selected = clamp(s.Selected+1, n)
	case KeyUp:
		s.Selected = clamp(s.Selected-1, n)
	case KeyEnter:
		if n > 0 {
			return s, ActionNavigate
		}
	case KeyEscape:
		return s, ActionClose
	}
	return s, ActionNone
}

func clamp(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Navigator pushes a navigation to a document path.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Focuser moves input focus to the query field.
type Focuser interface {
	Focus()
}

// FocusFunc adapts a function to Focuser.
type FocusFunc func()

func (f FocusFunc) Focus() { f() }

// Scroller brings the i-th visible result into view, scrolling as little
// as possible.
type Scroller interface {
	ScrollIntoView(i int)
}

// ScrollFunc adapts a function to Scroller.
type ScrollFunc func(i int)

func (f ScrollFunc) ScrollIntoView(i int) { f(i) }
