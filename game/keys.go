package game

import "github.com/sereneful/3980Project/shared"

// Key is an input event already translated from the terminal
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// KeyForRune maps w/a/s/d and q; anything else is KeyNone.
func KeyForRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyNone
}

// Direction is the move a key asks for
func (k Key) Direction() shared.Direction {
	switch k {
	case KeyUp:
		return shared.Up
	case KeyDown:
		return shared.Down
	case KeyLeft:
		return shared.Left
	case KeyRight:
		return shared.Right
	}
	return shared.None
}
