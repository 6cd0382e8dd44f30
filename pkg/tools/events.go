// Package tools drives multi-click construction of primitives and the
// single-object pan/delete operations. It is fed a neutral pointer/key event
// stream, so the state machines have no dependency on any UI toolkit and are
// unit-tested with synthetic events.
package tools

import "github.com/draftcad/draftcad/pkg/geom"

// PointerKind classifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// Button identifies which pointer button an event refers to.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// Contain reports whether all of want are held.
func (m Modifiers) Contain(want Modifiers) bool {
	return m&want == want
}

// PointerEvent is one pointer input in device coordinates.
type PointerEvent struct {
	Kind      PointerKind
	Pos       geom.Point // device pixels
	Button    Button
	Modifiers Modifiers
}

// KeyEvent is one key press.
type KeyEvent struct {
	Name string // "Escape", "Delete", ...
}
