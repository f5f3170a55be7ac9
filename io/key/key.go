// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events.
package key

import (
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
)

// Names for keys without a character representation.
const (
	NameEnter     = "⏎"
	NameEscape    = "⎋"
	NameBackspace = "⌫"
	NameDelete    = "⌦"
	NameTab       = "⇥"
	NameSpace     = "Space"
	NameLeftArrow = "←"
	NameRightArrow = "→"
	NameUpArrow   = "↑"
	NameDownArrow = "↓"
	NameShift     = "⇧"
	NameCapsLock  = "⇪"
)

// State is the direction of a key transition.
type State uint8

const (
	Pressed State = iota
	Released
)

// Event is a key press or release. It broadcasts to every child;
// focus gating is performed by interested handlers, not by routing.
type Event struct {
	// Name is the character produced by the key, or one of the
	// Name constants.
	Name  string
	State State
}

func (e Event) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(e, len(children))
}

func (s State) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}
