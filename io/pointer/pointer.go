// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events and their hit-testing
// descent through the drawable tree.
package pointer

import (
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
)

// Kind of a pointer event.
type Kind uint8

const (
	// Press is a pointer press, from touch or mouse button.
	Press Kind = iota
	// Move is pointer motion without a press, or a hover update.
	Move
	// Release completes a press that qualified as a tap: short
	// hold, little travel.
	Release
	// LongRelease completes a press that was held long or dragged
	// far; click-style handlers ignore it.
	LongRelease
	// Scroll carries a scroll delta from wheel, trackpad or drag.
	Scroll
)

// Event is a pointer event. Events forwarded down the tree carry
// positions translated into each receiver's local space; receivers
// that did not claim the hit get a copy with Hit unset and no
// position, so effects such as hover-out and release-outside can
// still fire.
type Event struct {
	Kind Kind
	// Position is the pointer position in the receiver's local
	// coordinates. It is only meaningful when Hit is set.
	Position f32.Point
	// Hit reports whether this copy carries a position, i.e.
	// whether the receiver claimed the hit test.
	Hit bool
	// Delta is the scroll amount for Kind Scroll.
	Delta f32.Point
}

// Pass hit-tests the children in reverse order so that the topmost
// (last drawn) rectangle containing the position claims the event.
// Exactly one child receives the position, translated into its
// local space; all others receive a positionless copy.
func (e Event) Pass(children []f32.Rectangle) []event.Event {
	out := make([]event.Event, len(children))
	claimed := false
	for i := len(children) - 1; i >= 0; i-- {
		c := e
		c.Hit = false
		c.Position = f32.Point{}
		if e.Hit && !claimed && children[i].ContainsStrict(e.Position) {
			claimed = true
			c.Hit = true
			c.Position = e.Position.Sub(children[i].Min)
		}
		out[i] = c
	}
	return out
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	case LongRelease:
		return "LongRelease"
	case Scroll:
		return "Scroll"
	default:
		panic("unreachable")
	}
}
