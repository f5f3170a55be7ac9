// SPDX-License-Identifier: Unlicense OR MIT

/*
Package system defines the raw input primitives delivered by the
host platform layer. The gesture package translates them into the
semantic events consumed by the dispatch pipeline; nothing else in
the engine sees them.

Positions are in physical pixels; the translator converts them to
logical units. Time fields are relative to an undefined base and
only compared against each other.
*/
package system

import (
	"time"

	"seabird.dev/ui/f32"
)

// Input is a raw platform input primitive.
type Input interface {
	ImplementsInput()
}

// Phase of a touch or wheel sequence.
type Phase uint8

const (
	PhaseStarted Phase = iota
	PhaseMoved
	PhaseEnded
	PhaseCancelled
)

// Tick is the periodic frame signal.
type Tick struct {
	Time time.Duration
}

// Touch is a touch contact change.
type Touch struct {
	Position f32.Point
	Phase    Phase
	Time     time.Duration
}

// CursorMoved is mouse cursor motion.
type CursorMoved struct {
	Position f32.Point
	Time     time.Duration
}

// MouseButton is a mouse button transition at the current cursor
// position.
type MouseButton struct {
	Pressed bool
	Time    time.Duration
}

// Wheel is mouse wheel or trackpad scroll motion.
type Wheel struct {
	Phase Phase
	// Delta is the scroll amount. When ByLine is set the delta is
	// in abstract lines, otherwise in physical pixels.
	Delta  f32.Point
	ByLine bool
	Time   time.Duration
}

// Key is a keyboard transition.
type Key struct {
	Name    string
	Pressed bool
	Time    time.Duration
}

func (Tick) ImplementsInput()        {}
func (Touch) ImplementsInput()       {}
func (CursorMoved) ImplementsInput() {}
func (MouseButton) ImplementsInput() {}
func (Wheel) ImplementsInput()       {}
func (Key) ImplementsInput()         {}
