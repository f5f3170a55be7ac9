// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture translates raw platform input into the semantic
pointer and key events consumed by the dispatch pipeline.

The Translator is a per-session state machine. It classifies touch
sequences into taps and drag releases, folds touch drags, mouse
wheel and trackpad deltas into one scroll event kind so downstream
consumers never distinguish input source, and drives inertial
scrolling after a drag by decaying the release velocity a little on
every tick.
*/
package gesture

import (
	"time"

	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/io/key"
	"seabird.dev/ui/io/pointer"
	"seabird.dev/ui/io/system"
	"seabird.dev/ui/unit"
)

const (
	// A release within tapSlop logical pixels of travel and
	// tapDuration of hold classifies as a tap.
	tapSlop     = 25
	tapDuration = 600 * time.Millisecond

	// Momentum scrolling multiplies the stored speed by flingDecay
	// each tick and disarms below flingCutoff. flingScale converts
	// the drag's release velocity into a per-tick speed.
	flingDecay  = 0.92
	flingCutoff = 0.1
	flingScale  = 0.05

	// Deltas below scrollEpsilon are noise and emit nothing.
	scrollEpsilon = 0.01

	// Line-based wheel deltas advance a fixed fraction per notch.
	wheelLineFactor = 0.2
)

// Translator converts system.Input values into semantic events.
// The zero value is ready to use.
type Translator struct {
	touching bool
	mouse    f32.Point

	start    f32.Point
	hasStart bool

	// last is the previous drag sample, also the accumulator base
	// for wheel sequences.
	last    f32.Point
	hasLast bool

	pressTime time.Duration

	// holdFor arms momentum after a release; speed carries the
	// decaying fling velocity once the first tick computes it.
	holdFor  time.Duration
	armed    bool
	speed    float32
	hasSpeed bool
}

// Translate consumes one raw input and returns the semantic event
// it produces, or nil. Positions are converted to logical units
// through m.
func (t *Translator) Translate(m unit.Metric, in system.Input) event.Event {
	switch in := in.(type) {
	case system.Tick:
		return t.tick()
	case system.Touch:
		return t.touch(m, in)
	case system.CursorMoved:
		pos := m.LogicalPt(in.Position)
		if t.mouse == pos {
			return nil
		}
		t.mouse = pos
		return pointer.Event{Kind: pointer.Move, Position: pos, Hit: true}
	case system.MouseButton:
		kind := pointer.Release
		if in.Pressed {
			kind = pointer.Press
		}
		return pointer.Event{Kind: kind, Position: t.mouse, Hit: true}
	case system.Wheel:
		return t.wheel(m, in)
	case system.Key:
		state := key.Released
		if in.Pressed {
			state = key.Pressed
		}
		return key.Event{Name: in.Name, State: state}
	default:
		return nil
	}
}

func (t *Translator) tick() event.Event {
	if t.touching || !t.armed {
		return nil
	}
	if t.hasSpeed {
		t.speed *= flingDecay
		if abs32(t.speed) < flingCutoff {
			t.armed = false
			t.hasSpeed = false
			t.hasStart = false
			return nil
		}
	} else {
		traveled := t.last.Y - t.start.Y
		secs := float32(t.holdFor.Seconds())
		if secs > 0 {
			t.speed = -(traveled / secs) * flingScale
		}
		t.hasSpeed = true
	}
	if abs32(t.speed) > scrollEpsilon {
		return pointer.Event{
			Kind:     pointer.Scroll,
			Position: t.mouse,
			Hit:      true,
			Delta:    f32.Pt(0, t.speed),
		}
	}
	return nil
}

func (t *Translator) touch(m unit.Metric, in system.Touch) event.Event {
	pos := m.LogicalPt(in.Position)
	var e event.Event
	switch in.Phase {
	case system.PhaseStarted:
		t.armed = false
		t.hasSpeed = false
		t.pressTime = in.Time
		t.last = pos
		t.hasLast = true
		t.touching = true
		t.start = pos
		t.hasStart = true
		e = pointer.Event{Kind: pointer.Press, Position: pos, Hit: true}
	case system.PhaseEnded, system.PhaseCancelled:
		t.touching = false
		t.holdFor = in.Time - t.pressTime
		t.armed = true
		kind := pointer.LongRelease
		if t.hasStart && abs32(pos.Y-t.start.Y) < tapSlop && t.holdFor < tapDuration {
			kind = pointer.Release
		}
		e = pointer.Event{Kind: kind, Position: pos, Hit: true}
	case system.PhaseMoved:
		if !t.hasLast {
			break
		}
		delta := t.last.Sub(pos)
		t.last = pos
		if abs32(delta.X) > scrollEpsilon || abs32(delta.Y) > scrollEpsilon {
			e = pointer.Event{Kind: pointer.Scroll, Position: pos, Hit: true, Delta: delta}
		}
	}
	t.mouse = pos
	return e
}

func (t *Translator) wheel(m unit.Metric, in system.Wheel) event.Event {
	switch in.Phase {
	case system.PhaseStarted:
		// Sequence start resets the accumulator base.
		t.last = f32.Point{}
		t.hasLast = true
		return nil
	case system.PhaseMoved:
		if !t.hasLast {
			return nil
		}
		var d f32.Point
		if in.ByLine {
			d = f32.Pt(sign32(in.Delta.X), sign32(in.Delta.Y)).Mul(wheelLineFactor)
		} else {
			d = m.LogicalPt(in.Delta).Mul(wheelLineFactor)
		}
		delta := t.last.Sub(d)
		if delta == (f32.Point{}) {
			return nil
		}
		return pointer.Event{Kind: pointer.Scroll, Position: t.mouse, Hit: true, Delta: delta}
	default:
		return nil
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
