// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/google/uuid"

	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/io/key"
	"seabird.dev/ui/io/pointer"
	"seabird.dev/ui/layout"
)

// Emitters sit above an interactive widget's body and convert the
// pointer events that reach them into semantic events for the
// subtree below. One input may fan out into several semantic
// events; follow-ups that must restart from the root go through
// ctx.Trigger instead.

// ButtonState distinguishes the two button event families.
type ButtonState uint8

const (
	// ButtonPressed events carry press/unpress transitions.
	ButtonPressed ButtonState = iota
	// ButtonHovered events carry pointer-over transitions.
	ButtonHovered
)

// ButtonEvent is the semantic event a ButtonEmitter feeds its
// subtree. It broadcasts to all children.
type ButtonEvent struct {
	State  ButtonState
	Active bool
}

func (b ButtonEvent) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(b, len(children))
}

// SelectEvent announces that one member of a selectable group was
// pressed. It is queued at the root so every group member sees it.
type SelectEvent struct {
	ID    uuid.UUID
	Group uuid.UUID
}

func (s SelectEvent) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(s, len(children))
}

// SelectedEvent tells a selectable's subtree whether it is now the
// selected member.
type SelectedEvent struct {
	Selected bool
}

func (s SelectedEvent) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(s, len(children))
}

// SliderEvent carries the pointer x that starts or moves a drag,
// in the slider's local space.
type SliderEvent struct {
	Started bool
	X       float32
}

func (s SliderEvent) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(s, len(children))
}

// InputEvent is the text-input counterpart of ButtonEvent.
type InputEvent struct {
	State  ButtonState
	Active bool
}

func (i InputEvent) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(i, len(children))
}

// ButtonEmitter converts pointer traffic into ButtonEvents. On
// desktop a release inside the bounds restores the hover state; on
// mobile and on releases outside, the press simply ends.
type ButtonEmitter struct {
	Group
}

// NewButtonEmitter stacks the emitter over child.
func NewButtonEmitter(child Drawable) *ButtonEmitter {
	return &ButtonEmitter{Group{Layout: &layout.Stack{}, Items: []Drawable{child}}}
}

func (b *ButtonEmitter) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	pe, ok := e.(pointer.Event)
	if !ok {
		return []event.Event{e}
	}
	switch pe.Kind {
	case pointer.Press:
		if pe.Hit {
			return []event.Event{ButtonEvent{State: ButtonPressed, Active: true}}
		}
		return nil
	case pointer.Move, pointer.Scroll:
		return []event.Event{ButtonEvent{State: ButtonHovered, Active: pe.Hit}}
	case pointer.Release, pointer.LongRelease:
		if !ctx.Platform.Mobile && pe.Hit {
			return []event.Event{ButtonEvent{State: ButtonHovered, Active: true}}
		}
		return []event.Event{ButtonEvent{State: ButtonPressed, Active: false}}
	default:
		return nil
	}
}

// SelectableEmitter gives its subtree a group membership: a press
// queues a SelectEvent for the whole tree, and matching
// SelectEvents come back down as SelectedEvents.
type SelectableEmitter struct {
	Group
	id    uuid.UUID
	group uuid.UUID
}

// NewSelectableEmitter stacks the emitter over child as a member
// of group.
func NewSelectableEmitter(child Drawable, group uuid.UUID) *SelectableEmitter {
	return &SelectableEmitter{
		Group: Group{Layout: &layout.Stack{}, Items: []Drawable{child}},
		id:    uuid.New(),
		group: group,
	}
}

// ID returns the member's own identity.
func (s *SelectableEmitter) ID() uuid.UUID { return s.id }

func (s *SelectableEmitter) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	switch e := e.(type) {
	case pointer.Event:
		if e.Kind == pointer.Press && e.Hit {
			ctx.Trigger(SelectEvent{ID: s.id, Group: s.group})
		}
	case SelectEvent:
		if e.Group == s.group {
			return []event.Event{SelectedEvent{Selected: e.ID == s.id}}
		}
	}
	return []event.Event{e}
}

// SliderEmitter tracks a drag and reports its x coordinate.
type SliderEmitter struct {
	Group
	dragging bool
}

// NewSliderEmitter stacks the emitter over child.
func NewSliderEmitter(child Drawable) *SliderEmitter {
	return &SliderEmitter{Group: Group{Layout: &layout.Stack{}, Items: []Drawable{child}}}
}

func (s *SliderEmitter) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	pe, ok := e.(pointer.Event)
	if !ok {
		return []event.Event{e}
	}
	switch {
	case pe.Kind == pointer.Press && pe.Hit:
		s.dragging = true
		return []event.Event{SliderEvent{Started: true, X: pe.Position.X}}
	case pe.Kind == pointer.Release || pe.Kind == pointer.LongRelease:
		s.dragging = false
		return nil
	case (pe.Kind == pointer.Move || pe.Kind == pointer.Scroll) && pe.Hit && s.dragging:
		return []event.Event{SliderEvent{X: pe.Position.X}}
	default:
		return nil
	}
}

// InputEmitter mirrors ButtonEmitter for text inputs and gates
// keyboard events on focus: key presses only continue into the
// subtree while the input is focused. The raw pointer event rides
// along after the semantic one.
type InputEmitter struct {
	Group
	focused bool
}

// NewInputEmitter stacks the emitter over child.
func NewInputEmitter(child Drawable) *InputEmitter {
	return &InputEmitter{Group: Group{Layout: &layout.Stack{}, Items: []Drawable{child}}}
}

// Focused reports whether the input holds keyboard focus.
func (in *InputEmitter) Focused() bool { return in.focused }

func (in *InputEmitter) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	switch e := e.(type) {
	case pointer.Event:
		var out []event.Event
		switch e.Kind {
		case pointer.Press:
			if e.Hit {
				in.focused = true
				out = append(out, InputEvent{State: ButtonPressed, Active: true})
			} else {
				in.focused = false
				out = append(out, InputEvent{State: ButtonPressed, Active: false})
			}
		case pointer.Move, pointer.Scroll:
			out = append(out, InputEvent{State: ButtonHovered, Active: e.Hit})
		case pointer.Release, pointer.LongRelease:
			if !ctx.Platform.Mobile && e.Hit {
				out = append(out, InputEvent{State: ButtonHovered, Active: true})
			} else {
				out = append(out, InputEvent{State: ButtonPressed, Active: false})
			}
		}
		return append(out, e)
	case key.Event:
		if e.State == key.Pressed && !in.focused {
			return nil
		}
	}
	return []event.Event{e}
}
