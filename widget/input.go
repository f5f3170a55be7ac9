// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"seabird.dev/ui"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
)

// InputField is a focusable field: a variant table for the frame
// (default, focus, optional hover and error) stacked with the
// editable content. Keyboard events only reach the content while
// the field is focused.
type InputField struct {
	*InputEmitter
	body *inputBody
}

// NewInputField assembles the field. minHeight raises the frame's
// height bound above the content's.
func NewInputField(variants map[string]Drawable, content Drawable, minHeight float32) *InputField {
	body := &inputBody{
		states:  NewEnum(variants, "default"),
		content: content,
	}
	body.Group = Group{
		Layout: &layout.Stack{
			Height: layout.Custom(func(children []layout.Range) layout.Range {
				c := children[1]
				return layout.Range{Min: max32(c.Min, minHeight), Max: max32(c.Max, minHeight)}
			}),
		},
		Items: []Drawable{body.states, content},
	}
	return &InputField{InputEmitter: NewInputEmitter(body), body: body}
}

// SetError toggles the error variant as the resting state.
func (f *InputField) SetError(err bool) { f.body.hasError = err }

// Focused reports whether the field holds keyboard focus.
func (f *InputField) Focused() bool { return f.InputEmitter.Focused() }

// State returns the displayed variant key.
func (f *InputField) State() string { return f.body.states.Active() }

type inputBody struct {
	Group
	states   *Enum
	content  Drawable
	hasError bool
	focused  bool
}

func (b *inputBody) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	resting := "default"
	if b.hasError {
		resting = "error"
	}
	if e, ok := e.(InputEvent); ok {
		switch {
		case e.State == ButtonHovered && e.Active:
			if !b.focused {
				b.states.Display("hover")
			}
		case e.State == ButtonPressed && e.Active:
			ctx.HapticFeedback()
			b.states.Display("focus")
			b.focused = true
		case e.State == ButtonPressed && !e.Active:
			b.focused = false
			b.states.Display(resting)
		default:
			if !b.focused {
				b.states.Display(resting)
			}
		}
	}
	return []event.Event{e}
}
