// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"seabird.dev/ui"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
)

// Button is a stateful button assembled from a ButtonEmitter over
// a variant table. The default variant is required; hover, pressed
// and disabled are optional and fall back to default when absent.
type Button struct {
	*ButtonEmitter
	body *buttonBody
}

// NewButton builds a button. onPress selects whether the callback
// runs on press or on release.
func NewButton(variants map[string]Drawable, disabled, onPress bool, callback func(*ui.Context)) *Button {
	start := "default"
	if disabled {
		start = "disabled"
	}
	body := &buttonBody{
		states:   NewEnum(variants, start),
		disabled: disabled,
		onPress:  onPress,
		callback: callback,
	}
	body.Group = Group{Layout: &layout.Stack{}, Items: []Drawable{body.states}}
	return &Button{ButtonEmitter: NewButtonEmitter(body), body: body}
}

// SetDisabled toggles the disabled variant.
func (b *Button) SetDisabled(disabled bool) {
	b.body.disabled = disabled
	if disabled {
		b.body.states.Display("disabled")
	} else {
		b.body.states.Display("default")
	}
}

// Disabled reports the disabled flag.
func (b *Button) Disabled() bool { return b.body.disabled }

// State returns the displayed variant key.
func (b *Button) State() string { return b.body.states.Active() }

type buttonBody struct {
	Group
	states   *Enum
	disabled bool
	onPress  bool
	callback func(*ui.Context)
}

func (b *buttonBody) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	be, ok := e.(ButtonEvent)
	if !ok {
		return nil
	}
	switch {
	case be.State == ButtonHovered && be.Active:
		b.states.Display("hover")
	case be.State == ButtonPressed && be.Active:
		b.states.Display("pressed")
	default:
		b.states.Display("default")
	}
	if !b.disabled && be.State == ButtonPressed && be.Active == b.onPress {
		ctx.HapticFeedback()
		if b.callback != nil {
			b.callback(ctx)
		}
	}
	if b.disabled {
		b.states.Display("disabled")
	}
	return nil
}
