// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"seabird.dev/ui"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
)

// Slider is a horizontal drag control: a background track, a
// foreground fill and a knob, repositioned from the stored value
// on every tick.
type Slider struct {
	*SliderEmitter
	body *sliderBody
}

// NewSlider assembles the slider. callback observes every value
// change, in track-local pixels.
func NewSlider(ctx *ui.Context, start float32, background, foreground, knob Drawable, callback func(*ui.Context, float32)) *Slider {
	knobMin := Measure(ctx, knob).Request.MinWidth()
	bgStack := &layout.Stack{
		YAlign: layout.Offset{Align: layout.Center},
		Width: layout.Custom(func(children []layout.Range) layout.Range {
			return layout.Range{Min: min32(children[0].Min, knobMin), Max: layout.Unbounded}
		}),
		Height: layout.Static(6),
	}
	fgStack := &layout.Stack{Width: layout.Static(30), Height: layout.Static(6)}
	knobStack := &layout.Stack{}

	body := &sliderBody{
		background: Bin(bgStack, background),
		foreground: Bin(fgStack, foreground),
		knob:       Bin(knobStack, knob),
		fgStack:    fgStack,
		knobStack:  knobStack,
		value:      start,
		callback:   callback,
	}
	body.Group = Group{
		Layout: &layout.Stack{YAlign: layout.Offset{Align: layout.Center}},
		Items:  []Drawable{body.background, body.foreground, body.knob},
	}
	return &Slider{SliderEmitter: NewSliderEmitter(body), body: body}
}

// Value returns the current value in track-local pixels.
func (s *Slider) Value() float32 { return s.body.value }

// SetValue moves the slider; the knob follows on the next tick.
func (s *Slider) SetValue(v float32) { s.body.value = v }

type sliderBody struct {
	Group
	background *Group
	foreground *Group
	knob       *Group
	fgStack    *layout.Stack
	knobStack  *layout.Stack
	value      float32
	callback   func(*ui.Context, float32)
}

func (s *sliderBody) trackWidth(ctx *ui.Context) float32 {
	return Measure(ctx, s.background.Items[0]).Request.MaxWidth()
}

func (s *sliderBody) clampTo(ctx *ui.Context, x float32) {
	full := s.trackWidth(ctx)
	s.value = clamp32(x, 0, full)
}

func (s *sliderBody) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	switch e := e.(type) {
	case event.TickEvent:
		full := s.trackWidth(ctx)
		knobHalf := Measure(ctx, s.knob.Items[0]).Request.MinWidth() / 2
		x := clamp32(s.value, 0, full)
		s.knobStack.XAlign = layout.At(max32(x-knobHalf, 0))
		s.fgStack.Width = layout.Static(x)
	case SliderEvent:
		if s.callback != nil {
			s.callback(ctx, s.value)
		}
		s.clampTo(ctx, e.X)
		if e.Started {
			ctx.HapticFeedback()
		}
	}
	return []event.Event{e}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
