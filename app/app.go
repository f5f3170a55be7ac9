// SPDX-License-Identifier: Unlicense OR MIT

// Package app runs the frame loop: raw input is translated and
// queued, the queue drains through the tree, the tree is measured
// and arranged, and the resulting display list goes to the window
// once scaled to physical pixels. Everything happens on the
// caller's goroutine; the engine is cooperative and single
// threaded.
package app

import (
	"time"

	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/gesture"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/io/router"
	"seabird.dev/ui/io/system"
	"seabird.dev/ui/render"
	"seabird.dev/ui/unit"
	"seabird.dev/ui/widget"
)

// Window is the platform collaborator. It receives physical-pixel
// display lists whenever a frame changes what is on screen.
type Window interface {
	Submit(list render.List)
}

// Engine drives one widget tree against one window.
type Engine struct {
	ctx  *ui.Context
	root widget.Drawable
	win  Window

	translator gesture.Translator
	size       f32.Point
	sized      widget.Sized
	last       render.List
	haveLast   bool
}

// NewEngine ties a context, a tree and a window together.
func NewEngine(ctx *ui.Context, root widget.Drawable, win Window) *Engine {
	return &Engine{ctx: ctx, root: root, win: win}
}

// Context returns the engine's context.
func (e *Engine) Context() *ui.Context { return e.ctx }

// Resize records a new physical window size and scale factor, lays
// the tree out at the new size so dispatch has geometry to hit-test
// against, and forces the next frame to redraw.
func (e *Engine) Resize(physical f32.Point, scale float32) {
	e.ctx.Metric = unit.Metric{Scale: scale}
	e.size = e.ctx.Metric.LogicalPt(physical)
	req := widget.Measure(e.ctx, e.root)
	e.sized = widget.Arrange(e.ctx, e.root, e.size, req)
	e.haveLast = false
}

// Input feeds one raw platform input through the translator and
// queues whatever event it produces.
func (e *Engine) Input(in system.Input) {
	if ev := e.translator.Translate(e.ctx.Metric, in); ev != nil {
		e.ctx.Trigger(ev)
	}
}

// Frame runs one tick: momentum and tick events are queued, the
// queue fully drains through the tree, then the tree is measured,
// arranged and drawn. The display list is submitted only when it
// differs from the previous frame. It reports whether it drew.
func (e *Engine) Frame(now time.Duration) bool {
	e.Input(system.Tick{Time: now})
	e.ctx.Trigger(event.TickEvent{})

	router.Drain(e.ctx, e.root, e.sized)

	req := widget.Measure(e.ctx, e.root)
	e.sized = widget.Arrange(e.ctx, e.root, e.size, req)

	list := e.background()
	widget.Draw(e.ctx, e.root, e.sized, &list)
	physical := list.Scale(e.ctx.Metric)

	if e.haveLast && render.Equal(physical, e.last) {
		return false
	}
	e.last = physical
	e.haveLast = true
	e.win.Submit(physical)
	return true
}

func (e *Engine) background() render.List {
	if e.ctx.Theme == nil {
		return nil
	}
	return render.List{{
		Item: render.Fill{
			Shape: render.Shape{Kind: render.Rectangle, Size: e.size},
			Color: e.ctx.Theme.Colors.Background.Primary,
		},
	}}
}
