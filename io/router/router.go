// SPDX-License-Identifier: Unlicense OR MIT

// Package router dispatches queued events through the drawable
// tree. Hit-test geometry comes from the previous frame's arrange
// pass; the pass decision is re-evaluated at every tree level on
// the way down.
package router

import (
	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/widget"
)

// Drain pops every queued event and dispatches it from the root,
// including follow-ups queued by handlers while draining. It runs
// once per tick, before the measure pass.
func Drain(ctx *ui.Context, root widget.Drawable, sized widget.Sized) {
	for {
		e, ok := ctx.PopEvent()
		if !ok {
			return
		}
		ctx.OfferToPlugins(e)
		Dispatch(ctx, root, sized, e)
	}
}

// Dispatch delivers e to n, then forwards whatever n's handler
// returns to the children n's event chooses.
func Dispatch(ctx *ui.Context, n widget.Drawable, sized widget.Sized, e event.Event) {
	outbox := n.OnEvent(ctx, e)
	if len(outbox) == 0 {
		return
	}
	c, ok := n.(widget.Container)
	if !ok {
		return
	}
	children := c.Children()
	count := len(children)
	if len(sized.Children) < count {
		count = len(sized.Children)
	}
	if count == 0 {
		return
	}
	rects := make([]f32.Rectangle, count)
	for i := 0; i < count; i++ {
		rects[i] = sized.Children[i].Rect()
	}
	for _, out := range outbox {
		passed := out.Pass(rects)
		for i := 0; i < count && i < len(passed); i++ {
			if passed[i] == nil {
				continue
			}
			Dispatch(ctx, children[i], sized.Children[i].Sized, passed[i])
		}
	}
}
