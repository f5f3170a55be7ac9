// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui is a retained-mode widget toolkit built around two tree
passes per frame: a bottom-up measure pass that aggregates size
requests and a top-down build pass that assigns every widget its
area. Events flow through the same tree before layout runs.

The packages compose from the bottom up: unit and f32 hold the
geometry, layout the sizing strategies, io the event model, widget
the component tree, and app the frame loop tying them together.
*/
package ui

import (
	"reflect"
	"sort"

	"seabird.dev/ui/io/event"
	"seabird.dev/ui/theme"
	"seabird.dev/ui/unit"
)

// Platform describes the host. Widgets consult it to pick between
// touch and pointer interaction patterns.
type Platform struct {
	Mobile bool
	// Haptic fires a short vibration where the hardware has one.
	// A nil Haptic is a no-op.
	Haptic func()
}

// HapticFeedback triggers the platform vibration, if any.
func (c *Context) HapticFeedback() {
	if c.Platform.Haptic != nil {
		c.Platform.Haptic()
	}
}

// Plugin is application-scoped state carried by the Context.
// Every dispatched event is offered to every plugin before the
// widget tree sees it.
type Plugin interface {
	Event(ctx *Context, e event.Event)
}

// Context is threaded through every pass. It owns the pending
// event queue and the plugin registry.
type Context struct {
	Metric   unit.Metric
	Theme    *theme.Theme
	Platform Platform

	events  event.Queue
	plugins map[reflect.Type]Plugin
}

// NewContext builds a context around a theme.
func NewContext(th *theme.Theme, p Platform) *Context {
	return &Context{
		Theme:    th,
		Platform: p,
		plugins:  make(map[reflect.Type]Plugin),
	}
}

// Trigger queues e for the current or next dispatch drain. Calling
// it from an event handler delivers e later in the same drain.
func (c *Context) Trigger(e event.Event) {
	c.events.Push(e)
}

// PopEvent removes and returns the oldest queued event.
func (c *Context) PopEvent() (event.Event, bool) {
	return c.events.Pop()
}

// PendingEvents returns the number of queued events.
func (c *Context) PendingEvents() int {
	return c.events.Len()
}

// OfferToPlugins hands e to every registered plugin, in a stable
// order.
func (c *Context) OfferToPlugins(e event.Event) {
	types := make([]reflect.Type, 0, len(c.plugins))
	for t := range c.plugins {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	for _, t := range types {
		c.plugins[t].Event(c, e)
	}
}

// RegisterPlugin stores p in ctx, replacing any previous plugin of
// the same type.
func RegisterPlugin[P Plugin](ctx *Context, p P) {
	if ctx.plugins == nil {
		ctx.plugins = make(map[reflect.Type]Plugin)
	}
	ctx.plugins[reflect.TypeOf(p)] = p
}

// GetPlugin returns the registered plugin of type P. A missing
// plugin is a programming error and panics.
func GetPlugin[P Plugin](ctx *Context) P {
	var zero P
	p, ok := ctx.plugins[reflect.TypeOf(zero)]
	if !ok {
		panic("ui: plugin not configured: " + reflect.TypeOf(&zero).Elem().String())
	}
	return p.(P)
}
