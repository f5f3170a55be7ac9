// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the drawable tree: leaves that draw one
primitive each, containers that place children through a layout
strategy, and the interactive widgets assembled from them.

A frame runs three passes over the tree. Measure walks post-order
collecting size requests, Arrange walks pre-order assigning areas,
and Draw flattens the placed leaves into a display list. Events run
through the same tree before layout, each node handling an event
and deciding what continues to its children.
*/
package widget

import (
	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
	"seabird.dev/ui/render"
)

// Drawable is a node in the tree. OnEvent handles e and returns
// the events that continue toward this node's children; returning
// nothing swallows the event for the whole subtree.
type Drawable interface {
	OnEvent(ctx *ui.Context, e event.Event) []event.Event
}

// Leaf is a terminal drawable: it has no children and draws one
// item at its allotted size.
type Leaf interface {
	Drawable
	RequestSize(ctx *ui.Context) layout.SizeRequest
	Draw(ctx *ui.Context, size f32.Point) render.Item
}

// Container composes an ordered list of children under a layout.
// The child list has fixed arity per node type; container types
// that model a dynamic collection say so explicitly.
type Container interface {
	Drawable
	Children() []Drawable
	RequestSize(ctx *ui.Context, children []layout.SizeRequest) layout.SizeRequest
	Build(ctx *ui.Context, size f32.Point, children []layout.SizeRequest) []layout.Area
}

// Group is the basic container: a layout strategy over an ordered
// child list. Events pass through untouched.
type Group struct {
	Layout layout.Layout
	Items  []Drawable
}

// NewGroup builds a container from a layout and its children.
func NewGroup(l layout.Layout, items ...Drawable) *Group {
	return &Group{Layout: l, Items: items}
}

// Bin wraps a single child under a layout.
func Bin(l layout.Layout, child Drawable) *Group {
	return NewGroup(l, child)
}

func (g *Group) Children() []Drawable { return g.Items }

func (g *Group) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	return []event.Event{e}
}

func (g *Group) RequestSize(ctx *ui.Context, children []layout.SizeRequest) layout.SizeRequest {
	return g.Layout.RequestSize(children)
}

func (g *Group) Build(ctx *ui.Context, size f32.Point, children []layout.SizeRequest) []layout.Area {
	return g.Layout.Build(size, children)
}
