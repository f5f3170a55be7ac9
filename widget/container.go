// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/io/pointer"
	"seabird.dev/ui/layout"
)

// Opt shows or hides a single child. A hidden child leaves the
// tree entirely: it is not measured, built, drawn or dispatched to.
type Opt struct {
	Group
	display bool
}

// NewOpt wraps child, initially shown or hidden.
func NewOpt(child Drawable, display bool) *Opt {
	return &Opt{
		Group:   Group{Layout: &layout.Stack{}, Items: []Drawable{child}},
		display: display,
	}
}

// SetDisplay shows or hides the child.
func (o *Opt) SetDisplay(display bool) { o.display = display }

// Display reports whether the child is shown.
func (o *Opt) Display() bool { return o.display }

// Inner returns the wrapped child, shown or not.
func (o *Opt) Inner() Drawable { return o.Items[0] }

func (o *Opt) Children() []Drawable {
	if !o.display {
		return nil
	}
	return o.Items
}

func (o *Opt) RequestSize(ctx *ui.Context, children []layout.SizeRequest) layout.SizeRequest {
	if !o.display {
		return layout.Fixed(f32.Point{})
	}
	return o.Group.RequestSize(ctx, children)
}

// EitherOr displays exactly one of two children.
type EitherOr struct {
	left  *Opt
	right *Opt
	Group
}

// NewEitherOr shows left initially.
func NewEitherOr(left, right Drawable) *EitherOr {
	l := NewOpt(left, true)
	r := NewOpt(right, false)
	return &EitherOr{
		left:  l,
		right: r,
		Group: Group{Layout: &layout.Stack{}, Items: []Drawable{l, r}},
	}
}

// DisplayLeft switches which child shows.
func (e *EitherOr) DisplayLeft(left bool) {
	e.left.SetDisplay(left)
	e.right.SetDisplay(!left)
}

// Left returns the left child.
func (e *EitherOr) Left() Drawable { return e.left.Inner() }

// Right returns the right child.
func (e *EitherOr) Right() Drawable { return e.right.Inner() }

// Enum maps string keys to children and shows exactly one at a
// time. Switching the active key is a constant-time swap, never a
// rebuild.
type Enum struct {
	Group
	variants map[string]*Opt
	active   string
}

// NewEnum builds the variant table. Keys returns sorted order, so
// the fallback for an unknown start key is deterministic.
func NewEnum(variants map[string]Drawable, start string) *Enum {
	keys := maps.Keys(variants)
	slices.Sort(keys)
	e := &Enum{
		Group:    Group{Layout: &layout.Stack{}},
		variants: make(map[string]*Opt, len(variants)),
	}
	for _, k := range keys {
		opt := NewOpt(variants[k], false)
		e.variants[k] = opt
		e.Items = append(e.Items, opt)
	}
	e.Display(start)
	return e
}

// Display switches the visible variant. An unknown key falls back
// to the first key in sorted order rather than failing.
func (e *Enum) Display(key string) {
	if _, ok := e.variants[key]; !ok {
		keys := maps.Keys(e.variants)
		if len(keys) == 0 {
			return
		}
		slices.Sort(keys)
		key = keys[0]
	}
	for k, opt := range e.variants {
		opt.SetDisplay(k == key)
	}
	e.active = key
}

// Active returns the currently displayed key.
func (e *Enum) Active() string { return e.active }

// Variant returns the child stored under key, or nil.
func (e *Enum) Variant(key string) Drawable {
	opt, ok := e.variants[key]
	if !ok {
		return nil
	}
	return opt.Inner()
}

// AdjustScrollEvent nudges every Scrollable in the subtree it is
// dispatched through. It broadcasts like a tick.
type AdjustScrollEvent struct {
	Delta float32
}

func (a AdjustScrollEvent) Pass(children []f32.Rectangle) []event.Event {
	return event.Broadcast(a, len(children))
}

// Scrollable is a scrolling container. Pointer scroll events that
// hit it and AdjustScrollEvent broadcasts move the offset; children
// draw clipped to its bounds.
type Scrollable struct {
	Group
	scroll *layout.Scroll
}

// NewScrollable wraps items in a vertical scroll region.
func NewScrollable(items ...Drawable) *Scrollable {
	s := layout.VerticalScroll()
	return &Scrollable{
		Group:  Group{Layout: s, Items: items},
		scroll: s,
	}
}

// Scroll exposes the scroll strategy for anchor and offset control.
func (s *Scrollable) Scroll() *layout.Scroll { return s.scroll }

func (s *Scrollable) ClipsChildren() bool { return true }

func (s *Scrollable) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	switch e := e.(type) {
	case pointer.Event:
		if e.Kind == pointer.Scroll && e.Hit {
			s.scroll.AdjustBy(e.Delta.Y)
		}
	case AdjustScrollEvent:
		s.scroll.AdjustBy(e.Delta)
	}
	return []event.Event{e}
}
