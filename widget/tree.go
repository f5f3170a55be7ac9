// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/layout"
	"seabird.dev/ui/render"
)

// RequestTree is the result of the measure pass: one node's request
// plus its children's, in child order. It lives for a single frame.
type RequestTree struct {
	Request  layout.SizeRequest
	Children []RequestTree
}

// Sized is the result of the arrange pass: the size granted to one
// node and the placed children below it. Event dispatch hit-tests
// against the previous frame's Sized tree.
type Sized struct {
	Size     f32.Point
	Children []SizedChild
}

// SizedChild is a placed child: its offset in the parent's local
// space and its own subtree.
type SizedChild struct {
	Offset f32.Point
	Sized  Sized
}

// Rect returns the child's rectangle in the parent's local space.
func (c SizedChild) Rect() f32.Rectangle {
	return f32.Rectangle{Min: c.Offset, Max: c.Offset.Add(c.Sized.Size)}
}

// Clipper marks containers that confine their children's drawing
// to their own bounds.
type Clipper interface {
	ClipsChildren() bool
}

// Measure runs the post-order measure pass from n.
func Measure(ctx *ui.Context, n Drawable) RequestTree {
	switch n := n.(type) {
	case Container:
		children := n.Children()
		tree := RequestTree{Children: make([]RequestTree, len(children))}
		reqs := make([]layout.SizeRequest, len(children))
		for i, c := range children {
			tree.Children[i] = Measure(ctx, c)
			reqs[i] = tree.Children[i].Request
		}
		tree.Request = n.RequestSize(ctx, reqs)
		return tree
	case Leaf:
		return RequestTree{Request: n.RequestSize(ctx)}
	default:
		return RequestTree{Request: layout.Expand()}
	}
}

// Arrange runs the pre-order build pass: n receives size, places
// its children and recurses with each child's granted size.
func Arrange(ctx *ui.Context, n Drawable, size f32.Point, req RequestTree) Sized {
	s := Sized{Size: size}
	c, ok := n.(Container)
	if !ok {
		return s
	}
	children := c.Children()
	reqs := make([]layout.SizeRequest, len(req.Children))
	for i, t := range req.Children {
		reqs[i] = t.Request
	}
	areas := c.Build(ctx, size, reqs)
	n2 := len(areas)
	if len(children) < n2 {
		n2 = len(children)
	}
	s.Children = make([]SizedChild, n2)
	for i := 0; i < n2; i++ {
		s.Children[i] = SizedChild{
			Offset: areas[i].Offset,
			Sized:  Arrange(ctx, children[i], areas[i].Size, req.Children[i]),
		}
	}
	return s
}

// Draw flattens the tree into a display list. Leaves translated by
// the accumulated offset are appended in tree order; subtrees that
// fall fully outside the active clip are culled.
func Draw(ctx *ui.Context, n Drawable, s Sized, list *render.List) {
	draw(ctx, n, s, f32.Point{}, f32.Rectangle{}, list)
}

func draw(ctx *ui.Context, n Drawable, s Sized, offset f32.Point, clip f32.Rectangle, list *render.List) {
	if leaf, ok := n.(Leaf); ok {
		e := render.Entry{Offset: offset, Clip: clip, Item: leaf.Draw(ctx, s.Size)}
		if e.Visible() {
			*list = append(*list, e)
		}
		return
	}
	c, ok := n.(Container)
	if !ok {
		return
	}
	if cl, ok := n.(Clipper); ok && cl.ClipsChildren() {
		own := f32.Rectangle{Min: offset, Max: offset.Add(s.Size)}
		if clip == (f32.Rectangle{}) {
			clip = own
		} else {
			clip = clip.Intersect(own)
		}
		if clip.Empty() {
			return
		}
	}
	children := c.Children()
	for i, sc := range s.Children {
		if i >= len(children) {
			break
		}
		at := offset.Add(sc.Offset)
		if clip != (f32.Rectangle{}) {
			r := f32.Rectangle{Min: at, Max: at.Add(sc.Sized.Size)}
			if r.Intersect(clip).Empty() {
				continue
			}
		}
		draw(ctx, children[i], sc.Sized, at, clip, list)
	}
}
