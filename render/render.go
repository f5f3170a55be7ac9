// SPDX-License-Identifier: Unlicense OR MIT

// Package render defines the display list produced by a draw pass.
// Entries stay in logical units until a backend scales the list to
// physical pixels for submission.
package render

import (
	"image"

	"seabird.dev/ui/f32"
	"seabird.dev/ui/text"
	"seabird.dev/ui/unit"
)

// Color is a straight-alpha sRGB color.
type Color struct {
	R, G, B, A uint8
}

// ShapeKind selects the outline geometry of a Shape.
type ShapeKind uint8

const (
	Rectangle ShapeKind = iota
	RoundedRectangle
	Ellipse
)

// Shape is a filled or stroked outline. A zero Stroke fills the
// shape; a positive Stroke draws only the border at that width.
type Shape struct {
	Kind ShapeKind
	Size f32.Point
	// CornerRadius applies to RoundedRectangle only.
	CornerRadius float32
	Stroke       float32
}

func (s Shape) scale(m unit.Metric) Shape {
	s.Size = m.PhysicalPt(s.Size)
	s.CornerRadius = m.Physical(s.CornerRadius)
	s.Stroke = m.Physical(s.Stroke)
	return s
}

// Item is one drawable primitive.
type Item interface {
	// Bounds is the item extent in its own coordinates.
	Bounds() f32.Point
	// Scale converts the item's dimensions to physical pixels.
	Scale(m unit.Metric) Item
}

// Fill draws a Shape in a solid color.
type Fill struct {
	Shape Shape
	Color Color
}

func (f Fill) Bounds() f32.Point { return f.Shape.Size }

func (f Fill) Scale(m unit.Metric) Item {
	f.Shape = f.Shape.scale(m)
	return f
}

// Image draws Src clipped to Shape. A non-zero Tint multiplies the
// image color.
type Image struct {
	Shape Shape
	Src   image.Image
	Tint  Color
}

func (i Image) Bounds() f32.Point { return i.Shape.Size }

func (i Image) Scale(m unit.Metric) Item {
	i.Shape = i.Shape.scale(m)
	return i
}

// Text draws laid out text in a single face and color.
type Text struct {
	Content    string
	Face       *text.Face
	FontSize   float32
	LineHeight float32
	Color      Color
	// MaxWidth wraps the content; zero disables wrapping.
	MaxWidth float32
}

func (t Text) Bounds() f32.Point {
	if t.Face == nil {
		return f32.Point{}
	}
	lines := t.Face.Layout(t.FontSize, t.MaxWidth, t.Content)
	var w float32
	for _, l := range lines {
		if l.Width > w {
			w = l.Width
		}
	}
	return f32.Pt(w, float32(len(lines))*t.LineHeight)
}

func (t Text) Scale(m unit.Metric) Item {
	t.FontSize = m.Physical(t.FontSize)
	t.LineHeight = m.Physical(t.LineHeight)
	t.MaxWidth = m.Physical(t.MaxWidth)
	return t
}

// Entry places an Item at an absolute offset. A zero Clip leaves
// the item unclipped.
type Entry struct {
	Offset f32.Point
	Clip   f32.Rectangle
	Item   Item
}

// Visible reports whether the entry's bounds intersect its clip.
// Unclipped entries are always visible.
func (e Entry) Visible() bool {
	if e.Clip == (f32.Rectangle{}) {
		return true
	}
	r := f32.Rectangle{Min: e.Offset, Max: e.Offset.Add(e.Item.Bounds())}
	return !r.Intersect(e.Clip).Empty()
}

// List is one frame's display list, in paint order.
type List []Entry

// Scale converts every entry to physical pixels.
func (l List) Scale(m unit.Metric) List {
	out := make(List, len(l))
	for i, e := range l {
		e.Offset = m.PhysicalPt(e.Offset)
		if e.Clip != (f32.Rectangle{}) {
			e.Clip = f32.Rectangle{
				Min: m.PhysicalPt(e.Clip.Min),
				Max: m.PhysicalPt(e.Clip.Max),
			}
		}
		e.Item = e.Item.Scale(m)
		out[i] = e
	}
	return out
}

// Equal reports whether two lists would paint identically. Image
// sources compare by identity.
func Equal(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
