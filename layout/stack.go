// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "seabird.dev/ui/f32"

// Stack overlays children on top of each other. Each axis carries
// its own placement and sizing policy. The zero value fits its
// children and aligns them to the top left.
type Stack struct {
	// XAlign and YAlign place each child within the stack.
	XAlign, YAlign Offset
	// Width and Height are the per-axis sizing policies.
	Width, Height Size
	// Padding is reserved around the content.
	Padding Padding
}

// Centered returns a stack that centers its children on both axes.
func Centered() Stack {
	return Stack{
		XAlign: Offset{Align: Center},
		YAlign: Offset{Align: Center},
	}
}

// Filling returns a centered stack that expands into all available
// space.
func Filling() Stack {
	s := Centered()
	s.Width = Fill()
	s.Height = Fill()
	return s
}

func (s Stack) RequestSize(children []SizeRequest) SizeRequest {
	widths := make([]Range, len(children))
	heights := make([]Range, len(children))
	for i, c := range children {
		widths[i] = c.WidthRange()
		heights[i] = c.HeightRange()
	}
	w := s.Width.Get(widths, MaxRanges)
	h := s.Height.Get(heights, MaxRanges)
	return s.Padding.AdjustRequest(NewSizeRequest(w.Min, h.Min, w.Max, h.Max))
}

func (s Stack) Build(size f32.Point, children []SizeRequest) []Area {
	size = s.Padding.AdjustSize(size)
	areas := make([]Area, len(children))
	for i, c := range children {
		sz := c.Get(size)
		off := f32.Pt(s.XAlign.Get(size.X, sz.X), s.YAlign.Get(size.Y, sz.Y))
		areas[i] = Area{Offset: s.Padding.AdjustOffset(off), Size: sz}
	}
	return areas
}
