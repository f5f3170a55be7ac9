// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "seabird.dev/ui/f32"

// Anchor is the reference point scrolled content is held against.
type Anchor uint8

const (
	// AnchorStart keeps offset zero at the leading edge; growing
	// offsets push content up or left.
	AnchorStart Anchor = iota
	// AnchorEnd keeps offset zero at the trailing edge, for
	// content such as message logs that stick to the bottom.
	AnchorEnd
)

// Direction is the axis a Scroll moves its content along.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// Scroll shifts its children along one axis by a persistent scroll
// offset, clamped each Build to the range the content extent
// allows. The offset is the layout's own cross-frame state; it is
// read and written only from the layout's methods.
type Scroll struct {
	// XAlign and YAlign place children on the non-scrolling axis.
	XAlign, YAlign Offset
	// Width and Height are the per-axis sizing policies.
	Width, Height Size
	// Padding is reserved around the content.
	Padding   Padding
	Anchor    Anchor
	Direction Direction

	offset float32
}

// VerticalScroll returns a scroll layout over the vertical axis
// anchored at the start.
func VerticalScroll() *Scroll {
	return &Scroll{Height: Fill()}
}

// HorizontalScroll returns a scroll layout over the horizontal axis
// anchored at the start.
func HorizontalScroll() *Scroll {
	return &Scroll{Width: Fill(), Direction: Horizontal}
}

// AdjustBy moves the scroll offset by delta, in the direction the
// anchor reads as forward. Clamping happens on the next Build, when
// the content extent is known.
func (s *Scroll) AdjustBy(delta float32) {
	if s.Anchor == AnchorEnd {
		s.offset -= delta
	} else {
		s.offset += delta
	}
}

// Set replaces the scroll offset.
func (s *Scroll) Set(v float32) {
	s.offset = v
}

// Offset returns the current scroll offset.
func (s *Scroll) Offset() float32 {
	return s.offset
}

func (s *Scroll) RequestSize(children []SizeRequest) SizeRequest {
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

func (s *Scroll) Build(size f32.Point, children []SizeRequest) []Area {
	size = s.Padding.AdjustSize(size)

	var extent, viewport float32
	for _, c := range children {
		if s.Direction == Horizontal {
			extent += c.MinWidth()
		} else {
			extent += c.MinHeight()
		}
	}
	if s.Direction == Horizontal {
		viewport = size.X
	} else {
		viewport = size.Y
	}
	maxScroll := max32(extent-viewport, 0)
	s.offset = min32(max32(s.offset, 0), maxScroll)

	areas := make([]Area, len(children))
	for i, c := range children {
		sz := c.Get(size)
		var off f32.Point
		if s.Direction == Horizontal {
			x := s.XAlign.Get(size.X, sz.X) - s.offset
			if s.Anchor == AnchorEnd {
				x = size.X - extent + s.offset
			}
			off = f32.Pt(x, s.YAlign.Get(size.Y, sz.Y))
		} else {
			y := s.YAlign.Get(size.Y, sz.Y) - s.offset
			if s.Anchor == AnchorEnd {
				y = size.Y - extent + s.offset
			}
			off = f32.Pt(s.XAlign.Get(size.X, sz.X), y)
		}
		areas[i] = Area{Offset: s.Padding.AdjustOffset(off), Size: sz}
	}
	return areas
}
