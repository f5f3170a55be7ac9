// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "seabird.dev/ui/f32"

// Row lays out children horizontally with fixed spacing between
// them. Widths sum along the row; the height applies the Height
// policy across it. Surplus width is shared by uniform expansion.
type Row struct {
	// Spacing is the gap between adjacent children.
	Spacing float32
	// Align places each child vertically within the row.
	Align Offset
	// Height is the sizing policy for the cross axis.
	Height Size
	// Padding is reserved around the content.
	Padding Padding
}

// RowOf returns a row with the given spacing and vertical
// alignment.
func RowOf(spacing float32, align Alignment) Row {
	return Row{Spacing: spacing, Align: Offset{Align: align}}
}

func (r Row) RequestSize(children []SizeRequest) SizeRequest {
	if len(children) == 0 {
		return r.Padding.AdjustRequest(SizeRequest{})
	}
	widths := make([]Range, len(children))
	heights := make([]Range, len(children))
	for i, c := range children {
		widths[i] = c.WidthRange()
		heights[i] = c.HeightRange()
	}
	spacing := r.Spacing * float32(len(children)-1)
	w := SumRanges(widths)
	h := r.Height.Get(heights, MaxRanges)
	return r.Padding.AdjustRequest(
		NewSizeRequest(w.Min, h.Min, w.Max, h.Max).AddWidth(spacing))
}

func (r Row) Build(size f32.Point, children []SizeRequest) []Area {
	size = r.Padding.AdjustSize(size)
	ranges := make([]Range, len(children))
	for i, c := range children {
		ranges[i] = c.WidthRange()
	}
	widths := distribute(ranges, size.X, r.Spacing)

	areas := make([]Area, len(children))
	x := float32(0)
	for i, c := range children {
		sz := c.Get(f32.Pt(widths[i], size.Y))
		off := r.Padding.AdjustOffset(f32.Pt(x, r.Align.Get(size.Y, sz.Y)))
		areas[i] = Area{Offset: off, Size: sz}
		x += sz.X + r.Spacing
	}
	return areas
}

// Column lays out children vertically with fixed spacing between
// them. Heights sum along the column; the width applies the Width
// policy across it. Surplus height is shared by uniform expansion.
type Column struct {
	// Spacing is the gap between adjacent children.
	Spacing float32
	// Align places each child horizontally within the column.
	Align Offset
	// Width is the sizing policy for the cross axis.
	Width Size
	// Padding is reserved around the content.
	Padding Padding
}

// ColumnOf returns a column with the given spacing and horizontal
// alignment.
func ColumnOf(spacing float32, align Alignment) Column {
	return Column{Spacing: spacing, Align: Offset{Align: align}}
}

func (c Column) RequestSize(children []SizeRequest) SizeRequest {
	if len(children) == 0 {
		return c.Padding.AdjustRequest(SizeRequest{})
	}
	widths := make([]Range, len(children))
	heights := make([]Range, len(children))
	for i, ch := range children {
		widths[i] = ch.WidthRange()
		heights[i] = ch.HeightRange()
	}
	spacing := c.Spacing * float32(len(children)-1)
	w := c.Width.Get(widths, MaxRanges)
	h := SumRanges(heights)
	return c.Padding.AdjustRequest(
		NewSizeRequest(w.Min, h.Min, w.Max, h.Max).AddHeight(spacing))
}

func (c Column) Build(size f32.Point, children []SizeRequest) []Area {
	size = c.Padding.AdjustSize(size)
	ranges := make([]Range, len(children))
	for i, ch := range children {
		ranges[i] = ch.HeightRange()
	}
	heights := distribute(ranges, size.Y, c.Spacing)

	areas := make([]Area, len(children))
	y := float32(0)
	for i, ch := range children {
		sz := ch.Get(f32.Pt(size.X, heights[i]))
		off := c.Padding.AdjustOffset(f32.Pt(c.Align.Get(size.X, sz.X), y))
		areas[i] = Area{Offset: off, Size: sz}
		y += sz.Y + c.Spacing
	}
	return areas
}
