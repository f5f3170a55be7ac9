// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "seabird.dev/ui/f32"

// Wrap lays out children left to right at their minimum sizes,
// starting a new line when the next child would exceed the
// available width.
//
// The measure pass runs before the true available width is known,
// so RequestSize wraps against the width recorded by the previous
// frame's Build. The one frame of staleness is an accepted
// approximation; on the first frame the cache is zero and every
// child lands on its own line.
type Wrap struct {
	// Spacing is the horizontal gap between children on a line.
	Spacing float32
	// LineSpacing is the vertical gap between lines.
	LineSpacing float32
	// Align places each line horizontally in the leftover width.
	Align Offset
	// Padding is reserved around the content.
	Padding Padding

	// lastWidth is the width seen by the previous Build. It is the
	// only state the layout carries across frames.
	lastWidth float32
}

// WrapOf returns a wrap layout with the given spacing, centering
// each line.
func WrapOf(spacing, lineSpacing float32) *Wrap {
	return &Wrap{
		Spacing:     spacing,
		LineSpacing: lineSpacing,
		Align:       Offset{Align: Center},
	}
}

func (w *Wrap) RequestSize(children []SizeRequest) SizeRequest {
	lineW := w.Padding.Left
	lineH := float32(0)
	totalH := w.Padding.Top
	maxLineW := float32(0)
	for _, c := range children {
		cw, ch := c.MinWidth(), c.MinHeight()
		if lineW+cw > w.lastWidth && lineW > w.Padding.Left {
			totalH += lineH + w.LineSpacing
			maxLineW = max32(maxLineW, lineW-w.Spacing)
			lineW = w.Padding.Left
			lineH = 0
		}
		lineW += cw + w.Spacing
		lineH = max32(lineH, ch)
	}
	if lineW > w.Padding.Left {
		totalH += lineH
		maxLineW = max32(maxLineW, lineW-w.Spacing)
	}
	return NewSizeRequest(maxLineW+w.Padding.Right, totalH+w.Padding.Bottom, Unbounded, Unbounded)
}

func (w *Wrap) Build(size f32.Point, children []SizeRequest) []Area {
	w.lastWidth = size.X

	var areas []Area
	var line []f32.Point
	lineW := w.Padding.Left
	lineY := w.Padding.Top
	lineH := float32(0)

	flush := func() {
		if len(line) == 0 {
			return
		}
		contentW := lineW - w.Spacing - w.Padding.Left
		extra := max32(size.X-contentW, 0)
		x := w.Padding.Left
		switch w.Align.Align {
		case Center:
			x += extra / 2
		case End:
			x += extra
		case Absolute:
			x = w.Align.Value
		}
		for _, sz := range line {
			areas = append(areas, Area{Offset: f32.Pt(x, lineY), Size: sz})
			x += sz.X + w.Spacing
		}
	}

	for _, c := range children {
		sz := f32.Pt(c.MinWidth(), c.MinHeight())
		if lineW+sz.X > size.X && lineW > w.Padding.Left {
			flush()
			lineY += lineH + w.LineSpacing
			lineW = w.Padding.Left
			lineH = 0
			line = line[:0]
		}
		line = append(line, sz)
		lineW += sz.X + w.Spacing
		lineH = max32(lineH, sz.Y)
	}
	flush()
	return areas
}
