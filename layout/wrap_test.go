// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"seabird.dev/ui/f32"
)

func wrapChildren(n int, w, h float32) []SizeRequest {
	children := make([]SizeRequest, n)
	for i := range children {
		children[i] = Fixed(f32.Pt(w, h))
	}
	return children
}

func TestWrapStaleWidth(t *testing.T) {
	w := &Wrap{Spacing: 10, LineSpacing: 10}
	children := wrapChildren(4, 30, 20)

	// Before any Build the width cache is zero: every child wraps
	// onto its own line.
	r := w.RequestSize(children)
	if r.MinHeight() != 4*20+3*10 {
		t.Errorf("first-frame min height = %v, want %v", r.MinHeight(), 4*20+3*10)
	}

	// Build records the real width; the next measure wraps against
	// it.
	w.Build(f32.Pt(110, 100), children)
	r = w.RequestSize(children)
	// 30+10+30+10+30 = 110 fits three per line; two lines of 20
	// plus line spacing.
	if r.MinHeight() != 50 {
		t.Errorf("second-frame min height = %v, want 50", r.MinHeight())
	}
	if r.MaxWidth() != Unbounded || r.MaxHeight() != Unbounded {
		t.Error("wrap request must be unbounded above")
	}
}

func TestWrapBuildLines(t *testing.T) {
	w := &Wrap{Spacing: 10, LineSpacing: 5, Align: Offset{Align: Start}}
	children := wrapChildren(3, 40, 20)
	areas := w.Build(f32.Pt(100, 100), children)
	if len(areas) != 3 {
		t.Fatalf("area count = %d, want 3", len(areas))
	}
	// Two fit on the first line, the third wraps.
	if areas[0].Offset != f32.Pt(0, 0) || areas[1].Offset != f32.Pt(50, 0) {
		t.Errorf("line 1 offsets = %v, %v", areas[0].Offset, areas[1].Offset)
	}
	if areas[2].Offset != f32.Pt(0, 25) {
		t.Errorf("line 2 offset = %v, want (0,25)", areas[2].Offset)
	}
}

func TestWrapCenterAlign(t *testing.T) {
	w := WrapOf(0, 0)
	areas := w.Build(f32.Pt(100, 100), wrapChildren(1, 40, 20))
	if areas[0].Offset.X != 30 {
		t.Errorf("centered line x = %v, want 30", areas[0].Offset.X)
	}
}

func TestWrapEmpty(t *testing.T) {
	w := WrapOf(5, 5)
	if areas := w.Build(f32.Pt(100, 100), nil); len(areas) != 0 {
		t.Errorf("empty wrap produced %d areas", len(areas))
	}
}
