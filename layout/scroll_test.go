// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"seabird.dev/ui/f32"
)

func TestScrollClamping(t *testing.T) {
	s := VerticalScroll()
	content := []SizeRequest{Fixed(f32.Pt(50, 300))}

	s.AdjustBy(1000)
	s.Build(f32.Pt(50, 100), content)
	if got := s.Offset(); got != 200 {
		t.Errorf("offset = %v, want clamp to 200", got)
	}

	s.AdjustBy(-5000)
	s.Build(f32.Pt(50, 100), content)
	if got := s.Offset(); got != 0 {
		t.Errorf("offset = %v, want clamp to 0", got)
	}
}

func TestScrollShiftsContent(t *testing.T) {
	s := VerticalScroll()
	content := []SizeRequest{Fixed(f32.Pt(50, 300))}
	s.AdjustBy(40)
	areas := s.Build(f32.Pt(50, 100), content)
	if areas[0].Offset.Y != -40 {
		t.Errorf("content y = %v, want -40", areas[0].Offset.Y)
	}
}

func TestScrollNoOverflow(t *testing.T) {
	// Content smaller than the viewport cannot scroll at all.
	s := VerticalScroll()
	content := []SizeRequest{Fixed(f32.Pt(50, 60))}
	s.AdjustBy(25)
	areas := s.Build(f32.Pt(50, 100), content)
	if s.Offset() != 0 || areas[0].Offset.Y != 0 {
		t.Errorf("offset = %v, content y = %v, want 0, 0", s.Offset(), areas[0].Offset.Y)
	}
}

func TestScrollAnchorEnd(t *testing.T) {
	s := VerticalScroll()
	s.Anchor = AnchorEnd
	content := []SizeRequest{Fixed(f32.Pt(50, 300))}
	// Offset zero holds the content's tail at the viewport bottom.
	areas := s.Build(f32.Pt(50, 100), content)
	if areas[0].Offset.Y != -200 {
		t.Errorf("anchored tail y = %v, want -200", areas[0].Offset.Y)
	}
	// A positive delta on an end anchor moves backwards through
	// content.
	s.AdjustBy(-50)
	areas = s.Build(f32.Pt(50, 100), content)
	if areas[0].Offset.Y != -150 {
		t.Errorf("scrolled tail y = %v, want -150", areas[0].Offset.Y)
	}
}

func TestScrollHorizontal(t *testing.T) {
	s := HorizontalScroll()
	content := []SizeRequest{Fixed(f32.Pt(300, 50))}
	s.AdjustBy(70)
	areas := s.Build(f32.Pt(100, 50), content)
	if areas[0].Offset.X != -70 {
		t.Errorf("content x = %v, want -70", areas[0].Offset.X)
	}
}

func TestScrollRequestReportsContent(t *testing.T) {
	s := VerticalScroll()
	r := s.RequestSize([]SizeRequest{Fixed(f32.Pt(50, 300))})
	if r.MinHeight() != 300 || r.MaxHeight() != Unbounded {
		t.Errorf("height = [%v %v], want [300 unbounded]", r.MinHeight(), r.MaxHeight())
	}
}
