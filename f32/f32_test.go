// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestRectangleContainsStrict(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{Pt(15, 15), true},
		{Pt(10, 15), false}, // left edge
		{Pt(20, 15), false}, // right edge
		{Pt(15, 10), false}, // top edge
		{Pt(9, 15), false},
		{Pt(21, 21), false},
	} {
		if got := r.ContainsStrict(tc.p); got != tc.want {
			t.Errorf("ContainsStrict(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectangleIntersect(t *testing.T) {
	r := Rect(0, 0, 10, 10).Intersect(Rect(5, 5, 20, 20))
	if r != Rect(5, 5, 10, 10) {
		t.Errorf("Intersect = %v", r)
	}
	if !Rect(0, 0, 5, 5).Intersect(Rect(6, 6, 10, 10)).Empty() {
		t.Error("disjoint intersection not empty")
	}
}
