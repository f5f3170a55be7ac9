// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"seabird.dev/ui/f32"
)

func TestNewSizeRequestPanics(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		minW, minH, maxW, maxH float32
	}{
		{"width", 10, 0, 5, 10},
		{"height", 0, 10, 10, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for min > max")
				}
			}()
			NewSizeRequest(tc.minW, tc.minH, tc.maxW, tc.maxH)
		})
	}
}

func TestSizeRequestGetClamps(t *testing.T) {
	r := NewSizeRequest(10, 20, 100, 200)
	for _, tc := range []struct {
		in, want f32.Point
	}{
		{f32.Pt(5, 5), f32.Pt(10, 20)},
		{f32.Pt(50, 50), f32.Pt(50, 50)},
		{f32.Pt(500, 500), f32.Pt(100, 200)},
	} {
		if got := r.Get(tc.in); got != tc.want {
			t.Errorf("Get(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSizeRequestGetIdempotent(t *testing.T) {
	r := NewSizeRequest(10, 20, 100, 200)
	for _, p := range []f32.Point{
		f32.Pt(0, 0), f32.Pt(10, 20), f32.Pt(55, 99), f32.Pt(1e6, 1e6),
	} {
		once := r.Get(p)
		if twice := r.Get(once); twice != once {
			t.Errorf("Get(Get(%v)) = %v, want %v", p, twice, once)
		}
	}
}

func TestSizeRequestAdd(t *testing.T) {
	r := NewSizeRequest(10, 10, 20, 20).Add(5, 7)
	want := NewSizeRequest(15, 17, 25, 27)
	if r != want {
		t.Errorf("Add = %+v, want %+v", r, want)
	}
}

func TestSizeRequestMax(t *testing.T) {
	a := NewSizeRequest(10, 5, 30, 50)
	b := NewSizeRequest(20, 1, 25, 60)
	want := NewSizeRequest(20, 5, 30, 60)
	if got := a.Max(b); got != want {
		t.Errorf("Max = %+v, want %+v", got, want)
	}
}

func TestFixedAndExpand(t *testing.T) {
	f := Fixed(f32.Pt(30, 40))
	if f.MinWidth() != 30 || f.MaxWidth() != 30 || f.MinHeight() != 40 || f.MaxHeight() != 40 {
		t.Errorf("Fixed = %+v", f)
	}
	e := Expand()
	if e.MinWidth() != 0 || e.MaxWidth() != Unbounded {
		t.Errorf("Expand = %+v", e)
	}
}

func TestOffsetGet(t *testing.T) {
	for _, tc := range []struct {
		o    Offset
		want float32
	}{
		{Offset{Align: Start}, 0},
		{Offset{Align: Center}, 25},
		{Offset{Align: End}, 50},
		{At(12), 12},
	} {
		if got := tc.o.Get(100, 50); got != tc.want {
			t.Errorf("%v.Get(100, 50) = %v, want %v", tc.o.Align, got, tc.want)
		}
	}
}

func TestPadding(t *testing.T) {
	p := Padding{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if got := p.AdjustSize(f32.Pt(10, 10)); got != f32.Pt(6, 4) {
		t.Errorf("AdjustSize = %v", got)
	}
	if got := p.AdjustOffset(f32.Pt(0, 0)); got != f32.Pt(1, 2) {
		t.Errorf("AdjustOffset = %v", got)
	}
	r := p.AdjustRequest(Fixed(f32.Pt(10, 10)))
	if r.MinWidth() != 14 || r.MinHeight() != 16 {
		t.Errorf("AdjustRequest = %+v", r)
	}
}
