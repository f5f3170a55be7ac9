// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
	"seabird.dev/ui/render"
)

// box is a minimal fixed-size leaf for tree tests.
type box struct {
	size f32.Point
}

func (b *box) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	return []event.Event{e}
}

func (b *box) RequestSize(ctx *ui.Context) layout.SizeRequest {
	return layout.Fixed(b.size)
}

func (b *box) Draw(ctx *ui.Context, size f32.Point) render.Item {
	return render.Fill{Shape: render.Shape{Size: size}}
}

func TestEnumShowsExactlyOne(t *testing.T) {
	e := NewEnum(map[string]Drawable{
		"default": &box{size: f32.Pt(10, 10)},
		"hover":   &box{size: f32.Pt(10, 10)},
		"pressed": &box{size: f32.Pt(10, 10)},
	}, "default")

	counts := func() int {
		n := 0
		for _, item := range e.Items {
			if item.(*Opt).Display() {
				n++
			}
		}
		return n
	}
	if counts() != 1 || e.Active() != "default" {
		t.Fatalf("start: %d shown, active %q", counts(), e.Active())
	}
	e.Display("pressed")
	if counts() != 1 || e.Active() != "pressed" {
		t.Fatalf("after switch: %d shown, active %q", counts(), e.Active())
	}
}

func TestEnumUnknownKeyFallsBack(t *testing.T) {
	e := NewEnum(map[string]Drawable{
		"b": &box{},
		"a": &box{},
	}, "nope")
	if e.Active() != "a" {
		t.Errorf("start fallback = %q, want first sorted key", e.Active())
	}
	e.Display("b")
	e.Display("missing")
	if e.Active() != "a" {
		t.Errorf("switch fallback = %q, want first sorted key", e.Active())
	}
}

func TestOptHidesSubtree(t *testing.T) {
	ctx := ui.NewContext(nil, ui.Platform{})
	o := NewOpt(&box{size: f32.Pt(30, 30)}, true)

	req := Measure(ctx, o)
	if got := req.Request.Get(f32.Pt(100, 100)); got != f32.Pt(30, 30) {
		t.Errorf("shown request = %v", got)
	}
	o.SetDisplay(false)
	req = Measure(ctx, o)
	if got := req.Request.Get(f32.Pt(100, 100)); got != (f32.Point{}) {
		t.Errorf("hidden request = %v, want zero", got)
	}
	if len(o.Children()) != 0 {
		t.Error("hidden child still enumerable")
	}
}

func TestEitherOr(t *testing.T) {
	e := NewEitherOr(&box{}, &box{})
	shown := func() (left, right bool) {
		return e.left.Display(), e.right.Display()
	}
	if l, r := shown(); !l || r {
		t.Fatalf("start: left %v right %v", l, r)
	}
	e.DisplayLeft(false)
	if l, r := shown(); l || !r {
		t.Fatalf("after switch: left %v right %v", l, r)
	}
}

func TestMeasureArrangeColumn(t *testing.T) {
	ctx := ui.NewContext(nil, ui.Platform{})
	root := NewGroup(&layout.Column{Spacing: 10},
		&box{size: f32.Pt(50, 20)},
		&box{size: f32.Pt(30, 40)},
	)

	req := Measure(ctx, root)
	if got := req.Request.Get(f32.Pt(200, 200)); got != f32.Pt(50, 70) {
		t.Fatalf("request resolved to %v, want (50,70)", got)
	}

	sized := Arrange(ctx, root, f32.Pt(50, 70), req)
	want := []SizedChild{
		{Offset: f32.Pt(0, 0), Sized: Sized{Size: f32.Pt(50, 20)}},
		{Offset: f32.Pt(0, 30), Sized: Sized{Size: f32.Pt(30, 40)}},
	}
	if diff := cmp.Diff(want, sized.Children); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawFlattensWithOffsets(t *testing.T) {
	ctx := ui.NewContext(nil, ui.Platform{})
	inner := NewGroup(&layout.Column{}, &box{size: f32.Pt(10, 10)})
	root := NewGroup(&layout.Column{Spacing: 5},
		&box{size: f32.Pt(10, 10)},
		inner,
	)
	req := Measure(ctx, root)
	sized := Arrange(ctx, root, f32.Pt(10, 25), req)

	var list render.List
	Draw(ctx, root, sized, &list)

	if len(list) != 2 {
		t.Fatalf("got %d entries, want 2", len(list))
	}
	if list[0].Offset != f32.Pt(0, 0) {
		t.Errorf("first offset = %v", list[0].Offset)
	}
	if list[1].Offset != f32.Pt(0, 15) {
		t.Errorf("nested offset = %v, want (0,15)", list[1].Offset)
	}
}

func TestDrawCullsOutsideScrollClip(t *testing.T) {
	ctx := ui.NewContext(nil, ui.Platform{})
	var items []Drawable
	for i := 0; i < 10; i++ {
		items = append(items, &box{size: f32.Pt(50, 30)})
	}
	sc := NewScrollable(NewGroup(&layout.Column{}, items...))

	req := Measure(ctx, sc)
	sized := Arrange(ctx, sc, f32.Pt(50, 60), req)

	var list render.List
	Draw(ctx, sc, sized, &list)

	// 300 logical px of content in a 60 px viewport: the two rows
	// touching the viewport survive, the rest are culled.
	if len(list) != 2 {
		t.Fatalf("got %d entries, want 2", len(list))
	}
	for _, e := range list {
		if e.Clip == (f32.Rectangle{}) {
			t.Errorf("entry at %v not clipped", e.Offset)
		}
	}
}

func TestScrollableAdjusts(t *testing.T) {
	ctx := ui.NewContext(nil, ui.Platform{})
	sc := NewScrollable(&box{size: f32.Pt(50, 300)})
	req := Measure(ctx, sc)
	Arrange(ctx, sc, f32.Pt(50, 60), req)

	sc.OnEvent(ctx, AdjustScrollEvent{Delta: 40})
	req = Measure(ctx, sc)
	sized := Arrange(ctx, sc, f32.Pt(50, 60), req)
	if got := sized.Children[0].Offset.Y; got != -40 {
		t.Errorf("offset after adjust = %v, want -40", got)
	}
}
