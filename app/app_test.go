// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"
	"time"

	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/io/system"
	"seabird.dev/ui/layout"
	"seabird.dev/ui/render"
	"seabird.dev/ui/widget"
)

type stubWindow struct {
	frames []render.List
}

func (w *stubWindow) Submit(list render.List) {
	w.frames = append(w.frames, list)
}

// growOnTick doubles in height when ticked, so a frame that drains
// before measuring lays out the grown size in the same frame.
type growOnTick struct {
	size f32.Point
}

func (g *growOnTick) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	if _, ok := e.(event.TickEvent); ok {
		g.size.Y *= 2
	}
	return []event.Event{e}
}

func (g *growOnTick) RequestSize(ctx *ui.Context) layout.SizeRequest {
	return layout.Fixed(g.size)
}

func (g *growOnTick) Draw(ctx *ui.Context, size f32.Point) render.Item {
	return render.Fill{Shape: render.Shape{Size: size}}
}

func newEngine(root widget.Drawable) (*Engine, *stubWindow) {
	win := &stubWindow{}
	e := NewEngine(ui.NewContext(nil, ui.Platform{}), root, win)
	e.Resize(f32.Pt(200, 100), 1)
	return e, win
}

func TestFrameSkipsUnchanged(t *testing.T) {
	root := widget.NewGroup(&layout.Stack{},
		&growOnTick{size: f32.Pt(40, 0)})
	// zero height: ticks keep it at zero, so nothing ever changes
	e, win := newEngine(root)

	if !e.Frame(0) {
		t.Fatal("first frame did not draw")
	}
	if e.Frame(16 * time.Millisecond) {
		t.Fatal("unchanged second frame drew")
	}
	if len(win.frames) != 1 {
		t.Fatalf("submitted %d frames, want 1", len(win.frames))
	}
}

func TestFrameDrainsBeforeMeasure(t *testing.T) {
	leaf := &growOnTick{size: f32.Pt(40, 10)}
	root := widget.NewGroup(&layout.Stack{}, leaf)
	e, win := newEngine(root)

	e.Frame(0)

	if len(win.frames) != 1 {
		t.Fatalf("submitted %d frames", len(win.frames))
	}
	last := win.frames[0][len(win.frames[0])-1]
	fill := last.Item.(render.Fill)
	// The first tick doubled the height to 20 before layout ran.
	if fill.Shape.Size.Y != 20 {
		t.Errorf("drawn height = %v, want 20", fill.Shape.Size.Y)
	}
}

func TestFrameRedrawsAfterChange(t *testing.T) {
	leaf := &growOnTick{size: f32.Pt(40, 10)}
	root := widget.NewGroup(&layout.Stack{}, leaf)
	e, win := newEngine(root)

	e.Frame(0)
	if !e.Frame(16 * time.Millisecond) {
		t.Fatal("growing frame did not redraw")
	}
	if len(win.frames) != 2 {
		t.Fatalf("submitted %d frames, want 2", len(win.frames))
	}
}

func TestResizeForcesRedrawAndScales(t *testing.T) {
	leaf := &growOnTick{size: f32.Pt(40, 0)}
	root := widget.NewGroup(&layout.Stack{}, leaf)
	e, win := newEngine(root)
	e.Frame(0)

	e.Resize(f32.Pt(400, 200), 2)
	if !e.Frame(16 * time.Millisecond) {
		t.Fatal("frame after resize did not draw")
	}
	last := win.frames[len(win.frames)-1]
	fill := last[len(last)-1].Item.(render.Fill)
	// 40 logical px wide at scale 2 submits 80 physical px.
	if fill.Shape.Size.X != 80 {
		t.Errorf("physical width = %v, want 80", fill.Shape.Size.X)
	}
}

func TestInputReachesTree(t *testing.T) {
	sc := widget.NewScrollable(widget.NewGroup(&layout.Column{},
		&growOnTick{size: f32.Pt(40, 300)}))
	e, _ := newEngine(sc)
	e.Frame(0)

	e.Input(system.CursorMoved{Position: f32.Pt(10, 10)})
	e.Input(system.Wheel{Phase: system.PhaseStarted})
	e.Input(system.Wheel{Phase: system.PhaseMoved, Delta: f32.Pt(0, -1), ByLine: true})
	e.Frame(16 * time.Millisecond)

	if sc.Scroll().Offset() == 0 {
		t.Error("wheel input did not move the scroll offset")
	}
}
