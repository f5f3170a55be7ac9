// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seabird.dev/ui/f32"
)

func TestDistributeConservation(t *testing.T) {
	// With one unbounded child, all surplus is consumed.
	sizes := distribute([]Range{{50, Unbounded}, {50, 50}}, 180, 10)
	total := sizes[0] + sizes[1] + 10
	if total != 180 {
		t.Errorf("total = %v, want 180", total)
	}
	// With no expandable child, the surplus is left unused.
	sizes = distribute([]Range{{50, 50}, {50, 50}}, 180, 10)
	if sizes[0] != 50 || sizes[1] != 50 {
		t.Errorf("rigid children grew: %v", sizes)
	}
}

func TestDistributeFairness(t *testing.T) {
	for _, space := range []float32{100, 137, 400, 1000} {
		sizes := distribute([]Range{{20, 300}, {20, 300}}, space, 0)
		if sizes[0] != sizes[1] {
			t.Errorf("space %v: equal children diverged: %v", space, sizes)
		}
	}
}

func TestDistributeLockStep(t *testing.T) {
	// The smaller child is raised to the larger child's tier before
	// both grow together.
	sizes := distribute([]Range{{10, Unbounded}, {30, Unbounded}}, 60, 0)
	if sizes[0] != 30 || sizes[1] != 30 {
		t.Errorf("sizes = %v, want [30 30]", sizes)
	}
}

func TestDistributeRespectsMax(t *testing.T) {
	sizes := distribute([]Range{{50, 100}, {50, 50}}, 180, 10)
	if sizes[0] != 100 || sizes[1] != 50 {
		t.Errorf("sizes = %v, want [100 50]", sizes)
	}
}

func TestDistributeEmpty(t *testing.T) {
	if got := distribute(nil, 100, 0); len(got) != 1 || got[0] != 0 {
		t.Errorf("distribute(nil) = %v", got)
	}
}

func TestRowBuild(t *testing.T) {
	row := RowOf(10, Start)
	children := []SizeRequest{
		NewSizeRequest(50, 20, Unbounded, 20),
		Fixed(f32.Pt(50, 20)),
	}
	got := row.Build(f32.Pt(180, 20), children)
	want := []Area{
		{Offset: f32.Pt(0, 0), Size: f32.Pt(120, 20)},
		{Offset: f32.Pt(130, 0), Size: f32.Pt(50, 20)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row areas mismatch (-want +got):\n%s", diff)
	}
}

func TestRowBuildCappedChild(t *testing.T) {
	// A child whose max is reached stops expanding; the remaining
	// surplus goes unused.
	row := RowOf(10, Start)
	children := []SizeRequest{
		NewSizeRequest(50, 20, 100, 20),
		Fixed(f32.Pt(50, 20)),
	}
	got := row.Build(f32.Pt(180, 20), children)
	if got[0].Size.X != 100 || got[1].Size.X != 50 {
		t.Errorf("widths = [%v %v], want [100 50]", got[0].Size.X, got[1].Size.X)
	}
}

func TestRowRequestSize(t *testing.T) {
	row := RowOf(10, Start)
	r := row.RequestSize([]SizeRequest{
		Fixed(f32.Pt(50, 20)),
		Fixed(f32.Pt(30, 40)),
	})
	if r.MinWidth() != 90 || r.MaxWidth() != 90 {
		t.Errorf("width = [%v %v], want [90 90]", r.MinWidth(), r.MaxWidth())
	}
	if r.MinHeight() != 40 {
		t.Errorf("min height = %v, want 40", r.MinHeight())
	}
}

func TestRowCrossAlignment(t *testing.T) {
	row := RowOf(0, Center)
	got := row.Build(f32.Pt(100, 100), []SizeRequest{Fixed(f32.Pt(20, 40))})
	if got[0].Offset.Y != 30 {
		t.Errorf("centered y = %v, want 30", got[0].Offset.Y)
	}
}

func TestColumnBuild(t *testing.T) {
	col := ColumnOf(5, Center)
	children := []SizeRequest{
		Fixed(f32.Pt(20, 30)),
		Fixed(f32.Pt(40, 30)),
	}
	got := col.Build(f32.Pt(100, 100), children)
	want := []Area{
		{Offset: f32.Pt(40, 0), Size: f32.Pt(20, 30)},
		{Offset: f32.Pt(30, 35), Size: f32.Pt(40, 30)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("column areas mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnFillWidth(t *testing.T) {
	col := Column{Width: Fill()}
	r := col.RequestSize([]SizeRequest{Fixed(f32.Pt(20, 30))})
	if r.MinWidth() != 20 || r.MaxWidth() != Unbounded {
		t.Errorf("fill width = [%v %v]", r.MinWidth(), r.MaxWidth())
	}
}

func TestRowPadding(t *testing.T) {
	row := Row{Spacing: 0, Padding: Uniform(8)}
	r := row.RequestSize([]SizeRequest{Fixed(f32.Pt(10, 10))})
	if r.MinWidth() != 26 || r.MinHeight() != 26 {
		t.Errorf("padded request = [%v %v], want [26 26]", r.MinWidth(), r.MinHeight())
	}
	areas := row.Build(f32.Pt(26, 26), []SizeRequest{Fixed(f32.Pt(10, 10))})
	if areas[0].Offset != f32.Pt(8, 8) {
		t.Errorf("padded offset = %v, want (8,8)", areas[0].Offset)
	}
}
