// SPDX-License-Identifier: Unlicense OR MIT

package unit

import (
	"testing"

	"seabird.dev/ui/f32"
)

func TestMetricRoundTrip(t *testing.T) {
	for _, scale := range []float32{0, 1, 1.5, 2, 3} {
		m := Metric{Scale: scale}
		if got := m.Logical(m.Physical(100)); got != 100 {
			t.Errorf("scale %v: round trip = %v, want 100", scale, got)
		}
	}
}

func TestMetricZeroValue(t *testing.T) {
	var m Metric
	if m.Physical(42) != 42 || m.Logical(42) != 42 {
		t.Error("zero Metric must behave as scale 1")
	}
	if got := m.PhysicalPt(f32.Pt(1, 2)); got != f32.Pt(1, 2) {
		t.Errorf("PhysicalPt = %v", got)
	}
}
