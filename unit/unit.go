// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements the conversion between logical, device
independent pixels and physical display pixels.

Everything inside the engine is expressed in logical pixels; the
conversion to physical pixels happens exactly once, at the render
boundary, through a Metric.
*/
package unit

import "seabird.dev/ui/f32"

// Metric converts between logical and physical pixels. The zero
// value behaves as a scale factor of 1.
type Metric struct {
	// Scale is the number of physical pixels per logical pixel.
	Scale float32
}

func (m Metric) factor() float32 {
	if m.Scale == 0 {
		return 1
	}
	return m.Scale
}

// Physical converts a logical value to physical pixels.
func (m Metric) Physical(v float32) float32 {
	return v * m.factor()
}

// Logical converts a physical value to logical pixels.
func (m Metric) Logical(v float32) float32 {
	return v / m.factor()
}

// PhysicalPt converts a logical point to physical pixels.
func (m Metric) PhysicalPt(p f32.Point) f32.Point {
	return p.Mul(m.factor())
}

// LogicalPt converts a physical point to logical pixels.
func (m Metric) LogicalPt(p f32.Point) f32.Point {
	return p.Mul(1 / m.factor())
}
