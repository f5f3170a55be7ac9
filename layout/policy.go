// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "seabird.dev/ui/f32"

// Alignment selects how an item is placed along one axis of the
// space left over after sizing.
type Alignment uint8

const (
	// Start aligns to the leading edge.
	Start Alignment = iota
	// Center splits the leftover space evenly.
	Center
	// End aligns to the trailing edge.
	End
	// Absolute places the item at Offset.Value.
	Absolute
)

// Offset is the placement policy for one axis.
type Offset struct {
	Align Alignment
	// Value is the fixed offset used with Absolute.
	Value float32
}

// At returns an Absolute offset of v.
func At(v float32) Offset {
	return Offset{Align: Absolute, Value: v}
}

// Get resolves the offset of an item of the given size within the
// available space.
func (o Offset) Get(space, item float32) float32 {
	switch o.Align {
	case Center:
		return (space - item) / 2
	case End:
		return space - item
	case Absolute:
		return o.Value
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	case Absolute:
		return "Absolute"
	default:
		panic("unreachable")
	}
}

type sizeMode uint8

const (
	sizeFit sizeMode = iota
	sizeFill
	sizeStatic
	sizeCustom
)

// CustomSizeFunc reduces the children's per-axis ranges into the
// container's range for that axis.
type CustomSizeFunc func(children []Range) Range

// Size is the policy a container uses to derive its own (min, max)
// bound on one axis from its children's bounds.
type Size struct {
	mode   sizeMode
	value  float32
	custom CustomSizeFunc
}

// Fit reduces the children with a layout-supplied fold, typically
// SumRanges along the main axis or MaxRanges across it. The zero
// Size value is Fit.
func Fit() Size { return Size{mode: sizeFit} }

// Fill keeps the largest child minimum but expands the maximum to
// Unbounded, growing into all space the parent offers.
func Fill() Size { return Size{mode: sizeFill} }

// Static pins both bounds to v.
func Static(v float32) Size { return Size{mode: sizeStatic, value: v} }

// Custom derives the bound with an arbitrary user policy.
func Custom(f CustomSizeFunc) Size { return Size{mode: sizeCustom, custom: f} }

// Get resolves the policy against the children's ranges. fit is the
// fold used by the Fit policy.
func (s Size) Get(children []Range, fit func([]Range) Range) Range {
	switch s.mode {
	case sizeFill:
		m := float32(0)
		for _, c := range children {
			m = max32(m, c.Min)
		}
		return Range{Min: m, Max: Unbounded}
	case sizeStatic:
		return Range{Min: s.value, Max: s.value}
	case sizeCustom:
		return s.custom(children)
	default:
		return fit(children)
	}
}

// MaxRanges folds ranges by per-bound maximum.
func MaxRanges(children []Range) Range {
	var r Range
	for _, c := range children {
		r.Min = max32(r.Min, c.Min)
		r.Max = max32(r.Max, c.Max)
	}
	return r
}

// SumRanges folds ranges by per-bound sum.
func SumRanges(children []Range) Range {
	var r Range
	for _, c := range children {
		r.Min += c.Min
		r.Max += c.Max
	}
	return r
}

// Padding is space reserved around the content of a container,
// subtracted from the available size before distribution and added
// back to the reported request and the children's offsets.
type Padding struct {
	Left, Top, Right, Bottom float32
}

// Uniform returns a Padding with the same inset on all edges.
func Uniform(v float32) Padding {
	return Padding{v, v, v, v}
}

// AdjustSize shrinks an allotted size by the padding.
func (p Padding) AdjustSize(size f32.Point) f32.Point {
	return f32.Point{X: size.X - p.Left - p.Right, Y: size.Y - p.Top - p.Bottom}
}

// AdjustOffset shifts a child offset into the padded content box.
func (p Padding) AdjustOffset(off f32.Point) f32.Point {
	return f32.Point{X: off.X + p.Left, Y: off.Y + p.Top}
}

// AdjustRequest grows a request by the padding overhead.
func (p Padding) AdjustRequest(r SizeRequest) SizeRequest {
	return r.Add(p.Left+p.Right, p.Top+p.Bottom)
}
