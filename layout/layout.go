// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the size negotiation protocol of the
drawable tree.

Negotiation is a two pass protocol. In the measure pass every node
reports a SizeRequest, a range of acceptable sizes per axis,
aggregated bottom-up. In the arrange pass a Layout strategy converts
the size allotted by the parent and the children's requests into one
Area per child, distributed top-down.

A SizeRequest and the Areas derived from it live for a single frame;
they are recomputed every tick.
*/
package layout

import (
	"math"

	"seabird.dev/ui/f32"
)

// Unbounded is the maximum extent a request can ask for. A max of
// Unbounded marks an axis that expands into all available space.
const Unbounded = float32(math.MaxFloat32)

// Layout calculates the offset and allotted size of the children of
// a container node.
type Layout interface {
	// RequestSize reduces the children's size requests into the
	// request for the container as a whole.
	RequestSize(children []SizeRequest) SizeRequest
	// Build converts the allotted size and the children's requests
	// into one Area per child, in child order. The bounds promised
	// by RequestSize must be achievable by Build; a mismatch shows
	// up as clipped or overlapping output, not as an error.
	Build(size f32.Point, children []SizeRequest) []Area
}

// An Area is the placement of a child within its parent, in the
// parent's local coordinate space.
type Area struct {
	Offset f32.Point
	Size   f32.Point
}

// Rect returns the area as a rectangle in the parent's local space.
func (a Area) Rect() f32.Rectangle {
	return f32.Rectangle{Min: a.Offset, Max: a.Offset.Add(a.Size)}
}

// A SizeRequest is the range of sizes a node is able to occupy,
// reported before space is allotted. Requests are immutable values;
// composition returns new requests.
type SizeRequest struct {
	minWidth  float32
	minHeight float32
	maxWidth  float32
	maxHeight float32
}

// NewSizeRequest returns a request with the given bounds. It panics
// if min exceeds max on either axis; that is a contract violation by
// the caller, not a recoverable condition.
func NewSizeRequest(minWidth, minHeight, maxWidth, maxHeight float32) SizeRequest {
	if minWidth > maxWidth {
		panic("layout: SizeRequest min width greater than max width")
	}
	if minHeight > maxHeight {
		panic("layout: SizeRequest min height greater than max height")
	}
	return SizeRequest{minWidth, minHeight, maxWidth, maxHeight}
}

// Fixed returns a request that can only be satisfied by size.
func Fixed(size f32.Point) SizeRequest {
	return SizeRequest{size.X, size.Y, size.X, size.Y}
}

// Expand returns a request that accepts any size and grows into all
// available space.
func Expand() SizeRequest {
	return SizeRequest{0, 0, Unbounded, Unbounded}
}

// MinWidth returns the minimum width.
func (r SizeRequest) MinWidth() float32 { return r.minWidth }

// MinHeight returns the minimum height.
func (r SizeRequest) MinHeight() float32 { return r.minHeight }

// MaxWidth returns the maximum width.
func (r SizeRequest) MaxWidth() float32 { return r.maxWidth }

// MaxHeight returns the maximum height.
func (r SizeRequest) MaxHeight() float32 { return r.maxHeight }

// Get clamps a candidate size into the request's bounds.
func (r SizeRequest) Get(size f32.Point) f32.Point {
	return f32.Point{
		X: min32(r.maxWidth, max32(r.minWidth, size.X)),
		Y: min32(r.maxHeight, max32(r.minHeight, size.Y)),
	}
}

// Add grows both bounds of both axes by a fixed amount. It is used
// to account for padding and spacing layered on top of the pure
// content size.
func (r SizeRequest) Add(w, h float32) SizeRequest {
	return r.AddWidth(w).AddHeight(h)
}

// AddWidth grows both width bounds by w.
func (r SizeRequest) AddWidth(w float32) SizeRequest {
	return NewSizeRequest(r.minWidth+w, r.minHeight, r.maxWidth+w, r.maxHeight)
}

// AddHeight grows both height bounds by h.
func (r SizeRequest) AddHeight(h float32) SizeRequest {
	return NewSizeRequest(r.minWidth, r.minHeight+h, r.maxWidth, r.maxHeight+h)
}

// RemoveHeight shrinks both height bounds by h.
func (r SizeRequest) RemoveHeight(h float32) SizeRequest {
	return NewSizeRequest(r.minWidth, r.minHeight-h, r.maxWidth, r.maxHeight-h)
}

// Max combines two requests by taking the per-axis maximum of both
// mins and both maxes. Siblings that must agree on the larger of
// their requirements, such as layered stacks, combine through Max.
func (r SizeRequest) Max(other SizeRequest) SizeRequest {
	return NewSizeRequest(
		max32(r.minWidth, other.minWidth),
		max32(r.minHeight, other.minHeight),
		max32(r.maxWidth, other.maxWidth),
		max32(r.maxHeight, other.maxHeight),
	)
}

// WidthRange returns the width bounds of the request.
func (r SizeRequest) WidthRange() Range { return Range{r.minWidth, r.maxWidth} }

// HeightRange returns the height bounds of the request.
func (r SizeRequest) HeightRange() Range { return Range{r.minHeight, r.maxHeight} }

// A Range is the (min, max) bound of a single axis.
type Range struct {
	Min, Max float32
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
