package menunav

import "math"

// Vec2 is a 2D vector used for element positions and sizes.
// The coordinate system is Y-up: larger Y values are higher on screen.
type Vec2 struct {
	X, Y float64
}

// Axis selects one of the two coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota // horizontal axis
	AxisY             // vertical axis
)

// Bounds is an axis-aligned bounding box described by its minimum and
// maximum corners. With Y-up coordinates Min is the bottom-left corner and
// Max is the top-right corner.
type Bounds struct {
	Min, Max Vec2
}

// BoundsFromRect returns the box of a w×h rectangle centred on (cx, cy).
// Negative sizes are treated as zero.
func BoundsFromRect(cx, cy, w, h float64) Bounds {
	hw := math.Max(w, 0) / 2
	hh := math.Max(h, 0) / 2
	return Bounds{
		Min: Vec2{cx - hw, cy - hh},
		Max: Vec2{cx + hw, cy + hh},
	}
}

// Size returns the width and height of b.
func (b Bounds) Size() Vec2 {
	return Vec2{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y}
}

// Center returns the midpoint of b.
func (b Bounds) Center() Vec2 {
	return Vec2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether the point p lies inside b. Points on the edge
// are considered inside.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand grows b by border on every side. A negative border shrinks it.
func (b Bounds) Expand(border float64) Bounds {
	return Bounds{
		Min: Vec2{b.Min.X - border, b.Min.Y - border},
		Max: Vec2{b.Max.X + border, b.Max.Y + border},
	}
}

// Union returns the smallest box containing both a and b.
func Union(a, b Bounds) Bounds {
	return Bounds{
		Min: Vec2{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y)},
		Max: Vec2{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y)},
	}
}

// OverlapsOnAxis reports whether the projections of a and b onto axis
// intersect. An edge of a strictly inside b counts, and so does a fully
// containing b. The relation is not symmetric: b strictly containing a is
// only caught through a's edges being inside b.
func OverlapsOnAxis(a, b Bounds, axis Axis) bool {
	aMin, aMax, bMin, bMax := a.Min.X, a.Max.X, b.Min.X, b.Max.X
	if axis == AxisY {
		aMin, aMax, bMin, bMax = a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y
	}
	return aMax > bMin && aMax < bMax ||
		aMin > bMin && aMin < bMax ||
		aMin <= bMin && aMax >= bMax
}

// IsAbove reports whether a counts as being above b for navigation.
func IsAbove(a, b Bounds) bool {
	return a.Min.Y > b.Min.Y && OverlapsOnAxis(a, b, AxisX)
}

// IsBelow reports whether a counts as being below b for navigation.
func IsBelow(a, b Bounds) bool {
	return a.Max.Y < b.Max.Y && OverlapsOnAxis(a, b, AxisX)
}

// IsLeftOf reports whether a counts as being left of b for navigation.
func IsLeftOf(a, b Bounds) bool {
	return a.Max.X < b.Max.X && OverlapsOnAxis(a, b, AxisY)
}

// IsRightOf reports whether a counts as being right of b for navigation.
func IsRightOf(a, b Bounds) bool {
	return a.Min.X > b.Min.X && OverlapsOnAxis(a, b, AxisY)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}
