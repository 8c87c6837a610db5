package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle described by its top-left corner and
// its extent. Width and Height are expected to be non-negative; callers
// producing new sizes are responsible for validating them (see the arrange
// package's size clamping).
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect builds a rectangle from a corner and an extent.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// RectFromPoints builds the bounding rectangle of two corner points. The
// extent is derived as max-min per axis, so it is always non-negative.
// It returns an error if the two points coincide, which would produce a
// degenerate zero-size rectangle.
func RectFromPoints(a, b Point) (Rect, error) {
	if a.Equals(b) {
		return Rect{}, fmt.Errorf("degenerate rect: both corners at (%v, %v)", a.X, a.Y)
	}
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}, nil
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Position returns the top-left corner.
func (r Rect) Position() Point { return Point{X: r.Left, Y: r.Top} }

// Size returns the extent of the rectangle as a point.
func (r Rect) Size() Point { return Point{X: r.Width, Y: r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Area returns width times height. It is meaningful only for relative
// comparison (e.g. drop-target scoring), not as an absolute measure.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Equals reports exact numeric equality of all four components.
func (r Rect) Equals(o Rect) bool {
	return r.Left == o.Left && r.Top == o.Top &&
		r.Width == o.Width && r.Height == o.Height
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Intersection returns the overlapping region of r and o. The second
// return value is false when the rectangles are disjoint; a negative-size
// rectangle is never produced.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	left := math.Max(r.Left, o.Left)
	top := math.Max(r.Top, o.Top)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}, true
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left, o.Left)
	top := math.Min(r.Top, o.Top)
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Inset returns r shrunk by dx on the left and right and by dy on the top
// and bottom. Negative values grow the rectangle. The center is preserved.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// Translate returns r moved by the given offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Left: r.Left + offset.X, Top: r.Top + offset.Y, Width: r.Width, Height: r.Height}
}

// WithPosition returns r moved so its top-left corner is at p.
func (r Rect) WithPosition(p Point) Rect {
	return Rect{Left: p.X, Top: p.Y, Width: r.Width, Height: r.Height}
}

// WithSize returns r resized to the given extent, keeping the top-left
// corner fixed.
func (r Rect) WithSize(s Point) Rect {
	return Rect{Left: r.Left, Top: r.Top, Width: s.X, Height: s.Y}
}

// Contains reports whether the point lies inside r, with the left and top
// edges inclusive and the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() &&
		p.Y >= r.Top && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely within r, edges inclusive.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right() <= r.Right() &&
		o.Top >= r.Top && o.Bottom() <= r.Bottom()
}
