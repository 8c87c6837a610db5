// Package geom provides the rectangle and point math underlying the layout
// engine.
//
// All coordinates are in user units (typically CSS pixels) with the origin at
// the top-left and Y growing downward. The types are plain values; operations
// return new values rather than mutating receivers.
package geom

// Point is a 2D position or size vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Equals reports whether p and q have exactly equal coordinates.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Axis identifies one of the two coordinate axes.
type Axis int

const (
	// AxisX is the horizontal axis. Vertical guide lines constrain X.
	AxisX Axis = iota

	// AxisY is the vertical axis. Horizontal guide lines constrain Y.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}
