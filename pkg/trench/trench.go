// Package trench maintains the snap lines ("trenches") that drag and resize
// operations align to.
//
// A trench is a horizontal or vertical guide segment coincident with one
// edge of one item. Border trenches sit exactly on the edge; guide trenches
// sit one gutter outside it, so an item snapped to a guide keeps the
// standard spacing from its neighbor. Trenches decouple what produces a
// snap line (item borders, item gutters) from who snaps to it (any dragged
// or resized item), so one registry serves both drag-out creation sizing
// and inter-item snapping.
//
// The Registry owns trench lifecycle: Register creates the four trenches
// for an item, SetWithRect repositions them when the item's bounds change,
// and Unregister removes them when the item goes away.
package trench

import "github.com/autonome/tabview/pkg/geom"

// Edge identifies which side of its owning item a trench tracks.
type Edge string

// The four item edges.
const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Axis returns the axis a trench on this edge constrains: vertical edges
// constrain X, horizontal edges constrain Y.
func (e Edge) Axis() geom.Axis {
	if e == EdgeLeft || e == EdgeRight {
		return geom.AxisX
	}
	return geom.AxisY
}

// Kind distinguishes what a trench snaps to.
type Kind string

const (
	// KindBorder trenches lie exactly on an item edge; snapping to one
	// aligns bounding edges.
	KindBorder Kind = "border"

	// KindGuide trenches lie one gutter outside an item edge; snapping
	// to one preserves the standard spacing.
	KindGuide Kind = "guide"
)

// Trench is a candidate snap line. Position is the coordinate on the
// trench's axis; Start and End bound its extent along the perpendicular
// axis.
type Trench struct {
	ID       string
	Edge     Edge
	Kind     Kind
	Owner    string // id of the owning item
	Position float64
	Start    float64
	End      float64
}

// Axis returns the axis this trench constrains.
func (t Trench) Axis() geom.Axis { return t.Edge.Axis() }

// Overlaps reports whether the trench's extent overlaps the interval
// [lo, hi] on the perpendicular axis.
func (t Trench) Overlaps(lo, hi float64) bool {
	return t.Start < hi && lo < t.End
}
