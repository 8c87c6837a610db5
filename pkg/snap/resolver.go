// Package snap adjusts in-flight drag and resize rectangles so their free
// edges align to nearby trenches.
//
// A Resolver is bound to one moving item and one trench registry. Snap may
// be called repeatedly during a continuous drag; it is a pure computation
// over the registry with no side effects, so callers can invoke it on
// every pointer move. Committing the result (and triggering push-away) is
// the arrange package's job.
package snap

import (
	"math"

	"github.com/autonome/tabview/pkg/geom"
	"github.com/autonome/tabview/pkg/trench"
)

// Corner identifies which corner of the rectangle stays fixed during a
// resize. CornerNone means the whole rectangle moves (a plain drag).
type Corner string

// Stationary corner values.
const (
	CornerNone        Corner = "none"
	CornerTopLeft     Corner = "topleft"
	CornerTopRight    Corner = "topright"
	CornerBottomLeft  Corner = "bottomleft"
	CornerBottomRight Corner = "bottomright"
)

// Match records one edge that snapped to a trench.
type Match struct {
	Axis   geom.Axis
	Trench trench.Trench
	Delta  float64 // applied correction on the axis
}

// Options tunes a Resolver.
type Options struct {
	// Radius is the trench search radius. Required.
	Radius float64

	// Creation doubles the radius, making drag-out item creation more
	// eager to pick up guides.
	Creation bool

	// MinSize clamps resize results so a snap can never produce an item
	// below the global minimum. Zero components disable clamping on
	// that axis.
	MinSize geom.Point
}

// Resolver snaps one moving item's rectangle against a trench registry.
type Resolver struct {
	reg    *trench.Registry
	itemID string
	radius float64
	min    geom.Point
}

// New creates a resolver for the item identified by itemID. The item's own
// trenches are excluded from every query.
func New(reg *trench.Registry, itemID string, opts Options) *Resolver {
	radius := opts.Radius
	if opts.Creation {
		radius *= 2
	}
	return &Resolver{reg: reg, itemID: itemID, radius: radius, min: opts.MinSize}
}

// Snap returns rect adjusted so each free edge aligns to the nearest
// trench within the search radius, along with the matches that were
// applied. Edges with no trench in range keep their raw dragged position.
//
// With a stationary corner set, only the opposite edges are free and the
// adjustment changes the size instead of the position. With lockAspect
// set during a resize, only the X axis is snapped and the height is
// derived from the resulting width using the input rectangle's aspect
// ratio.
func (r *Resolver) Snap(rect geom.Rect, corner Corner, lockAspect bool) (geom.Rect, []Match) {
	if corner == CornerNone {
		return r.snapMove(rect)
	}
	return r.snapResize(rect, corner, lockAspect)
}

// snapMove translates the rectangle, considering both edges per axis.
func (r *Resolver) snapMove(rect geom.Rect) (geom.Rect, []Match) {
	var matches []Match

	if m, ok := r.nearestOfEdges(geom.AxisX, rect.Top, rect.Bottom(), rect.Left, rect.Right()); ok {
		rect.Left += m.Delta
		matches = append(matches, m)
	}
	if m, ok := r.nearestOfEdges(geom.AxisY, rect.Left, rect.Right(), rect.Top, rect.Bottom()); ok {
		rect.Top += m.Delta
		matches = append(matches, m)
	}
	return rect, matches
}

// snapResize adjusts the free edges, keeping the stationary corner fixed.
func (r *Resolver) snapResize(rect geom.Rect, corner Corner, lockAspect bool) (geom.Rect, []Match) {
	var matches []Match
	aspect := 0.0
	if rect.Height > 0 {
		aspect = rect.Width / rect.Height
	}

	// Free vertical edge: right when the stationary corner is on the
	// left, left otherwise.
	leftFixed := corner == CornerTopLeft || corner == CornerBottomLeft
	edgeX := rect.Left
	if leftFixed {
		edgeX = rect.Right()
	}
	if m, ok := r.nearest(geom.AxisX, edgeX, rect.Top, rect.Bottom()); ok {
		if leftFixed {
			rect.Width += m.Delta
		} else {
			rect.Left += m.Delta
			rect.Width -= m.Delta
		}
		matches = append(matches, m)
	}

	if lockAspect && aspect > 0 {
		height := rect.Width / aspect
		if corner == CornerBottomLeft || corner == CornerBottomRight {
			rect.Top = rect.Bottom() - height
		}
		rect.Height = height
		return r.clampResize(rect, corner), matches
	}

	topFixed := corner == CornerTopLeft || corner == CornerTopRight
	edgeY := rect.Top
	if topFixed {
		edgeY = rect.Bottom()
	}
	if m, ok := r.nearest(geom.AxisY, edgeY, rect.Left, rect.Right()); ok {
		if topFixed {
			rect.Height += m.Delta
		} else {
			rect.Top += m.Delta
			rect.Height -= m.Delta
		}
		matches = append(matches, m)
	}
	return r.clampResize(rect, corner), matches
}

// clampResize enforces the minimum size while keeping the stationary
// corner in place.
func (r *Resolver) clampResize(rect geom.Rect, corner Corner) geom.Rect {
	if r.min.X > 0 && rect.Width < r.min.X {
		if corner == CornerTopRight || corner == CornerBottomRight {
			rect.Left -= r.min.X - rect.Width
		}
		rect.Width = r.min.X
	}
	if r.min.Y > 0 && rect.Height < r.min.Y {
		if corner == CornerBottomLeft || corner == CornerBottomRight {
			rect.Top -= r.min.Y - rect.Height
		}
		rect.Height = r.min.Y
	}
	return rect
}

// nearest queries one edge coordinate on the given axis.
func (r *Resolver) nearest(axis geom.Axis, pos, spanStart, spanEnd float64) (Match, bool) {
	t, ok := r.reg.Nearest(trench.NearestQuery{
		Axis:      axis,
		Position:  pos,
		Radius:    r.radius,
		SpanStart: spanStart,
		SpanEnd:   spanEnd,
		Exclude:   r.itemID,
	})
	if !ok {
		return Match{}, false
	}
	return Match{Axis: axis, Trench: t, Delta: t.Position - pos}, true
}

// nearestOfEdges queries both edges of the moving rectangle on one axis
// and keeps the closer match.
func (r *Resolver) nearestOfEdges(axis geom.Axis, spanStart, spanEnd, lowEdge, highEdge float64) (Match, bool) {
	low, okLow := r.nearest(axis, lowEdge, spanStart, spanEnd)
	high, okHigh := r.nearest(axis, highEdge, spanStart, spanEnd)

	switch {
	case okLow && okHigh:
		// The leading (low) edge wins exact ties.
		if math.Abs(high.Delta) < math.Abs(low.Delta) {
			return high, true
		}
		return low, true
	case okLow:
		return low, true
	case okHigh:
		return high, true
	}
	return Match{}, false
}
