package trench

import (
	"math"

	"github.com/google/uuid"

	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
)

// EdgeIDs holds the four trench ids created for one item by Register.
type EdgeIDs struct {
	Left, Right, Top, Bottom string
}

// All returns the four ids as a slice, for bulk Unregister calls.
func (ids EdgeIDs) All() []string {
	return []string{ids.Left, ids.Right, ids.Top, ids.Bottom}
}

// Registry holds all live trenches for one canvas and answers
// nearest-trench queries. It is not safe for concurrent use; the layout
// engine runs single-threaded.
type Registry struct {
	gutter float64
	byID   map[string]*Trench
	order  []string // registration order, for stable tie-breaks
}

// NewRegistry creates an empty registry. The gutter is the outward offset
// applied to guide trenches.
func NewRegistry(gutter float64) *Registry {
	return &Registry{
		gutter: gutter,
		byID:   make(map[string]*Trench),
	}
}

// Len returns the number of live trenches.
func (r *Registry) Len() int { return len(r.byID) }

// Register creates four trenches (one per edge) owned by the given item
// and returns their ids. Positions are unset until SetWithRect is called.
//
// Calling Register twice for the same item without unregistering the
// first set leaks trenches; callers must Unregister first.
func (r *Registry) Register(owner string, kind Kind) EdgeIDs {
	ids := EdgeIDs{
		Left:   r.add(owner, kind, EdgeLeft),
		Right:  r.add(owner, kind, EdgeRight),
		Top:    r.add(owner, kind, EdgeTop),
		Bottom: r.add(owner, kind, EdgeBottom),
	}
	return ids
}

func (r *Registry) add(owner string, kind Kind, edge Edge) string {
	id := uuid.NewString()
	r.byID[id] = &Trench{ID: id, Edge: edge, Kind: kind, Owner: owner}
	r.order = append(r.order, id)
	return id
}

// SetWithRect updates one trench's position and extent from the
// corresponding edge of the given rectangle. Border trenches take the edge
// coordinate directly; guide trenches are offset outward by the gutter and
// their extent widened by it, so items approaching from either side can
// reach them.
func (r *Registry) SetWithRect(id string, rect geom.Rect) error {
	t, ok := r.byID[id]
	if !ok {
		return errors.New(errors.ErrCodeTrenchNotFound, "trench %s", id)
	}

	offset := 0.0
	if t.Kind == KindGuide {
		offset = r.gutter
	}

	switch t.Edge {
	case EdgeLeft:
		t.Position = rect.Left - offset
		t.Start, t.End = rect.Top-offset, rect.Bottom()+offset
	case EdgeRight:
		t.Position = rect.Right() + offset
		t.Start, t.End = rect.Top-offset, rect.Bottom()+offset
	case EdgeTop:
		t.Position = rect.Top - offset
		t.Start, t.End = rect.Left-offset, rect.Right()+offset
	case EdgeBottom:
		t.Position = rect.Bottom() + offset
		t.Start, t.End = rect.Left-offset, rect.Right()+offset
	}
	return nil
}

// Unregister removes the given trenches. Unknown ids are ignored, so
// removing an already-unregistered set is harmless.
func (r *Registry) Unregister(ids ...string) {
	removed := false
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			delete(r.byID, id)
			removed = true
		}
	}
	if !removed {
		return
	}
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.byID[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
}

// ByID returns the trench with the given id.
func (r *Registry) ByID(id string) (Trench, bool) {
	t, ok := r.byID[id]
	if !ok {
		return Trench{}, false
	}
	return *t, true
}

// NearestQuery describes a nearest-trench lookup.
type NearestQuery struct {
	// Axis selects vertical (AxisX) or horizontal (AxisY) trenches.
	Axis geom.Axis

	// Position is the candidate edge coordinate on Axis.
	Position float64

	// Radius is the maximum distance at which a trench matches.
	Radius float64

	// SpanStart and SpanEnd bound the moving rectangle's extent on the
	// perpendicular axis. When SpanEnd > SpanStart, only trenches whose
	// extent overlaps the span are considered.
	SpanStart, SpanEnd float64

	// Exclude skips trenches owned by this item (the one being moved).
	Exclude string
}

// Nearest returns the closest matching trench within the query radius.
// When two trenches are exactly equidistant the first-registered one wins;
// this is stable for a fixed registry state but intentionally not a
// contract callers should depend on.
func (r *Registry) Nearest(q NearestQuery) (Trench, bool) {
	var best *Trench
	bestDist := math.Inf(1)

	for _, id := range r.order {
		t := r.byID[id]
		if t.Owner == q.Exclude || t.Axis() != q.Axis {
			continue
		}
		if q.SpanEnd > q.SpanStart && !t.Overlaps(q.SpanStart, q.SpanEnd) {
			continue
		}
		dist := math.Abs(t.Position - q.Position)
		if dist <= q.Radius && dist < bestDist {
			best = t
			bestDist = dist
		}
	}

	if best == nil {
		return Trench{}, false
	}
	return *best, true
}
