// Package arrange is the heart of the layout engine: it owns the canvas of
// items and resolves their placement.
//
// The package provides three cooperating pieces:
//
//   - Canvas: the explicit context object holding the item set, the safe
//     window bounds, the trench registry, and the tuning configuration.
//     There is no package-level mutable state; every operation goes through
//     a Canvas.
//   - Drag: a snap-assisted drag/resize session for one item. Snap may be
//     called on every pointer move; Stop commits the result and triggers
//     push-away; Cancel abandons the session without side effects.
//   - Push-away and grid arrangement: the placement algorithms invoked when
//     an item is committed or when items must be packed into a bounded
//     area.
//
// All operations are synchronous and single-threaded; the event-driven UI
// layer calling in is the only scheduler.
package arrange

import (
	"github.com/google/uuid"

	"github.com/autonome/tabview/pkg/geom"
)

// Arrangeable is the capability set the engine needs from an item. The UI
// layer owns item identity and lifecycle; the engine only reads and writes
// bounds, the remembered user size, and stacking order.
type Arrangeable interface {
	// ID returns the item's stable unique identifier.
	ID() string

	// Bounds returns the item's current rectangle.
	Bounds() geom.Rect

	// SetBounds applies a new rectangle to the item.
	SetBounds(geom.Rect)

	// UserSize returns the last explicitly chosen size, if any.
	UserSize() (geom.Point, bool)

	// SetUserSize remembers an explicitly chosen size. Unsquish grows
	// items back toward this size when room allows.
	SetUserSize(geom.Point)

	// SetZ assigns the stacking order.
	SetZ(z int)

	// Close releases the item. Called by the UI layer, never by the
	// engine.
	Close()
}

// Panel is the concrete Arrangeable used by the engine's own tooling and
// tests. UI layers embedding richer state can provide their own type.
type Panel struct {
	id       string
	bounds   geom.Rect
	userSize *geom.Point
	z        int
	closed   bool
}

// NewPanel creates a panel with a generated id.
func NewPanel(bounds geom.Rect) *Panel {
	return &Panel{id: uuid.NewString(), bounds: bounds}
}

// NewPanelWithID creates a panel with a caller-chosen id (canvas files,
// tests).
func NewPanelWithID(id string, bounds geom.Rect) *Panel {
	return &Panel{id: id, bounds: bounds}
}

// ID returns the panel id.
func (p *Panel) ID() string { return p.id }

// Bounds returns the current rectangle.
func (p *Panel) Bounds() geom.Rect { return p.bounds }

// SetBounds applies a new rectangle.
func (p *Panel) SetBounds(r geom.Rect) { p.bounds = r }

// UserSize returns the remembered explicit size, if set.
func (p *Panel) UserSize() (geom.Point, bool) {
	if p.userSize == nil {
		return geom.Point{}, false
	}
	return *p.userSize, true
}

// SetUserSize remembers an explicitly chosen size.
func (p *Panel) SetUserSize(s geom.Point) {
	size := s
	p.userSize = &size
}

// ClearUserSize forgets the remembered size.
func (p *Panel) ClearUserSize() { p.userSize = nil }

// Z returns the stacking order.
func (p *Panel) Z() int { return p.z }

// SetZ assigns the stacking order.
func (p *Panel) SetZ(z int) { p.z = z }

// Close marks the panel closed.
func (p *Panel) Close() { p.closed = true }

// Closed reports whether Close was called.
func (p *Panel) Closed() bool { return p.closed }
