package arrange

import (
	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
	"github.com/autonome/tabview/pkg/observability"
	"github.com/autonome/tabview/pkg/snap"
)

// DragOptions configures a drag/resize session.
type DragOptions struct {
	// Corner is the stationary corner during a resize; CornerNone (the
	// zero value is not valid, pass snap.CornerNone explicitly) for a
	// plain move.
	Corner snap.Corner

	// Creation marks a drag-out item creation, doubling the snap radius.
	Creation bool

	// LockAspect derives the height from the snapped width during a
	// resize, preserving the rectangle's aspect ratio.
	LockAspect bool
}

// Drag is one snap-assisted drag or resize session for a single item.
// Snap may be called on every pointer move; nothing is committed until
// Stop. Cancel abandons the session and restores the starting bounds.
type Drag struct {
	canvas   *Canvas
	item     Arrangeable
	resolver *snap.Resolver
	opts     DragOptions
	start    geom.Rect
	current  geom.Rect
	active   bool
}

// BeginDrag opens a drag session for the given item.
func (c *Canvas) BeginDrag(itemID string, opts DragOptions) (*Drag, error) {
	item, ok := c.index[itemID]
	if !ok {
		return nil, errors.New(errors.ErrCodeItemNotFound, "item %s", itemID)
	}
	if opts.Corner == "" {
		return nil, errors.New(errors.ErrCodeInvalidOption, "stationary corner must be set (use snap.CornerNone for a move)")
	}

	b := item.Bounds()
	return &Drag{
		canvas: c,
		item:   item,
		resolver: snap.New(c.trenches, itemID, snap.Options{
			Radius:   c.cfg.SnapRadius,
			Creation: opts.Creation,
			MinSize:  c.cfg.MinSize(),
		}),
		opts:    opts,
		start:   b,
		current: b,
		active:  true,
	}, nil
}

// Snap computes the snapped position for the given raw dragged rectangle
// and remembers it as the provisional result. It is cheap and has no side
// effects on the canvas, so it can run on every pointer move. The
// provisional bounds may transiently leave the safe window; Stop clamps
// them back inside at commit.
func (d *Drag) Snap(rect geom.Rect) (geom.Rect, error) {
	if !d.active {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidOption, "drag session already finished")
	}
	if err := errors.ValidateRect(rect.Left, rect.Top, rect.Width, rect.Height); err != nil {
		return geom.Rect{}, err
	}

	snapped, matches := d.resolver.Snap(rect, d.opts.Corner, d.opts.LockAspect)
	for _, m := range matches {
		observability.Layout().OnSnap(d.item.ID(), m.Trench.ID, m.Axis.String(), m.Delta)
	}
	d.current = snapped
	return snapped, nil
}

// Stop finalizes the session: the provisional bounds are clamped into
// the safe window and committed, a resize updates the item's remembered
// user size, and push-away resolves any resulting overlaps. immediately
// is forwarded to the commit.
func (d *Drag) Stop(immediately bool) error {
	if !d.active {
		return errors.New(errors.ErrCodeInvalidOption, "drag session already finished")
	}
	d.active = false

	size := d.canvas.ValidSize(d.current.Size())
	// Push-away squishes only pushed items, never the seed, so the seed
	// must re-enter the window here.
	d.current = d.canvas.clampInto(d.current.WithSize(size))
	d.canvas.applyBounds(d.item, d.current)

	if d.opts.Corner != snap.CornerNone && !d.start.Size().Equals(size) {
		d.item.SetUserSize(size)
	}
	return d.canvas.PushAway(d.item.ID(), immediately)
}

// Cancel abandons the session, restoring the starting bounds without
// triggering push-away. Safe to call after Stop; it is then a no-op.
func (d *Drag) Cancel() {
	if !d.active {
		return
	}
	d.active = false
	d.canvas.applyBounds(d.item, d.start)
}
