package arrange

import (
	"math"
	"time"

	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
	"github.com/autonome/tabview/pkg/observability"
)

// unplaced marks an item not yet reached by the push propagation. It acts
// as generation infinity: any finite generation outranks it.
const unplaced = math.MaxInt32

// scratch is the per-item working record of one push-away pass. It lives
// in a side table allocated fresh per pass, so no state leaks between
// passes and an abandoned drag can never poison a later one.
type scratch struct {
	bounds     geom.Rect // working bounds, mutated through the pass
	start      geom.Rect // bounds at pass start, for change detection
	generation int       // push depth; doubles as placement priority
	pusher     string    // id of the item that displaced this one
}

// PushAway displaces items so that none overlap after the seed item moved
// or resized, then squishes the result against the safe window bounds and
// relaxes items back toward their preferred sizes where room allows.
// Changed bounds are committed to the items; immediately selects between
// animated and instant application at the UI layer and is passed through
// untouched.
//
// While the canvas is paused the request is queued (coalesced by item,
// last write wins) and replayed on Resume. With fewer than two items the
// pass is a no-op.
func (c *Canvas) PushAway(seedID string, immediately bool) error {
	seed, ok := c.index[seedID]
	if !ok {
		return errors.New(errors.ErrCodeItemNotFound, "item %s", seedID)
	}
	if c.paused {
		c.enqueuePending(seedID, immediately)
		return nil
	}
	if len(c.items) < 2 {
		return nil
	}

	start := time.Now()
	observability.Layout().OnPushAwayStart(seedID, len(c.items))

	side := make(map[string]*scratch, len(c.items))
	for _, it := range c.items {
		b := it.Bounds()
		side[it.ID()] = &scratch{bounds: b, start: b, generation: unplaced}
	}
	side[seed.ID()].generation = 0

	c.propagate(side, seedID)
	c.squish(side)
	c.unsquish(side)

	moved := 0
	for _, it := range c.items {
		sc := side[it.ID()]
		if !sc.bounds.Equals(sc.start) {
			c.applyBounds(it, sc.bounds)
			moved++
		}
	}

	elapsed := time.Since(start)
	observability.Layout().OnPushAwayComplete(seedID, moved, elapsed)
	c.logger.Debug("push-away pass", "seed", seedID, "items", len(c.items), "moved", moved, "elapsed", elapsed)
	return nil
}

// propagate walks the displacement outward from the seed in repeated
// sweeps. A placed item (finite generation) pushes every item it overlaps
// whose generation is at least its own, except the seed; the pushed item
// takes the pusher's generation plus one. Pre-existing overlaps between
// items the seed never disturbed are left alone: unplaced items do not
// push.
//
// Sweeping repeats until a full pass moves nothing. A single pass is not
// enough: two items pushed to the same generation can land on each other,
// and only a later sweep resolves them. The sweep count is capped as a
// backstop for pathological inputs; layouts that dense are handed to the
// squish clamp as-is.
func (c *Canvas) propagate(side map[string]*scratch, seedID string) {
	half := c.cfg.Gutter / 2
	maxSweeps := len(c.items) * len(c.items)

	for sweep := 0; sweep < maxSweeps; sweep++ {
		changed := false
		for _, baseItem := range c.items {
			baseID := baseItem.ID()
			base := side[baseID]
			if base.generation == unplaced {
				continue
			}
			baseInf := base.bounds.Inset(-half, -half)

			for _, it := range c.items {
				id := it.ID()
				if id == baseID || id == seedID {
					continue
				}
				sc := side[id]
				if sc.generation < base.generation {
					continue // placed with higher priority
				}
				inf := sc.bounds.Inset(-half, -half)
				if !baseInf.Intersects(inf) {
					continue
				}

				sc.bounds = sc.bounds.Translate(pushOffset(baseInf, inf))
				sc.generation = base.generation + 1
				sc.pusher = baseID
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	c.logger.Warn("push propagation hit the sweep cap", "items", len(c.items))
}

// pushOffset computes the displacement that separates target from base,
// both already inflated by the half gutter. The push goes along whichever
// axis has the larger center-to-center separation, in the direction away
// from base's center. X wins exact ties.
func pushOffset(base, target geom.Rect) geom.Point {
	d := target.Center().Sub(base.Center())

	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X >= 0 {
			return geom.Point{X: base.Right() - target.Left}
		}
		return geom.Point{X: base.Left - target.Right()}
	}
	if d.Y >= 0 {
		return geom.Point{Y: base.Bottom() - target.Top}
	}
	return geom.Point{Y: base.Top - target.Bottom()}
}

// squish pulls pushed items back inside the safe window bounds, sharing
// the compression back up each item's pusher chain instead of
// concentrating it on the outermost item.
func (c *Canvas) squish(side map[string]*scratch) {
	pb := c.bounds
	for _, it := range c.items {
		sc := side[it.ID()]
		if sc.generation == 0 || sc.generation == unplaced {
			continue // only pushed items are squished
		}
		if over := sc.bounds.Right() - pb.Right(); over > 0 {
			c.squishChain(side, it.ID(), over, geom.AxisX, 1)
		}
		if over := pb.Left - sc.bounds.Left; over > 0 {
			c.squishChain(side, it.ID(), over, geom.AxisX, -1)
		}
		if over := sc.bounds.Bottom() - pb.Bottom(); over > 0 {
			c.squishChain(side, it.ID(), over, geom.AxisY, 1)
		}
		if over := pb.Top - sc.bounds.Top; over > 0 {
			c.squishChain(side, it.ID(), over, geom.AxisY, -1)
		}
	}

	// Shrink shares are clamped to the minimum size as they are
	// distributed, so deep chains can leave residual overflow; a final
	// clamp keeps every pushed item on screen regardless.
	for _, it := range c.items {
		sc := side[it.ID()]
		if sc.generation == 0 || sc.generation == unplaced {
			continue
		}
		sc.bounds = c.clampInto(sc.bounds)
	}
}

// squishChain distributes overflow across the pusher chain of the
// overflowing item. Each chain member gives up an equal share of extent
// on the axis (clamped to the minimum size), and
// members farther out shift back by the space freed behind them. dir is
// +1 when the overflow is past the high edge (right/bottom), -1 past the
// low edge (left/top).
func (c *Canvas) squishChain(side map[string]*scratch, itemID string, overflow float64, axis geom.Axis, dir float64) {
	// Collect the chain seed-inward: generation 1 first, the
	// overflowing item last. Re-pushes during propagation can knot the
	// pusher links, so visited ids end the walk.
	var chain []*scratch
	seen := make(map[string]bool)
	for cur := itemID; cur != "" && !seen[cur]; {
		seen[cur] = true
		s := side[cur]
		if s.generation == 0 {
			break
		}
		chain = append(chain, s)
		cur = s.pusher
	}
	if len(chain) == 0 {
		return
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	share := overflow / float64(len(chain))

	min := c.cfg.MinSize()
	freed := 0.0
	for _, s := range chain {
		b := s.bounds
		var actual float64
		if axis == geom.AxisX {
			newWidth := ValidSize(geom.Point{X: b.Width - share, Y: b.Height}, min).X
			actual = b.Width - newWidth
			if dir > 0 {
				b.Left -= freed // close the gap behind
			} else {
				b.Left += freed + actual // keep the high edge fixed
			}
			b.Width = newWidth
		} else {
			newHeight := ValidSize(geom.Point{X: b.Width, Y: b.Height - share}, min).Y
			actual = b.Height - newHeight
			if dir > 0 {
				b.Top -= freed
			} else {
				b.Top += freed + actual
			}
			b.Height = newHeight
		}
		s.bounds = b
		freed += actual
	}
}

// clampInto forces a rectangle inside the safe window bounds: size first
// (never exceeding the window), then position.
func (c *Canvas) clampInto(r geom.Rect) geom.Rect {
	pb := c.bounds
	if r.Width > pb.Width {
		r.Width = pb.Width
	}
	if r.Height > pb.Height {
		r.Height = pb.Height
	}
	if r.Left < pb.Left {
		r.Left = pb.Left
	}
	if r.Right() > pb.Right() {
		r.Left = pb.Right() - r.Width
	}
	if r.Top < pb.Top {
		r.Top = pb.Top
	}
	if r.Bottom() > pb.Bottom() {
		r.Top = pb.Bottom() - r.Height
	}
	return r
}

// unsquish grows items back toward their preferred size (the remembered
// user size, else the configured minimum) where room allows. Growth is
// centered, re-clamped to the window, and applied only if it causes no
// overlap with any other item's resolved bounds.
func (c *Canvas) unsquish(side map[string]*scratch) {
	for _, it := range c.items {
		id := it.ID()
		sc := side[id]

		pref := c.cfg.MinSize()
		if us, ok := it.UserSize(); ok {
			pref = c.ValidSize(us)
		}
		if sc.bounds.Width >= pref.X && sc.bounds.Height >= pref.Y {
			continue
		}

		target := geom.Point{
			X: math.Max(sc.bounds.Width, pref.X),
			Y: math.Max(sc.bounds.Height, pref.Y),
		}
		candidate := sc.bounds.Inset(
			-(target.X-sc.bounds.Width)/2,
			-(target.Y-sc.bounds.Height)/2,
		)
		candidate = c.clampInto(candidate)

		blocked := false
		for _, other := range c.items {
			if other.ID() == id {
				continue
			}
			if candidate.Intersects(side[other.ID()].bounds) {
				blocked = true
				break
			}
		}
		if !blocked {
			sc.bounds = candidate
		}
	}
}
