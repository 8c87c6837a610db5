package arrange

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/autonome/tabview/pkg/config"
	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
	"github.com/autonome/tabview/pkg/trench"
)

// itemTrenches tracks the trench ids registered for one item: a border
// set on its edges and a guide set one gutter outside them.
type itemTrenches struct {
	border trench.EdgeIDs
	guide  trench.EdgeIDs
}

// Canvas is the context object for one layout surface. It owns the item
// registry, the trench registry, the safe window bounds, and the pending
// queue used to coalesce push-away requests while paused.
//
// A Canvas is not safe for concurrent use; the engine relies on the
// single-threaded event model of its caller.
type Canvas struct {
	cfg      config.Config
	logger   *log.Logger
	bounds   geom.Rect
	trenches *trench.Registry

	items    []Arrangeable // insertion order, the deterministic iteration order
	index    map[string]Arrangeable
	trenchID map[string]itemTrenches

	paused     bool
	pending    []pendingPush
	pendingIdx map[string]int
}

// pendingPush is one coalesced push-away request raised while paused.
type pendingPush struct {
	itemID      string
	immediately bool
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger attaches a logger for debug-level operation summaries. The
// default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCanvas creates a canvas with the given tuning and safe window bounds
// (the viewport minus chrome, the area items must stay within).
func NewCanvas(cfg config.Config, bounds geom.Rect, opts ...Option) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateBounds(bounds.Left, bounds.Top, bounds.Width, bounds.Height); err != nil {
		return nil, err
	}

	c := &Canvas{
		cfg:        cfg,
		logger:     log.New(io.Discard),
		bounds:     bounds,
		trenches:   trench.NewRegistry(cfg.Gutter),
		index:      make(map[string]Arrangeable),
		trenchID:   make(map[string]itemTrenches),
		pendingIdx: make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the canvas tuning.
func (c *Canvas) Config() config.Config { return c.cfg }

// Bounds returns the safe window bounds.
func (c *Canvas) Bounds() geom.Rect { return c.bounds }

// SetBounds replaces the safe window bounds (e.g. after a window resize).
func (c *Canvas) SetBounds(bounds geom.Rect) error {
	if err := errors.ValidateBounds(bounds.Left, bounds.Top, bounds.Width, bounds.Height); err != nil {
		return err
	}
	c.bounds = bounds
	return nil
}

// Trenches exposes the trench registry, for snap resolvers and tests.
func (c *Canvas) Trenches() *trench.Registry { return c.trenches }

// Len returns the number of registered items.
func (c *Canvas) Len() int { return len(c.items) }

// Items returns the registered items in insertion order.
func (c *Canvas) Items() []Arrangeable {
	out := make([]Arrangeable, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the item with the given id.
func (c *Canvas) Item(id string) (Arrangeable, bool) {
	it, ok := c.index[id]
	return it, ok
}

// Add registers an item with the canvas, creating and positioning its
// border and guide trenches. The item's bounds must be valid.
func (c *Canvas) Add(item Arrangeable) error {
	b := item.Bounds()
	if err := errors.ValidateRect(b.Left, b.Top, b.Width, b.Height); err != nil {
		return err
	}
	id := item.ID()
	if _, dup := c.index[id]; dup {
		return errors.New(errors.ErrCodeInvalidOption, "item %s already registered", id)
	}

	c.items = append(c.items, item)
	c.index[id] = item
	c.trenchID[id] = itemTrenches{
		border: c.trenches.Register(id, trench.KindBorder),
		guide:  c.trenches.Register(id, trench.KindGuide),
	}
	c.updateTrenches(item)
	return nil
}

// Remove deregisters an item and unregisters its trenches. Any pending
// push-away request for it is dropped. The item itself is untouched; its
// lifecycle belongs to the caller.
func (c *Canvas) Remove(id string) {
	if _, ok := c.index[id]; !ok {
		return
	}
	delete(c.index, id)
	for i, it := range c.items {
		if it.ID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	if ids, ok := c.trenchID[id]; ok {
		c.trenches.Unregister(ids.border.All()...)
		c.trenches.Unregister(ids.guide.All()...)
		delete(c.trenchID, id)
	}
	if idx, ok := c.pendingIdx[id]; ok {
		c.pending = append(c.pending[:idx], c.pending[idx+1:]...)
		delete(c.pendingIdx, id)
		for i := idx; i < len(c.pending); i++ {
			c.pendingIdx[c.pending[i].itemID] = i
		}
	}
}

// applyBounds commits a rectangle to an item and repositions its trenches.
func (c *Canvas) applyBounds(item Arrangeable, r geom.Rect) {
	item.SetBounds(r)
	c.updateTrenches(item)
}

// updateTrenches repositions all eight trenches of an item from its
// current bounds.
func (c *Canvas) updateTrenches(item Arrangeable) {
	ids, ok := c.trenchID[item.ID()]
	if !ok {
		return
	}
	b := item.Bounds()
	for _, id := range append(ids.border.All(), ids.guide.All()...) {
		// Ids are owned by the registry and were just registered;
		// a failure here would be a programming error.
		_ = c.trenches.SetWithRect(id, b)
	}
}

// Pause suspends push-away. Requests raised while paused are coalesced by
// item (last write wins) and replayed in insertion order on Resume. Used
// to batch bursts of arrangement work such as initial load.
func (c *Canvas) Pause() { c.paused = true }

// Paused reports whether push-away is suspended.
func (c *Canvas) Paused() bool { return c.paused }

// Resume replays the pending push-away requests in the order their items
// first appeared and clears the queue.
func (c *Canvas) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	pending := c.pending
	c.pending = nil
	c.pendingIdx = make(map[string]int)

	for _, p := range pending {
		if _, ok := c.index[p.itemID]; !ok {
			continue
		}
		if err := c.PushAway(p.itemID, p.immediately); err != nil {
			c.logger.Error("replaying pending push-away", "item", p.itemID, "err", err)
		}
	}
}

// enqueuePending records a push-away request raised while paused,
// coalescing by item id with last-write-wins semantics.
func (c *Canvas) enqueuePending(itemID string, immediately bool) {
	if idx, ok := c.pendingIdx[itemID]; ok {
		c.pending[idx].immediately = immediately
		return
	}
	c.pendingIdx[itemID] = len(c.pending)
	c.pending = append(c.pending, pendingPush{itemID: itemID, immediately: immediately})
}
