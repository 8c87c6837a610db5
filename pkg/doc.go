// Package pkg provides the core libraries of the tabview layout engine.
//
// # Overview
//
// Tabview arranges movable, resizable rectangular panels on a bounded
// canvas: panels snap to alignment lines while dragged, push each other
// apart when they land on one another, and pack into grids on demand. The
// pkg directory is organized into small focused packages:
//
//  1. [geom] - Points, rectangles, and axis math
//  2. [trench] - Snap-line registry (per-panel border and guide lines)
//  3. [snap] - Drag/resize snap resolver over a trench registry
//  4. [arrange] - Canvas, drag sessions, push-away, grid arrangement
//  5. [config] - Engine tuning (gutters, snap radii, minimum sizes)
//
// # Architecture
//
// The typical flow of one user interaction:
//
//	pointer events (UI layer)
//	         ↓
//	    [snap] package (resolve dragged rect against trenches)
//	         ↓
//	    [arrange] package (commit, push-away, squish/unsquish)
//	         ↓
//	    updated panel rectangles
//
// # Quick Start
//
// Build a canvas, add panels, and resolve an overlap:
//
//	import (
//	    "github.com/autonome/tabview/pkg/arrange"
//	    "github.com/autonome/tabview/pkg/config"
//	    "github.com/autonome/tabview/pkg/geom"
//	)
//
//	canvas, _ := arrange.NewCanvas(config.Defaults(), geom.NewRect(0, 0, 1200, 800))
//
//	a := arrange.NewPanel(geom.NewRect(100, 100, 300, 200))
//	b := arrange.NewPanel(geom.NewRect(250, 150, 300, 200))
//	_ = canvas.Add(a)
//	_ = canvas.Add(b)
//
//	// a just moved; displace whatever it now overlaps.
//	_ = canvas.PushAway(a.ID(), false)
//
// Run a snap-assisted drag:
//
//	drag, _ := canvas.BeginDrag(a.ID(), arrange.DragOptions{Corner: snap.CornerNone})
//	rect, _ := drag.Snap(geom.NewRect(104, 120, 300, 200)) // every pointer move
//	_ = drag.Stop(false)                                   // commit + push-away
//
// Pack everything into a grid:
//
//	_, _ = canvas.Pack(canvas.Bounds(), arrange.GridOptions{})
//
// # Main Packages
//
// [geom] - Value types for points and rectangles with the intersection,
// union, inset, and containment operations the engine is built on.
//
// [trench] - The registry of snap lines. Every panel owns eight trenches:
// four border trenches on its edges and four guide trenches one gutter
// outside them. Nearest-trench queries drive snapping.
//
// [snap] - Resolves a dragged rectangle against the trench registry:
// moves snap both edges per axis, resizes snap only the free edges, and
// an aspect lock derives height from the snapped width.
//
// [arrange] - The engine core: the Canvas context object, the Arrangeable
// panel contract, drag sessions, the push-away resolver with squish and
// unsquish, and the grid arranger.
//
// [config] - Tuning constants with TOML loading.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Hook points for layout instrumentation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/arrange/...  # Specific package
//
// [geom]: https://pkg.go.dev/github.com/autonome/tabview/pkg/geom
// [trench]: https://pkg.go.dev/github.com/autonome/tabview/pkg/trench
// [snap]: https://pkg.go.dev/github.com/autonome/tabview/pkg/snap
// [arrange]: https://pkg.go.dev/github.com/autonome/tabview/pkg/arrange
// [config]: https://pkg.go.dev/github.com/autonome/tabview/pkg/config
// [errors]: https://pkg.go.dev/github.com/autonome/tabview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/autonome/tabview/pkg/observability
package pkg
