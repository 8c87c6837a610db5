package arrange

import (
	"time"

	"github.com/autonome/tabview/pkg/config"
	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
	"github.com/autonome/tabview/pkg/observability"
)

// GridOptions configures a grid arrangement.
type GridOptions struct {
	// Columns fixes the column count; 0 chooses the smallest count that
	// makes the rows fit the bounds.
	Columns int

	// Drop, when set, asks for the index of the cell whose active area
	// (cell inflated by the margin) contains the point. Used for
	// "insert here" affordances; no item is mutated.
	Drop *geom.Point

	// MinSize overrides the default minimum cell size. Zero components
	// fall back to the config defaults.
	MinSize geom.Point

	// Margin is the spacing between cells; negative is invalid, zero
	// falls back to the default. Use a small epsilon for truly
	// borderless grids.
	Margin float64

	// Aspect is the preferred width:height ratio of cells; zero falls
	// back to the default.
	Aspect float64

	// RTL fills rows right-to-left.
	RTL bool
}

// Arrangement is the output of a grid computation. Rects are in row-major
// order. DropIndex is -1 when no drop point was supplied or none of the
// cells contain it.
type Arrangement struct {
	Rects     []geom.Rect
	DropIndex int
	Columns   int
}

// ArrangeGrid computes a row/column packing of count uniform cells into
// bounds. The cell size is the largest that fits the column search
// described in the package docs, clamped up to the minimum size even when
// that overflows the bounds (minimums win over containment, matching the
// engine's global size policy).
//
// A count of zero or less yields an empty arrangement, not an error.
func ArrangeGrid(count int, bounds geom.Rect, opts GridOptions) (Arrangement, error) {
	if err := errors.ValidateBounds(bounds.Left, bounds.Top, bounds.Width, bounds.Height); err != nil {
		return Arrangement{}, err
	}
	if opts.Columns < 0 {
		return Arrangement{}, errors.New(errors.ErrCodeInvalidOption, "columns must be non-negative, got %d", opts.Columns)
	}
	if opts.Margin < 0 {
		return Arrangement{}, errors.New(errors.ErrCodeInvalidOption, "margin must be non-negative, got %v", opts.Margin)
	}
	if count <= 0 {
		return Arrangement{DropIndex: -1}, nil
	}

	start := time.Now()
	observability.Layout().OnArrangeStart(count)

	cellW, cellH, columns, _ := gridMetrics(count, bounds, opts)
	margin := gridMargin(opts)

	out := Arrangement{
		Rects:     make([]geom.Rect, 0, count),
		DropIndex: -1,
		Columns:   columns,
	}
	for i := 0; i < count; i++ {
		row := i / columns
		col := i % columns
		if opts.RTL {
			col = columns - 1 - col
		}
		cell := geom.Rect{
			Left:   bounds.Left + float64(col)*cellW,
			Top:    bounds.Top + float64(row)*cellH,
			Width:  cellW,
			Height: cellH,
		}
		out.Rects = append(out.Rects, cell.Inset(margin/2, margin/2))

		if opts.Drop != nil && out.DropIndex < 0 {
			active := cell.Inset(-margin/2, -margin/2)
			if active.Contains(*opts.Drop) {
				out.DropIndex = i
			}
		}
	}

	observability.Layout().OnArrangeComplete(count, columns, time.Since(start))
	return out, nil
}

// GridWidthAndColumns computes only the cell width and column count of a
// grid arrangement, for layout previews that do not need the rectangles.
func GridWidthAndColumns(count int, bounds geom.Rect, opts GridOptions) (float64, int) {
	if count <= 0 {
		return 0, 0
	}
	cellW, _, columns, _ := gridMetrics(count, bounds, opts)
	return cellW, columns
}

// gridMetrics runs the column search: starting from one column (or the
// fixed count), grow the column count until the rows fit the bounds
// vertically. A single-row result re-maximizes the cell height to fill
// the bounds rather than keeping the width-derived height.
func gridMetrics(count int, bounds geom.Rect, opts GridOptions) (cellW, cellH float64, columns, rows int) {
	aspect := opts.Aspect
	if aspect <= 0 {
		aspect = config.DefaultGridAspect
	}

	columns = opts.Columns
	auto := columns == 0
	if auto {
		columns = 1
	}

	for {
		rows = (count + columns - 1) / columns
		cellW = bounds.Width / float64(columns)
		cellH = cellW / aspect
		if !auto || rows == 1 || columns >= count {
			break
		}
		if float64(rows)*cellH <= bounds.Height {
			break
		}
		columns++
	}

	if rows == 1 {
		cellH = bounds.Height
	} else if float64(rows)*cellH > bounds.Height {
		// Fixed column counts (or minimum-width floors) can still
		// overflow; fit the height and let the minimum clamp below
		// have the last word.
		cellH = bounds.Height / float64(rows)
	}

	min := gridMinSize(opts)
	margin := gridMargin(opts)
	clamped := ValidSize(geom.Point{X: cellW - margin, Y: cellH - margin}, min)
	cellW = clamped.X + margin
	cellH = clamped.Y + margin
	return cellW, cellH, columns, rows
}

func gridMargin(opts GridOptions) float64 {
	if opts.Margin > 0 {
		return opts.Margin
	}
	return config.DefaultGridMargin
}

func gridMinSize(opts GridOptions) geom.Point {
	min := opts.MinSize
	if min.X <= 0 {
		min.X = config.DefaultMinWidth
	}
	if min.Y <= 0 {
		min.Y = config.DefaultMinHeight
	}
	return min
}

// Pack arranges the canvas's items into bounds using ArrangeGrid and
// commits the resulting rectangles in item insertion order. Config
// defaults (minimum size, margin, aspect, RTL) fill any unset options.
func (c *Canvas) Pack(bounds geom.Rect, opts GridOptions) (Arrangement, error) {
	if opts.MinSize.X <= 0 {
		opts.MinSize.X = c.cfg.MinWidth
	}
	if opts.MinSize.Y <= 0 {
		opts.MinSize.Y = c.cfg.MinHeight
	}
	if opts.Margin <= 0 {
		opts.Margin = c.cfg.GridMargin
	}
	if opts.Aspect <= 0 {
		opts.Aspect = c.cfg.GridAspect
	}
	opts.RTL = opts.RTL || c.cfg.RTL

	arr, err := ArrangeGrid(len(c.items), bounds, opts)
	if err != nil {
		return Arrangement{}, err
	}
	for i, it := range c.items {
		if i < len(arr.Rects) {
			c.applyBounds(it, arr.Rects[i])
			it.SetZ(i)
		}
	}
	if len(arr.Rects) > 0 {
		c.logger.Debug("packed items into grid", "items", len(c.items), "columns", arr.Columns)
	}
	return arr, nil
}
