package arrange

import "github.com/autonome/tabview/pkg/geom"

// ValidSize clamps a requested size up to the given per-axis minimums.
// Components of min that are zero or negative leave the corresponding axis
// unclamped. The function is idempotent: ValidSize(ValidSize(s, m), m) ==
// ValidSize(s, m).
func ValidSize(size, min geom.Point) geom.Point {
	if min.X > 0 && size.X < min.X {
		size.X = min.X
	}
	if min.Y > 0 && size.Y < min.Y {
		size.Y = min.Y
	}
	return size
}

// ValidSize clamps a requested size up to the canvas's configured minimum.
// Every component that produces a new size routes it through here.
func (c *Canvas) ValidSize(size geom.Point) geom.Point {
	return ValidSize(size, c.cfg.MinSize())
}
