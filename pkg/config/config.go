// Package config holds the numeric constants that drive the layout engine.
//
// Every component takes its gutters, snap radii, and minimum sizes from a
// Config value rather than from package-level globals, so multiple canvases
// with different tuning can coexist in one process. Defaults() provides the
// stock tuning; a TOML file can override any subset of fields.
//
// # Example
//
//	cfg := config.Defaults()
//	cfg.Gutter = 20
//
//	// Or from a file:
//	cfg, err := config.LoadFile("tabview.toml")
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
)

// Default tuning values.
const (
	// DefaultGutter is the spacing kept between items by push-away and
	// the offset of guide trenches from item borders.
	DefaultGutter = 15.0

	// DefaultSnapRadius is the distance within which a dragged edge
	// snaps to a trench. Item creation by drag doubles this.
	DefaultSnapRadius = 10.0

	// DefaultMinWidth is the smallest width any item may take.
	DefaultMinWidth = 60.0

	// DefaultMinHeight is the smallest height any item may take.
	DefaultMinHeight = 60.0

	// DefaultGridAspect is the width:height ratio used to derive grid
	// cell heights from cell widths.
	DefaultGridAspect = 1.2

	// DefaultGridMargin is the spacing between grid cells; it also pads
	// the active area used for drop-index hit testing.
	DefaultGridMargin = 10.0
)

// Config carries the tuning constants for one canvas.
type Config struct {
	// Gutter is the spacing preserved between items (user units).
	Gutter float64 `toml:"gutter"`

	// SnapRadius is the trench search radius for drag/resize snapping.
	SnapRadius float64 `toml:"snap_radius"`

	// MinWidth and MinHeight are the global minimum item size. Every
	// size produced by the engine is clamped up to these.
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`

	// GridAspect is the preferred width:height ratio of grid cells.
	GridAspect float64 `toml:"grid_aspect"`

	// GridMargin is the spacing between grid cells.
	GridMargin float64 `toml:"grid_margin"`

	// RTL lays grid rows out right-to-left when true.
	RTL bool `toml:"rtl"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Gutter:     DefaultGutter,
		SnapRadius: DefaultSnapRadius,
		MinWidth:   DefaultMinWidth,
		MinHeight:  DefaultMinHeight,
		GridAspect: DefaultGridAspect,
		GridMargin: DefaultGridMargin,
	}
}

// MinSize returns the minimum item size as a point.
func (c Config) MinSize() geom.Point {
	return geom.Point{X: c.MinWidth, Y: c.MinHeight}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Gutter < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "gutter must be non-negative, got %v", c.Gutter)
	}
	if c.SnapRadius < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap_radius must be non-negative, got %v", c.SnapRadius)
	}
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "minimum size must be positive, got %vx%v", c.MinWidth, c.MinHeight)
	}
	if c.GridAspect <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid_aspect must be positive, got %v", c.GridAspect)
	}
	if c.GridMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid_margin must be non-negative, got %v", c.GridMargin)
	}
	return nil
}

// LoadFile reads a TOML configuration file, filling unset fields with
// defaults. Unknown keys are rejected so typos surface early.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}
