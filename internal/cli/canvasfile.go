package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/autonome/tabview/pkg/arrange"
	"github.com/autonome/tabview/pkg/config"
	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
)

// canvasFile is the TOML document describing a canvas for reproducible
// layout runs: safe window bounds, optional tuning overrides, and the
// panels on it.
//
//	[bounds]
//	width = 1200.0
//	height = 800.0
//
//	[config]          # optional, overrides the stock tuning
//	gutter = 20.0
//
//	[[items]]
//	id = "browser"
//	left = 40.0
//	top = 40.0
//	width = 320.0
//	height = 240.0
//	user_width = 400.0   # optional remembered size
//	user_height = 300.0
type canvasFile struct {
	Bounds rectSpec      `toml:"bounds"`
	Config config.Config `toml:"config"`
	Items  []itemSpec    `toml:"items"`
}

type rectSpec struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

func (r rectSpec) rect() geom.Rect {
	return geom.NewRect(r.Left, r.Top, r.Width, r.Height)
}

type itemSpec struct {
	ID         string  `toml:"id"`
	Left       float64 `toml:"left"`
	Top        float64 `toml:"top"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	UserWidth  float64 `toml:"user_width"`
	UserHeight float64 `toml:"user_height"`
}

// loadCanvas reads a canvas TOML file and builds the live canvas with its
// panels registered in file order. An explicit tuning (from --config)
// takes precedence over the file's own [config] section.
func loadCanvas(path string, cfg *config.Config, logger *log.Logger) (*arrange.Canvas, error) {
	cf := canvasFile{Config: config.Defaults()}
	meta, err := toml.DecodeFile(path, &cf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCanvas, err, "loading %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidCanvas, "unknown key %q in %s", undecoded[0].String(), path)
	}

	tuning := cf.Config
	if cfg != nil {
		tuning = *cfg
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	canvas, err := arrange.NewCanvas(tuning, cf.Bounds.rect(), arrange.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCanvas, err, "canvas %s", path)
	}
	for i, spec := range cf.Items {
		if spec.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidCanvas, "item %d in %s has no id", i, path)
		}
		p := arrange.NewPanelWithID(spec.ID, geom.NewRect(spec.Left, spec.Top, spec.Width, spec.Height))
		if spec.UserWidth > 0 && spec.UserHeight > 0 {
			p.SetUserSize(geom.Point{X: spec.UserWidth, Y: spec.UserHeight})
		}
		if err := canvas.Add(p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCanvas, err, "item %q in %s", spec.ID, path)
		}
	}
	return canvas, nil
}
