package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autonome/tabview/pkg/arrange"
	"github.com/autonome/tabview/pkg/config"
	"github.com/autonome/tabview/pkg/geom"
)

// arrangeCommand creates the arrange command for grid-packing a canvas.
func (c *CLI) arrangeCommand() *cobra.Command {
	var (
		count      int
		width      float64
		height     float64
		columns    int
		margin     float64
		aspect     float64
		rtl        bool
		dropStr    string
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "arrange [canvas.toml]",
		Short: "Pack panels into a grid",
		Long: `Pack panels into a grid.

With a canvas file, the panels in the file are arranged into the file's
bounds and the resulting layout is emitted as JSON. Without a file,
--count computes the grid geometry for that many uniform panels in a
--width x --height window, which is useful for previewing cell sizes.

The column count is chosen automatically so the rows fit the bounds;
--columns forces a fixed count. A --drop point reports the index of the
grid cell that would receive a panel dropped there.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := arrange.GridOptions{
				Columns: columns,
				Margin:  margin,
				Aspect:  aspect,
				RTL:     rtl,
			}
			if dropStr != "" {
				drop, err := parsePoint(dropStr)
				if err != nil {
					return fmt.Errorf("invalid --drop: %w", err)
				}
				opts.Drop = &drop
			}
			if len(args) == 1 {
				return c.runArrangeFile(args[0], configPath, opts, output)
			}
			if count <= 0 {
				return fmt.Errorf("either a canvas file or a positive --count is required")
			}
			return c.runArrangeCount(count, geom.NewRect(0, 0, width, height), opts, output)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "arrange this many uniform panels instead of a canvas file")
	cmd.Flags().Float64Var(&width, "width", 1200, "window width for --count mode")
	cmd.Flags().Float64Var(&height, "height", 800, "window height for --count mode")
	cmd.Flags().IntVar(&columns, "columns", 0, "fixed column count (default: choose automatically)")
	cmd.Flags().Float64Var(&margin, "margin", 0, "spacing between cells (default: engine tuning)")
	cmd.Flags().Float64Var(&aspect, "aspect", 0, "preferred cell width:height ratio (default: engine tuning)")
	cmd.Flags().BoolVar(&rtl, "rtl", false, "fill rows right-to-left")
	cmd.Flags().StringVar(&dropStr, "drop", "", "report the cell index containing this \"x,y\" point")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "engine tuning TOML file")

	return cmd
}

// runArrangeFile packs the panels of a canvas file into its bounds.
func (c *CLI) runArrangeFile(path, configPath string, opts arrange.GridOptions, output string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	canvas, err := loadCanvas(path, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("load canvas %s: %w", path, err)
	}

	prog := newProgress(c.Logger)
	arr, err := canvas.Pack(canvas.Bounds(), opts)
	if err != nil {
		return fmt.Errorf("arrange: %w", err)
	}
	prog.done(fmt.Sprintf("Arranged %d panels into %d columns", canvas.Len(), arr.Columns))

	doc := layoutJSON{
		Bounds:  toRectJSON(canvas.Bounds()),
		Columns: arr.Columns,
		Items:   itemsJSON(canvas),
	}
	if opts.Drop != nil {
		doc.DropIndex = &arr.DropIndex
	}
	return writeResult(doc, output)
}

// runArrangeCount computes grid geometry for a bare panel count.
func (c *CLI) runArrangeCount(count int, bounds geom.Rect, opts arrange.GridOptions, output string) error {
	prog := newProgress(c.Logger)
	arr, err := arrange.ArrangeGrid(count, bounds, opts)
	if err != nil {
		return fmt.Errorf("arrange: %w", err)
	}
	prog.done(fmt.Sprintf("Arranged %d cells into %d columns", count, arr.Columns))

	rects := make([]rectJSON, 0, len(arr.Rects))
	for _, r := range arr.Rects {
		rects = append(rects, toRectJSON(r))
	}
	doc := layoutJSON{
		Bounds:  toRectJSON(bounds),
		Columns: arr.Columns,
		Rects:   rects,
	}
	if opts.Drop != nil {
		doc.DropIndex = &arr.DropIndex
	}
	return writeResult(doc, output)
}

// resolveConfig turns an optional --config path into a tuning override
// for loadCanvas: nil means "use the canvas file's own tuning".
func resolveConfig(path string) (*config.Config, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parsePoint parses an "x,y" coordinate pair.
func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("y coordinate: %w", err)
	}
	return geom.Point{X: x, Y: y}, nil
}
