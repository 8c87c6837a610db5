package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autonome/tabview/pkg/geom"
)

// pushCommand creates the push command for running push-away over a canvas.
func (c *CLI) pushCommand() *cobra.Command {
	var (
		seed       string
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "push [canvas.toml]",
		Short: "Push overlapping panels away from a seed panel",
		Long: `Push overlapping panels away from a seed panel.

The push command loads a canvas file, treats the --seed panel as the one
that just moved or resized, and displaces every panel it overlaps (and
those they overlap in turn) until nothing intersects. Panels forced
against the canvas edge are squished down to the minimum size, then grown
back toward their remembered size where room allows.

The resolved canvas is emitted as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPush(args[0], seed, configPath, output)
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "id of the panel that moved (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "engine tuning TOML file")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

func (c *CLI) runPush(path, seed, configPath, output string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	canvas, err := loadCanvas(path, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("load canvas %s: %w", path, err)
	}

	before := make(map[string]geom.Rect, canvas.Len())
	for _, it := range canvas.Items() {
		before[it.ID()] = it.Bounds()
	}

	prog := newProgress(c.Logger)
	if err := canvas.PushAway(seed, true); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	moved := 0
	for _, it := range canvas.Items() {
		if !it.Bounds().Equals(before[it.ID()]) {
			moved++
		}
	}
	prog.done(fmt.Sprintf("Resolved %d panels, moved %d", canvas.Len(), moved))

	doc := layoutJSON{
		Bounds: toRectJSON(canvas.Bounds()),
		Items:  itemsJSON(canvas),
		Moved:  moved,
	}
	return writeResult(doc, output)
}
