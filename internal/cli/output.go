package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/autonome/tabview/pkg/arrange"
	"github.com/autonome/tabview/pkg/geom"
)

// rectJSON is the wire form of a rectangle.
type rectJSON struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func toRectJSON(r geom.Rect) rectJSON {
	return rectJSON{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

// itemJSON is the wire form of a placed panel.
type itemJSON struct {
	ID   string   `json:"id"`
	Rect rectJSON `json:"rect"`
}

// layoutJSON is the result document emitted by arrange and push.
type layoutJSON struct {
	Bounds    rectJSON   `json:"bounds"`
	Columns   int        `json:"columns,omitempty"`
	DropIndex *int       `json:"dropIndex,omitempty"`
	Rects     []rectJSON `json:"rects,omitempty"`
	Items     []itemJSON `json:"items,omitempty"`
	Moved     int        `json:"moved,omitempty"`
}

func itemsJSON(c *arrange.Canvas) []itemJSON {
	out := make([]itemJSON, 0, c.Len())
	for _, it := range c.Items() {
		out = append(out, itemJSON{ID: it.ID(), Rect: toRectJSON(it.Bounds())})
	}
	return out
}

// writeResult marshals doc as indented JSON to the output path, or to
// stdout when path is empty.
func writeResult(doc layoutJSON, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	printSuccess("Layout written")
	printFile(path)
	return nil
}
