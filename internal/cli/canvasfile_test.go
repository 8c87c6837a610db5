package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/autonome/tabview/pkg/config"
	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
)

func writeCanvasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canvas.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write canvas file: %v", err)
	}
	return path
}

const sampleCanvas = `
[bounds]
width = 1000.0
height = 800.0

[config]
gutter = 20.0

[[items]]
id = "a"
left = 10.0
top = 10.0
width = 200.0
height = 150.0

[[items]]
id = "b"
left = 300.0
top = 10.0
width = 200.0
height = 150.0
user_width = 240.0
user_height = 180.0
`

func TestLoadCanvas(t *testing.T) {
	path := writeCanvasFile(t, sampleCanvas)

	canvas, err := loadCanvas(path, nil, nil)
	if err != nil {
		t.Fatalf("loadCanvas: %v", err)
	}

	if !canvas.Bounds().Equals(geom.NewRect(0, 0, 1000, 800)) {
		t.Errorf("bounds = %+v", canvas.Bounds())
	}
	// [config] overrides gutter, the rest stays at defaults.
	if got := canvas.Config().Gutter; got != 20 {
		t.Errorf("gutter = %v, want 20", got)
	}
	if got := canvas.Config().SnapRadius; got != config.DefaultSnapRadius {
		t.Errorf("snap radius = %v, want default %v", got, config.DefaultSnapRadius)
	}
	if canvas.Len() != 2 {
		t.Fatalf("items = %d, want 2", canvas.Len())
	}

	b, ok := canvas.Item("b")
	if !ok {
		t.Fatal("item b missing")
	}
	if !b.Bounds().Equals(geom.NewRect(300, 10, 200, 150)) {
		t.Errorf("b bounds = %+v", b.Bounds())
	}
	size, ok := b.UserSize()
	if !ok || !size.Equals(geom.Point{X: 240, Y: 180}) {
		t.Errorf("b user size = %+v, %v; want {240 180}, true", size, ok)
	}
	a, _ := canvas.Item("a")
	if _, ok := a.UserSize(); ok {
		t.Error("a should have no user size")
	}
}

func TestLoadCanvasExplicitConfigWins(t *testing.T) {
	path := writeCanvasFile(t, sampleCanvas)

	override := config.Defaults()
	override.Gutter = 5
	canvas, err := loadCanvas(path, &override, nil)
	if err != nil {
		t.Fatalf("loadCanvas: %v", err)
	}
	if got := canvas.Config().Gutter; got != 5 {
		t.Errorf("gutter = %v, want override 5", got)
	}
}

func TestLoadCanvasErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{
			name: "unknown key",
			content: `
[bounds]
width = 100.0
height = 100.0
gutters = 3.0
`,
			code: errors.ErrCodeInvalidCanvas,
		},
		{
			name: "missing item id",
			content: `
[bounds]
width = 100.0
height = 100.0

[[items]]
left = 0.0
top = 0.0
width = 50.0
height = 50.0
`,
			code: errors.ErrCodeInvalidCanvas,
		},
		{
			name: "duplicate item id",
			content: `
[bounds]
width = 100.0
height = 100.0

[[items]]
id = "a"
left = 0.0
top = 0.0
width = 50.0
height = 50.0

[[items]]
id = "a"
left = 10.0
top = 10.0
width = 50.0
height = 50.0
`,
			code: errors.ErrCodeInvalidCanvas,
		},
		{
			name: "zero-area bounds",
			content: `
[bounds]
width = 0.0
height = 100.0
`,
			code: errors.ErrCodeInvalidCanvas,
		},
		{
			name: "invalid tuning",
			content: `
[bounds]
width = 100.0
height = 100.0

[config]
gutter = -1.0
`,
			code: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCanvasFile(t, tt.content)
			if _, err := loadCanvas(path, nil, nil); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadCanvasMissingFile(t *testing.T) {
	if _, err := loadCanvas(filepath.Join(t.TempDir(), "nope.toml"), nil, nil); err == nil {
		t.Error("missing file: want error")
	}
}
