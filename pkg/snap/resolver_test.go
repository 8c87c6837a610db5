package snap

import (
	"testing"

	"github.com/autonome/tabview/pkg/geom"
	"github.com/autonome/tabview/pkg/trench"
)

// anchored builds a registry with the border trenches of one stationary
// item at the given rect.
func anchored(t *testing.T, rect geom.Rect) *trench.Registry {
	t.Helper()
	reg := trench.NewRegistry(15)
	ids := reg.Register("anchor", trench.KindBorder)
	for _, id := range ids.All() {
		if err := reg.SetWithRect(id, rect); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func TestSnapMove(t *testing.T) {
	anchor := geom.Rect{Left: 200, Top: 100, Width: 100, Height: 100}

	tests := []struct {
		name string
		rect geom.Rect
		want geom.Rect
	}{
		{
			name: "left edge pulls to anchor left",
			rect: geom.Rect{Left: 204, Top: 120, Width: 50, Height: 50},
			want: geom.Rect{Left: 200, Top: 120, Width: 50, Height: 50},
		},
		{
			name: "right edge pulls to anchor right",
			rect: geom.Rect{Left: 254, Top: 120, Width: 50, Height: 50},
			want: geom.Rect{Left: 250, Top: 120, Width: 50, Height: 50},
		},
		{
			name: "both axes snap independently",
			rect: geom.Rect{Left: 204, Top: 97, Width: 50, Height: 50},
			want: geom.Rect{Left: 200, Top: 100, Width: 50, Height: 50},
		},
		{
			name: "outside radius stays put",
			rect: geom.Rect{Left: 230, Top: 130, Width: 40, Height: 40},
			want: geom.Rect{Left: 230, Top: 130, Width: 40, Height: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := anchored(t, anchor)
			r := New(reg, "mover", Options{Radius: 10})
			got, _ := r.Snap(tt.rect, CornerNone, false)
			if !got.Equals(tt.want) {
				t.Errorf("Snap() = %+v, want %+v", got, tt.want)
			}
			if got.Width != tt.rect.Width || got.Height != tt.rect.Height {
				t.Error("a move snap must not change the size")
			}
		})
	}
}

func TestSnapResize(t *testing.T) {
	anchor := geom.Rect{Left: 200, Top: 100, Width: 100, Height: 100}

	tests := []struct {
		name   string
		rect   geom.Rect
		corner Corner
		want   geom.Rect
	}{
		{
			name:   "topleft fixed, right edge snaps",
			rect:   geom.Rect{Left: 100, Top: 120, Width: 96, Height: 60},
			corner: CornerTopLeft,
			want:   geom.Rect{Left: 100, Top: 120, Width: 100, Height: 60},
		},
		{
			name:   "topright fixed, left edge snaps",
			rect:   geom.Rect{Left: 304, Top: 120, Width: 96, Height: 60},
			corner: CornerTopRight,
			want:   geom.Rect{Left: 300, Top: 120, Width: 100, Height: 60},
		},
		{
			name:   "bottomleft fixed, top edge snaps",
			rect:   geom.Rect{Left: 210, Top: 204, Width: 60, Height: 96},
			corner: CornerBottomLeft,
			want:   geom.Rect{Left: 210, Top: 200, Width: 60, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := anchored(t, anchor)
			r := New(reg, "mover", Options{Radius: 10})
			got, _ := r.Snap(tt.rect, tt.corner, false)
			if !got.Equals(tt.want) {
				t.Errorf("Snap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSnapResizeAspectLock(t *testing.T) {
	anchor := geom.Rect{Left: 200, Top: 100, Width: 100, Height: 100}
	reg := anchored(t, anchor)
	r := New(reg, "mover", Options{Radius: 10})

	// 2:1 aspect; the right edge snaps from 196 to 200, width 80 -> 100,
	// so the height must follow to 50 without consulting Y trenches.
	rect := geom.Rect{Left: 100, Top: 102, Width: 96, Height: 48}
	got, matches := r.Snap(rect, CornerTopLeft, true)

	if got.Width != 100 {
		t.Errorf("Width = %v, want 100", got.Width)
	}
	if got.Height != 50 {
		t.Errorf("Height = %v, want 50 (derived from width)", got.Height)
	}
	if got.Top != 102 {
		t.Errorf("Top = %v, want unchanged 102", got.Top)
	}
	for _, m := range matches {
		if m.Axis == geom.AxisY {
			t.Error("aspect lock must not snap the Y axis independently")
		}
	}
}

func TestSnapResizeRespectsMinSize(t *testing.T) {
	anchor := geom.Rect{Left: 200, Top: 100, Width: 100, Height: 100}
	reg := anchored(t, anchor)
	r := New(reg, "mover", Options{Radius: 10, MinSize: geom.Point{X: 60, Y: 60}})

	// Left edge of the mover would snap to the anchor's left border at
	// x=200, which would leave only 55 of width.
	rect := geom.Rect{Left: 196, Top: 120, Width: 59, Height: 80}
	got, _ := r.Snap(rect, CornerTopRight, false)

	if got.Width < 60 {
		t.Errorf("Width = %v, below minimum 60", got.Width)
	}
	if got.Right() != rect.Right() {
		t.Errorf("stationary right edge moved from %v to %v", rect.Right(), got.Right())
	}
}

func TestCreationDoublesRadius(t *testing.T) {
	anchor := geom.Rect{Left: 200, Top: 100, Width: 100, Height: 100}
	rect := geom.Rect{Left: 215, Top: 120, Width: 50, Height: 50}

	reg := anchored(t, anchor)
	plain := New(reg, "mover", Options{Radius: 10})
	if got, _ := plain.Snap(rect, CornerNone, false); got.Left != 215 {
		t.Errorf("plain radius snapped Left to %v, want 215 untouched", got.Left)
	}

	create := New(reg, "mover", Options{Radius: 10, Creation: true})
	if got, _ := create.Snap(rect, CornerNone, false); got.Left != 200 {
		t.Errorf("creation radius Left = %v, want snapped to 200", got.Left)
	}
}

func TestSnapDeterministicOnTies(t *testing.T) {
	reg := trench.NewRegistry(15)
	// Two stationary items with left borders equidistant from x=100.
	a := reg.Register("a", trench.KindBorder)
	b := reg.Register("b", trench.KindBorder)
	for id, rect := range map[string]geom.Rect{
		a.Left: {Left: 95, Top: 0, Width: 50, Height: 200},
		b.Left: {Left: 105, Top: 0, Width: 50, Height: 200},
	} {
		if err := reg.SetWithRect(id, rect); err != nil {
			t.Fatal(err)
		}
	}

	r := New(reg, "mover", Options{Radius: 10})
	rect := geom.Rect{Left: 100, Top: 50, Width: 40, Height: 40}

	first, _ := r.Snap(rect, CornerNone, false)
	for i := 0; i < 10; i++ {
		got, _ := r.Snap(rect, CornerNone, false)
		if !got.Equals(first) {
			t.Fatalf("iteration %d: Snap() = %+v, want stable %+v", i, got, first)
		}
	}
}
