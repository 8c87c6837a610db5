package arrange

import (
	"testing"

	"github.com/autonome/tabview/pkg/geom"
)

func TestValidSize(t *testing.T) {
	min := geom.Point{X: 60, Y: 60}

	tests := []struct {
		name string
		size geom.Point
		want geom.Point
	}{
		{name: "above minimum untouched", size: geom.Point{X: 100, Y: 80}, want: geom.Point{X: 100, Y: 80}},
		{name: "width clamped", size: geom.Point{X: 30, Y: 80}, want: geom.Point{X: 60, Y: 80}},
		{name: "height clamped", size: geom.Point{X: 100, Y: 10}, want: geom.Point{X: 100, Y: 60}},
		{name: "both clamped", size: geom.Point{X: 0, Y: 0}, want: geom.Point{X: 60, Y: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidSize(tt.size, min)
			if !got.Equals(tt.want) {
				t.Errorf("ValidSize(%+v) = %+v, want %+v", tt.size, got, tt.want)
			}

			// Idempotence: clamping a clamped size changes nothing.
			if again := ValidSize(got, min); !again.Equals(got) {
				t.Errorf("ValidSize not idempotent: %+v -> %+v", got, again)
			}
		})
	}
}

func TestValidSizeZeroMinimumsDisableClamping(t *testing.T) {
	got := ValidSize(geom.Point{X: 5, Y: 5}, geom.Point{})
	if !got.Equals(geom.Point{X: 5, Y: 5}) {
		t.Errorf("ValidSize with zero min = %+v, want untouched", got)
	}
}
