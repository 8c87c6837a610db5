package arrange

import (
	"testing"

	"github.com/autonome/tabview/pkg/errors"
	"github.com/autonome/tabview/pkg/geom"
)

func TestPushAwaySeparatesOverlappingPair(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 1000, 1000))
	a := NewPanelWithID("a", geom.NewRect(100, 100, 200, 200))
	b := NewPanelWithID("b", geom.NewRect(150, 150, 200, 200))
	for _, p := range []*Panel{a, b} {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	// The seed never moves.
	if !a.Bounds().Equals(geom.NewRect(100, 100, 200, 200)) {
		t.Errorf("seed moved: %+v", a.Bounds())
	}
	// b's center is down-right of a's with equal offsets; the x axis
	// wins ties, so b slides right to one gutter past a.
	want := geom.NewRect(315, 150, 200, 200)
	if !b.Bounds().Equals(want) {
		t.Errorf("b = %+v, want %+v", b.Bounds(), want)
	}
}

func TestPushAwayUnknownSeed(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 1000, 1000))
	if err := c.PushAway("ghost", false); !errors.Is(err, errors.ErrCodeItemNotFound) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeItemNotFound)
	}
}

func TestPushAwaySingleItemNoop(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 400, 400))
	// Even an out-of-bounds item stays put when it is alone.
	a := NewPanelWithID("a", geom.NewRect(350, 350, 200, 200))
	if err := c.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}
	if !a.Bounds().Equals(geom.NewRect(350, 350, 200, 200)) {
		t.Errorf("single item moved: %+v", a.Bounds())
	}
}

func TestPushAwayResolvesClusterAndIsIdempotent(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 2000, 2000))
	panels := []*Panel{
		NewPanelWithID("a", geom.NewRect(500, 500, 200, 200)),
		NewPanelWithID("b", geom.NewRect(550, 520, 200, 200)),
		NewPanelWithID("c", geom.NewRect(480, 560, 200, 200)),
		NewPanelWithID("d", geom.NewRect(530, 640, 200, 200)),
		NewPanelWithID("e", geom.NewRect(1400, 100, 200, 200)),
	}
	for _, p := range panels {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	assertNoOverlap := func(t *testing.T) {
		t.Helper()
		for i := 0; i < len(panels); i++ {
			for j := i + 1; j < len(panels); j++ {
				if panels[i].Bounds().Intersects(panels[j].Bounds()) {
					t.Errorf("%s and %s overlap: %+v vs %+v",
						panels[i].ID(), panels[j].ID(),
						panels[i].Bounds(), panels[j].Bounds())
				}
			}
		}
	}
	assertNoOverlap(t)

	// A resolved layout is a fixed point: pushing again moves nothing.
	before := make([]geom.Rect, len(panels))
	for i, p := range panels {
		before[i] = p.Bounds()
	}
	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("second PushAway: %v", err)
	}
	for i, p := range panels {
		if !p.Bounds().Equals(before[i]) {
			t.Errorf("%s moved on idempotent pass: %+v -> %+v", p.ID(), before[i], p.Bounds())
		}
	}
	assertNoOverlap(t)
}

func TestPushAwaySquishesAgainstBounds(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 400, 600))
	a := NewPanelWithID("a", geom.NewRect(0, 0, 200, 100))
	b := NewPanelWithID("b", geom.NewRect(10, 0, 200, 100))
	for _, p := range []*Panel{a, b} {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	// b is pushed to 215 which would overflow the 400-wide window by
	// 15; squish shrinks it against the right edge instead.
	want := geom.NewRect(215, 0, 185, 100)
	if !b.Bounds().Equals(want) {
		t.Errorf("b = %+v, want %+v", b.Bounds(), want)
	}
	if b.Bounds().Right() > c.Bounds().Right() {
		t.Errorf("b escapes the window: %+v", b.Bounds())
	}
}

func TestPushAwaySquishSharesAlongChain(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 520, 600))
	a := NewPanelWithID("a", geom.NewRect(0, 0, 200, 100))
	b := NewPanelWithID("b", geom.NewRect(10, 0, 200, 100))
	d := NewPanelWithID("d", geom.NewRect(400, 0, 100, 100))
	for _, p := range []*Panel{a, b, d} {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	// a pushes b, b pushes d past the right edge by 10. The overflow
	// is shared across the two-deep chain: 5 off b, 5 more off d, with
	// both shifting back by the space freed behind them.
	if !a.Bounds().Equals(geom.NewRect(0, 0, 200, 100)) {
		t.Errorf("a = %+v, want unchanged", a.Bounds())
	}
	if want := geom.NewRect(215, 0, 195, 100); !b.Bounds().Equals(want) {
		t.Errorf("b = %+v, want %+v", b.Bounds(), want)
	}
	if want := geom.NewRect(425, 0, 95, 100); !d.Bounds().Equals(want) {
		t.Errorf("d = %+v, want %+v", d.Bounds(), want)
	}
}

func TestPushAwaySquishRespectsMinimumSize(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 250, 300))
	a := NewPanelWithID("a", geom.NewRect(0, 0, 200, 100))
	b := NewPanelWithID("b", geom.NewRect(50, 0, 240, 100))
	for _, p := range []*Panel{a, b} {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	// b is pushed to 215 and overflows the 250-wide window by 205,
	// far more than it can absorb. It bottoms out at the 60 minimum
	// and the final clamp pins it to the right edge; containment wins
	// over separation here.
	want := geom.NewRect(190, 0, 60, 100)
	if !b.Bounds().Equals(want) {
		t.Errorf("b = %+v, want %+v", b.Bounds(), want)
	}
}

func TestPushAwayUnsquishGrowsTowardUserSize(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 400, 600))
	a := NewPanelWithID("a", geom.NewRect(0, 0, 200, 100))
	b := NewPanelWithID("b", geom.NewRect(10, 0, 200, 100))
	b.SetUserSize(geom.Point{X: 200, Y: 100})
	for _, p := range []*Panel{a, b} {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	// Squish takes b to 185 wide; unsquish grows it back to its
	// remembered 200, sliding left until it rests against a. Touching
	// edges are allowed, overlap is not.
	want := geom.NewRect(200, 0, 200, 100)
	if !b.Bounds().Equals(want) {
		t.Errorf("b = %+v, want %+v", b.Bounds(), want)
	}
	if a.Bounds().Intersects(b.Bounds()) {
		t.Error("unsquish reintroduced an overlap")
	}
}

func TestPushAwayUnsquishVetoedByNeighbor(t *testing.T) {
	c := newTestCanvas(t, geom.NewRect(0, 0, 600, 200))
	a := NewPanelWithID("a", geom.NewRect(0, 0, 200, 100))
	b := NewPanelWithID("b", geom.NewRect(10, 0, 200, 100))
	// b remembers a larger size than it currently has, but growing
	// toward it would land on a; the growth is vetoed and b keeps its
	// pushed bounds.
	b.SetUserSize(geom.Point{X: 250, Y: 100})
	for _, p := range []*Panel{a, b} {
		if err := c.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := c.PushAway("a", false); err != nil {
		t.Fatalf("PushAway: %v", err)
	}

	if want := geom.NewRect(215, 0, 200, 100); !b.Bounds().Equals(want) {
		t.Errorf("b = %+v, want %+v", b.Bounds(), want)
	}
	if a.Bounds().Intersects(b.Bounds()) {
		t.Error("unsquish reintroduced an overlap")
	}
}
