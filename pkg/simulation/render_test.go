package simulation

import (
	"image/color"
	"testing"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
)

type circle struct {
	center geometry.Vector2D
	radius float64
	clr    color.Color
}

// recordingSurface keeps what was drawn since the last Clear.
type recordingSurface struct {
	clears  int
	circles []circle
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(center geometry.Vector2D, radius float64, clr color.Color) {
	s.circles = append(s.circles, circle{center, radius, clr})
}

func TestRenderer_Render(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	e := NewEngine(cfg)
	s := &recordingSurface{}

	r.Render(s, e.Snapshot().Charges)

	if s.clears != 1 || len(s.circles) != 4 {
		t.Fatalf("clears=%d circles=%d; want 1 and 4", s.clears, len(s.circles))
	}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	want := []circle{
		{geometry.Vector2D{X: 100, Y: 100}, 20, blue},
		{geometry.Vector2D{X: 700, Y: 100}, 20, red},
		{geometry.Vector2D{X: 100, Y: 700}, 20, blue},
		{geometry.Vector2D{X: 700, Y: 700}, 20, red},
	}
	for i, w := range want {
		if s.circles[i] != w {
			t.Errorf("circle %d = %+v; want %+v", i, s.circles[i], w)
		}
	}
}

func TestRenderer_RenderIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	e := NewEngine(cfg)
	e.Step()
	charges := e.Snapshot().Charges
	s := &recordingSurface{}

	r.Render(s, charges)
	first := append([]circle(nil), s.circles...)
	r.Render(s, charges)

	if s.clears != 2 || len(s.circles) != len(first) {
		t.Fatalf("clears=%d circles=%d", s.clears, len(s.circles))
	}
	for i := range first {
		if s.circles[i] != first[i] {
			t.Errorf("circle %d changed between renders: %+v vs %+v", i, first[i], s.circles[i])
		}
	}
	if q4, _ := e.Snapshot().Find("q4"); s.circles[3].center != q4.Pos {
		t.Errorf("render shows %v; engine has %v", s.circles[3].center, q4.Pos)
	}
}
