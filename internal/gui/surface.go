package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
)

// screenSurface adapts an ebiten screen to simulation.Surface.
type screenSurface struct {
	screen     *ebiten.Image
	background color.Color
}

func (s *screenSurface) Clear() {
	s.screen.Fill(s.background)
}

func (s *screenSurface) FillCircle(center geometry.Vector2D, radius float64, clr color.Color) {
	vector.FillCircle(s.screen, float32(center.X), float32(center.Y), float32(radius), clr, true)
}
