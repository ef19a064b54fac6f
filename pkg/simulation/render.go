package simulation

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
)

// Surface is what the Renderer draws on.
type Surface interface {
	Clear()
	FillCircle(center geometry.Vector2D, radius float64, clr color.Color)
}

// Renderer draws every charge as a disk colored by polarity.
type Renderer struct {
	Radius   float64
	Positive color.Color
	Negative color.Color
}

// NewRenderer reads radius and colors from the config.
func NewRenderer(cfg *Config) Renderer {
	return Renderer{
		Radius:   cfg.ChargeRadius,
		Positive: cfg.positiveRGBA(),
		Negative: cfg.negativeRGBA(),
	}
}

// Render clears the surface and draws charges. It only reads its inputs,
// so it can be called as often as the caller likes.
func (r Renderer) Render(s Surface, charges []ChargeState) {
	s.Clear()
	for _, c := range charges {
		s.FillCircle(c.Pos, r.Radius, r.ColorOf(c))
	}
}

// ColorOf returns the fill color of a charge.
func (r Renderer) ColorOf(c ChargeState) color.Color {
	if c.Magnitude > 0 {
		return r.Positive
	}
	return r.Negative
}
