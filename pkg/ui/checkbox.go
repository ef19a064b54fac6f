package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

// Width covers the box and its label, 6px per debug font glyph.
func (c *Checkbox) Width() float64 {
	return c.Size + 6 + float64(len(c.Label))*6
}

// Contains reports whether the screen point (x, y) is over the box or its label.
func (c *Checkbox) Contains(x, y float64) bool {
	return inRect(x, y, c.X, c.Y, c.Width(), c.Size)
}

// Toggle flips the value, for keyboard shortcuts.
func (c *Checkbox) Toggle() {
	c.Value = !c.Value
}

// Update toggles the value when clicked.
func (c *Checkbox) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if c.Contains(float64(mx), float64(my)) {
		c.Toggle()
	}
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+6), int(c.Y))
}

// Bounds is the clickable rectangle.
func (c *Checkbox) Bounds() (x, y, w, h float64) {
	return c.X, c.Y, c.Width(), c.Size
}
