package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the Toolbar can lay out.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Contains(x, y float64) bool
	Bounds() (x, y, w, h float64)
}

// Toolbar is a strip of widgets laid out left to right.
// Clicks over the toolbar belong to it and must not reach the scene.
type Toolbar struct {
	X, Y    float64
	Height  float64
	Padding float64
	Widgets []Widget

	BGColor color.RGBA
}

// NewToolbar creates an empty toolbar at (x, y).
func NewToolbar(x, y, height float64) *Toolbar {
	return &Toolbar{
		X:       x,
		Y:       y,
		Height:  height,
		Padding: 8,
		BGColor: color.RGBA{R: 40, G: 40, B: 45, A: 200},
	}
}

// nextX is where the next widget starts.
func (t *Toolbar) nextX() float64 {
	x := t.X + t.Padding
	for _, w := range t.Widgets {
		_, _, ww, _ := w.Bounds()
		x += ww + t.Padding
	}
	return x
}

// AddButton appends a button sized to its label.
func (t *Toolbar) AddButton(label string, onClick func()) *Button {
	h := t.Height - 2*t.Padding
	b := NewButton(t.nextX(), t.Y+t.Padding, float64(len(label))*6+16, h, label, onClick)
	t.Widgets = append(t.Widgets, b)
	return b
}

// AddCheckbox appends a checkbox.
func (t *Toolbar) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(t.nextX(), t.Y+(t.Height-16)/2, label, value)
	t.Widgets = append(t.Widgets, c)
	return c
}

// Width is the strip width, padding included.
func (t *Toolbar) Width() float64 {
	return t.nextX() - t.X
}

// Contains reports whether the screen point (x, y) is over the strip.
func (t *Toolbar) Contains(x, y float64) bool {
	return inRect(x, y, t.X, t.Y, t.Width(), t.Height)
}

// Update handles input for all widgets
func (t *Toolbar) Update() {
	for _, w := range t.Widgets {
		w.Update()
	}
}

// Draw renders the strip and its widgets.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(t.X), float32(t.Y),
		float32(t.Width()), float32(t.Height),
		t.BGColor, true)
	for _, w := range t.Widgets {
		w.Draw(screen)
	}
}
