package ui

import "testing"

func TestToolbar_Layout(t *testing.T) {
	tb := NewToolbar(10, 10, 36)
	reset := tb.AddButton("Reset", nil)
	arrows := tb.AddCheckbox("Arrows", false)

	if reset.X != 18 || reset.Y != 18 || reset.Height != 20 {
		t.Errorf("button at (%v, %v) h=%v", reset.X, reset.Y, reset.Height)
	}
	if want := reset.X + reset.Width + tb.Padding; arrows.X != want {
		t.Errorf("checkbox x = %v; want %v", arrows.X, want)
	}
	if want := arrows.X + arrows.Width() + tb.Padding - tb.X; tb.Width() != want {
		t.Errorf("toolbar width = %v; want %v", tb.Width(), want)
	}
}

func TestToolbar_Contains(t *testing.T) {
	tb := NewToolbar(10, 10, 36)
	tb.AddButton("Reset", nil)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 20, 20, true},
		{"top left corner", 10, 10, true},
		{"left of strip", 5, 20, false},
		{"below strip", 20, 50, false},
		{"right of strip", 10 + tb.Width() + 1, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tb.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v; want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCheckbox_Toggle(t *testing.T) {
	c := NewCheckbox(0, 0, "Arrows", false)
	c.Toggle()
	if !c.Value {
		t.Error("Toggle did not set the value")
	}
	if !c.Contains(c.Width()-1, c.Size-1) || c.Contains(c.Width()+1, 0) {
		t.Error("Contains does not match Width")
	}
}
