package simulation

import "github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"

// DragState is either Idle or Dragging.
type DragState interface {
	isDragState()
	String() string
}

// Idle means no charge follows the pointer and physics runs.
type Idle struct{}

// Dragging means ChargeID follows the pointer and physics is suspended
// for every charge.
type Dragging struct {
	ChargeID string
}

func (Idle) isDragState()     {}
func (Dragging) isDragState() {}

func (Idle) String() string { return "idle" }

func (d Dragging) String() string { return "dragging " + d.ChargeID }

// hitTest returns the movable charge grabbed by a press at p, if any.
// Overlapping candidates resolve to the nearest center; on equal distance
// the later charge in scene order wins.
func hitTest(charges []*Charge, p geometry.Vector2D, radius float64) (*Charge, bool) {
	var hit *Charge
	best := radius
	for _, c := range charges {
		if !c.Movable {
			continue
		}
		d := p.DistanceTo(c.Pos)
		if d < radius && d <= best {
			hit, best = c, d
		}
	}
	return hit, hit != nil
}
