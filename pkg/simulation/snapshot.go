package simulation

import "github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"

// ChargeState is the read-only view of a charge handed to the presentation layer.
type ChargeState struct {
	ID        string
	Pos       geometry.Vector2D
	Magnitude float64
	Movable   bool
	Status    Status
	Partner   string
	Step      geometry.Vector2D // displacement applied by the last step
}

// Snapshot is a copy of the engine state, safe to read from another goroutine.
type Snapshot struct {
	Frame   uint64
	Drag    DragState
	Charges []ChargeState
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() *Snapshot {
	snap := &Snapshot{
		Frame:   e.frame,
		Drag:    e.drag,
		Charges: make([]ChargeState, 0, len(e.charges)),
	}
	for _, c := range e.charges {
		snap.Charges = append(snap.Charges, ChargeState{
			ID:        c.ID,
			Pos:       c.Pos,
			Magnitude: c.Magnitude,
			Movable:   c.Movable,
			Status:    c.Status(),
			Partner:   c.Partner(),
			Step:      e.steps[c.ID],
		})
	}
	return snap
}

// Find returns the state of the charge with the given id.
func (s *Snapshot) Find(id string) (ChargeState, bool) {
	for _, c := range s.Charges {
		if c.ID == id {
			return c, true
		}
	}
	return ChargeState{}, false
}
