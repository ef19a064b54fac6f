package simulation

import "github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"

// LockEvent reports a dipole lock that happened during a step.
type LockEvent struct {
	ChargeID  string
	PartnerID string
	Pos       geometry.Vector2D
}

// Engine owns the charge list, the drag state machine and the force model.
// It is not safe for concurrent use: the WorldActor is its only caller at runtime.
type Engine struct {
	cfg     *Config
	physics Physics
	charges []*Charge
	drag    DragState
	frame   uint64
	steps   map[string]geometry.Vector2D
}

// NewEngine builds the scene described by cfg.
func NewEngine(cfg *Config) *Engine {
	e := &Engine{
		cfg:     cfg,
		physics: cfg.Physics(),
	}
	e.Reset()
	return e
}

// Reset rebuilds every charge from the config and drops any drag in progress.
func (e *Engine) Reset() {
	e.charges = make([]*Charge, 0, len(e.cfg.Charges))
	for _, s := range e.cfg.Charges {
		e.charges = append(e.charges, NewCharge(s.ID, s.X, s.Y, s.Magnitude, s.Movable))
	}
	e.drag = Idle{}
	e.steps = make(map[string]geometry.Vector2D, len(e.charges))
}

// Physics returns the force constants in use.
func (e *Engine) Physics() Physics {
	return e.physics
}

// Drag returns the current drag state.
func (e *Engine) Drag() DragState {
	return e.drag
}

// Frame is the number of steps requested since start.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Charge returns the live charge with the given id.
func (e *Engine) Charge(id string) (*Charge, bool) {
	for _, c := range e.charges {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Step advances the simulation by one frame. While a drag is in progress
// nothing moves. Otherwise every movable free charge is integrated in scene
// order, each one seeing the positions already updated in this step.
func (e *Engine) Step() []LockEvent {
	e.frame++
	clear(e.steps)
	if _, dragging := e.drag.(Dragging); dragging {
		return nil
	}

	var events []LockEvent
	for _, c := range e.charges {
		if !c.Movable || c.Locked() {
			continue
		}
		force := NetForce(c, e.charges, e.physics)
		if c.Locked() {
			events = append(events, LockEvent{ChargeID: c.ID, PartnerID: c.Partner(), Pos: c.Pos})
			continue
		}
		e.steps[c.ID] = Integrate(c, force, e.physics)
	}
	return events
}

// PointerDown starts a drag when p lies inside a movable charge.
// The grabbed charge is unlocked. It reports whether a charge was grabbed.
func (e *Engine) PointerDown(p geometry.Vector2D) bool {
	c, ok := hitTest(e.charges, p, e.cfg.ChargeRadius)
	if !ok {
		return false
	}
	c.unlock()
	e.drag = Dragging{ChargeID: c.ID}
	return true
}

// PointerMove moves the dragged charge to p. It reports whether anything moved.
func (e *Engine) PointerMove(p geometry.Vector2D) bool {
	d, ok := e.drag.(Dragging)
	if !ok {
		return false
	}
	c, ok := e.Charge(d.ChargeID)
	if !ok {
		return false
	}
	c.Pos = p
	return true
}

// PointerUp ends the drag. Physics resumes on the next Step.
func (e *Engine) PointerUp() {
	e.drag = Idle{}
}
