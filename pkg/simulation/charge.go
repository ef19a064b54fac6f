package simulation

import "github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"

// Status tells whether a charge is integrated by the physics step.
type Status int

const (
	// Free charges take part in force integration.
	Free Status = iota
	// Locked charges are snapped next to an opposite charge and frozen
	// until a drag starts on them.
	Locked
)

func (s Status) String() string {
	if s == Locked {
		return "locked"
	}
	return "free"
}

// Charge is a point charge of the scene.
type Charge struct {
	ID        string
	Pos       geometry.Vector2D
	Magnitude float64
	Movable   bool

	status  Status
	partner string
}

// NewCharge creates a free charge.
func NewCharge(id string, x, y, magnitude float64, movable bool) *Charge {
	return &Charge{
		ID:        id,
		Pos:       geometry.Vector2D{X: x, Y: y},
		Magnitude: magnitude,
		Movable:   movable,
	}
}

// Status returns Free or Locked.
func (c *Charge) Status() Status {
	return c.status
}

// Locked is a shortcut for c.Status() == Locked.
func (c *Charge) Locked() bool {
	return c.status == Locked
}

// Partner is the ID of the charge this one is locked to, or "" when free.
func (c *Charge) Partner() string {
	return c.partner
}

// Positive reports the polarity used for coloring.
func (c *Charge) Positive() bool {
	return c.Magnitude > 0
}

// Opposes reports whether c and other have opposite signs.
func (c *Charge) Opposes(other *Charge) bool {
	return c.Magnitude*other.Magnitude < 0
}

// DistanceTo gives the cartesian distance between the two centers.
func (c *Charge) DistanceTo(other *Charge) float64 {
	return c.Pos.DistanceTo(other.Pos)
}

func (c *Charge) lock(partner string) {
	c.status = Locked
	c.partner = partner
}

func (c *Charge) unlock() {
	c.status = Free
	c.partner = ""
}
