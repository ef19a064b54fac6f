package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
)

// Physics holds the constants of the force model.
type Physics struct {
	K             float64 // Coulomb constant, tuned for pixels not SI units
	MinDistance   float64 // below this, opposite charges lock
	LockGap       float64 // extra gap added to MinDistance when snapping
	StepScale     float64 // position step per unit of force
	MinSeparation float64 // floor for r in the force term
}

// DefaultPhysics returns the constants of the reference scene.
func DefaultPhysics() Physics {
	return Physics{
		K:             1.1e7,
		MinDistance:   35,
		LockGap:       5,
		StepScale:     -0.01,
		MinSeparation: 1e-6,
	}
}

// LockDistance is the center to center distance of a locked pair.
func (p Physics) LockDistance() float64 {
	return p.MinDistance + p.LockGap
}

// NetForce accumulates the Coulomb term of every other charge on subject.
//
// Pairs are visited in scene order. When an opposite charge is closer than
// MinDistance, subject is snapped to LockDistance from it along the line
// joining them and locked; the pairs left are skipped and the zero vector is
// returned. Locked subjects are the caller's business: NetForce does not check.
func NetForce(subject *Charge, charges []*Charge, p Physics) geometry.Vector2D {
	var f geometry.Vector2D
	for _, other := range charges {
		if other == subject {
			continue
		}
		d := other.Pos.Sub(subject.Pos)
		r := d.Len()

		if r < p.MinDistance && subject.Opposes(other) {
			snapToPartner(subject, other, d, r, p)
			return geometry.Vector2D{}
		}

		r = math.Max(r, p.MinSeparation)
		magnitude := p.K * subject.Magnitude * other.Magnitude / (r * r)
		f.X += magnitude * (d.X / r)
		f.Y += magnitude * (d.Y / r)
	}
	return f
}

// snapToPartner places subject at LockDistance from other, on subject's side
// of the line joining the centers.
func snapToPartner(subject, other *Charge, d geometry.Vector2D, r float64, p Physics) {
	dir := geometry.Vector2D{X: 1}
	if r > 0 {
		dir = geometry.Vector2D{X: d.X / r, Y: d.Y / r}
	}
	subject.Pos = other.Pos.Sub(dir.Mul(p.LockDistance()))
	subject.lock(other.ID)
}

// Integrate moves a free charge by force scaled with StepScale.
// It returns the displacement applied, zero for locked charges.
func Integrate(c *Charge, force geometry.Vector2D, p Physics) geometry.Vector2D {
	if c.Locked() {
		return geometry.Vector2D{}
	}
	step := force.Mul(p.StepScale)
	c.Pos = c.Pos.Add(step)
	return step
}
