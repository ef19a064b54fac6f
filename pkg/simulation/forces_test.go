package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
)

const tolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNetForce_StepDirection(t *testing.T) {
	p := DefaultPhysics()
	tests := []struct {
		name        string
		subjectQ    float64
		otherQ      float64
		distance    float64
		wantCloser  bool
		wantLocked  bool
		wantNonZero bool
	}{
		{"equal positive steps apart", 1, 1, 100, false, false, true},
		{"equal negative steps apart", -1, -1, 100, false, false, true},
		{"equal sign inside min distance steps apart", 1, 1, 20, false, false, true},
		{"opposite steps together", 1, -1, 100, true, false, true},
		{"opposite at exactly min distance steps together", -1, 1, 35, true, false, true},
		{"opposite inside min distance locks", 1, -1, 34.9, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewCharge("other", 300, 300, tt.otherQ, false)
			subject := NewCharge("subject", 300+tt.distance, 300, tt.subjectQ, true)
			charges := []*Charge{other, subject}

			before := subject.DistanceTo(other)
			f := NetForce(subject, charges, p)
			if subject.Locked() != tt.wantLocked {
				t.Fatalf("Locked() = %v; want %v", subject.Locked(), tt.wantLocked)
			}
			if tt.wantLocked {
				if f != (geometry.Vector2D{}) {
					t.Errorf("expected zero force on lock, got %v", f)
				}
				return
			}
			if (f.LenSqr() > 0) != tt.wantNonZero {
				t.Fatalf("force = %v", f)
			}
			toOther := other.Pos.Sub(subject.Pos)
			step := Integrate(subject, f, p)
			if closer := step.Dot(toOther) > 0; closer != tt.wantCloser {
				t.Errorf("step %v at distance %v; want towards the other charge=%v", step, before, tt.wantCloser)
			}
		})
	}
}

func TestNetForce_CoulombMagnitude(t *testing.T) {
	p := DefaultPhysics()
	other := NewCharge("fixed", 700, 100, 1, false)
	subject := NewCharge("moving", 700, 700, 1, true)

	f := NetForce(subject, []*Charge{other, subject}, p)

	// k / 600² along -y (towards the other charge, before StepScale)
	want := geometry.Vector2D{X: 0, Y: -1.1e7 / 360000}
	if !f.Eq(want) {
		t.Errorf("NetForce = %v; want %v", f, want)
	}
}

func TestNetForce_LockSnapsOnOriginalLine(t *testing.T) {
	p := DefaultPhysics()
	other := NewCharge("fixed", 100, 100, -1, false)
	subject := NewCharge("moving", 118, 124, 1, true) // r = 30, direction (0.6, 0.8)

	NetForce(subject, []*Charge{other, subject}, p)

	if !subject.Locked() || subject.Partner() != "fixed" {
		t.Fatalf("expected lock on fixed, got status=%s partner=%q", subject.Status(), subject.Partner())
	}
	if d := subject.DistanceTo(other); !floatEquals(d, 40) {
		t.Errorf("distance after snap = %v; want 40", d)
	}
	want := geometry.Vector2D{X: 124, Y: 132}
	if !subject.Pos.Eq(want) {
		t.Errorf("snapped position = %v; want %v", subject.Pos, want)
	}
	if c := subject.Pos.Sub(other.Pos).Cross(geometry.Vector2D{X: 0.6, Y: 0.8}); !floatEquals(c, 0) {
		t.Errorf("snapped position left the original line, cross = %v", c)
	}
}

func TestNetForce_LockDiscardsPartialSum(t *testing.T) {
	p := DefaultPhysics()
	// far repeller first, so the partial sum is not zero when the lock triggers
	far := NewCharge("far", 500, 500, 1, false)
	near := NewCharge("near", 210, 200, -1, false)
	later := NewCharge("later", 0, 0, 1, false)
	subject := NewCharge("subject", 200, 200, 1, true)

	f := NetForce(subject, []*Charge{far, near, later, subject}, p)

	if f != (geometry.Vector2D{}) {
		t.Errorf("expected the partial sum to be discarded, got %v", f)
	}
	if subject.Partner() != "near" {
		t.Errorf("partner = %q; want near", subject.Partner())
	}
}

func TestNetForce_CoincidentCenters(t *testing.T) {
	p := DefaultPhysics()

	t.Run("equal sign stays finite", func(t *testing.T) {
		other := NewCharge("a", 400, 400, 1, false)
		subject := NewCharge("b", 400, 400, 1, true)
		f := NetForce(subject, []*Charge{other, subject}, p)
		if !f.IsFinite() {
			t.Fatalf("force is not finite: %v", f)
		}
		Integrate(subject, f, p)
		if !subject.Pos.IsFinite() {
			t.Errorf("position is not finite: %v", subject.Pos)
		}
	})

	t.Run("opposite sign snaps along x", func(t *testing.T) {
		other := NewCharge("a", 400, 400, -1, false)
		subject := NewCharge("b", 400, 400, 1, true)
		NetForce(subject, []*Charge{other, subject}, p)
		want := geometry.Vector2D{X: 360, Y: 400}
		if !subject.Locked() || !subject.Pos.Eq(want) {
			t.Errorf("got locked=%v pos=%v; want locked at %v", subject.Locked(), subject.Pos, want)
		}
	})
}

func TestIntegrate_LockedChargeDoesNotMove(t *testing.T) {
	p := DefaultPhysics()
	c := NewCharge("c", 10, 10, 1, true)
	c.lock("other")

	step := Integrate(c, geometry.Vector2D{X: 1000, Y: -1000}, p)

	if step != (geometry.Vector2D{}) || !c.Pos.Eq(geometry.Vector2D{X: 10, Y: 10}) {
		t.Errorf("locked charge moved: step=%v pos=%v", step, c.Pos)
	}
}

func BenchmarkNetForce(b *testing.B) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	subject, _ := e.Charge("q4")
	p := e.Physics()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NetForce(subject, e.charges, p)
	}
}
