package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/simulation"
)

func TestSimulate_DefaultScene(t *testing.T) {
	tr, err := Simulate(simulation.DefaultConfig(), Options{Steps: 50})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Final.Frame != 50 {
		t.Errorf("Final.Frame = %d; want 50", tr.Final.Frame)
	}
	if len(tr.StepLen) != 1 {
		t.Fatalf("traced %d charges; want only the movable one", len(tr.StepLen))
	}
	if got := len(tr.StepLen["q4"]); got != 50 {
		t.Errorf("len(StepLen[q4]) = %d; want 50", got)
	}
	if tr.StepLen["q4"][0] <= 0 {
		t.Error("first step of q4 has zero length")
	}
}

func TestSimulate_DropNextToOpposite(t *testing.T) {
	drop := geometry.Vector2D{X: 120, Y: 100}
	tr, err := Simulate(simulation.DefaultConfig(), Options{Steps: 5, Drop: &drop})
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Locks) != 1 || tr.Locks[0].ChargeID != "q4" || tr.Locks[0].PartnerID != "q1" {
		t.Fatalf("locks = %+v; want q4 locked to q1", tr.Locks)
	}
	q4, _ := tr.Final.Find("q4")
	if !q4.Pos.Eq(geometry.Vector2D{X: 140, Y: 100}) {
		t.Errorf("q4 = %v; want (140, 100)", q4.Pos)
	}
	for i, l := range tr.StepLen["q4"] {
		if l != 0 {
			t.Errorf("frame %d: locked q4 stepped %v", i, l)
		}
	}
}

func TestSimulate_Errors(t *testing.T) {
	noMovable := simulation.DefaultConfig()
	noMovable.Charges = noMovable.Charges[:3]
	drop := geometry.Vector2D{X: 1, Y: 1}

	tests := []struct {
		name string
		cfg  *simulation.Config
		opts Options
	}{
		{"zero steps", simulation.DefaultConfig(), Options{}},
		{"negative steps", simulation.DefaultConfig(), Options{Steps: -3}},
		{"drop without movable charge", noMovable, Options{Steps: 1, Drop: &drop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Simulate(tt.cfg, tt.opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTrace_Write(t *testing.T) {
	drop := geometry.Vector2D{X: 120, Y: 100}
	tr, err := Simulate(simulation.DefaultConfig(), Options{Steps: 10, Drop: &drop})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tr.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"10 steps", "|step| of q4", "lock: q4 -> q1", "final state", "q1", "movable"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}
