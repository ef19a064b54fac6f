// Package report runs a scene without a window and prints what happened.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/simulation"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

// Options controls a headless run.
type Options struct {
	Steps int
	// Drop, when set, drags the first movable charge there before stepping.
	Drop *geometry.Vector2D
}

// Trace is the outcome of a headless run.
type Trace struct {
	Steps int
	// StepLen holds |step| per frame for every movable charge, keyed by id.
	StepLen map[string][]float64
	Locks   []simulation.LockEvent
	Final   *simulation.Snapshot
}

// Simulate builds an engine from cfg and steps it opts.Steps times.
func Simulate(cfg *simulation.Config, opts Options) (*Trace, error) {
	if opts.Steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", opts.Steps)
	}
	e := simulation.NewEngine(cfg)

	if opts.Drop != nil {
		if err := drop(e, cfg, *opts.Drop); err != nil {
			return nil, err
		}
	}

	tr := &Trace{Steps: opts.Steps, StepLen: make(map[string][]float64)}
	for i := 0; i < opts.Steps; i++ {
		tr.Locks = append(tr.Locks, e.Step()...)
		for _, c := range e.Snapshot().Charges {
			if c.Movable {
				tr.StepLen[c.ID] = append(tr.StepLen[c.ID], c.Step.Len())
			}
		}
	}
	tr.Final = e.Snapshot()
	return tr, nil
}

// drop replays a press, move and release on the first movable charge.
func drop(e *simulation.Engine, cfg *simulation.Config, at geometry.Vector2D) error {
	for _, spec := range cfg.Charges {
		if !spec.Movable {
			continue
		}
		if !e.PointerDown(geometry.NewVector(spec.X, spec.Y)) {
			return fmt.Errorf("could not grab %s at (%g, %g)", spec.ID, spec.X, spec.Y)
		}
		e.PointerMove(at)
		e.PointerUp()
		return nil
	}
	return fmt.Errorf("scene has no movable charge to drop")
}

// Write prints one plot per movable charge followed by the final state.
func (t *Trace) Write(w io.Writer) error {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("coulomb: %d steps, %d locks", t.Steps, len(t.Locks))))
	b.WriteString("\n\n")

	for _, c := range t.Final.Charges {
		series, ok := t.StepLen[c.ID]
		if !ok {
			continue
		}
		b.WriteString(asciigraph.Plot(series,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("|step| of %s per frame (px)", c.ID))))
		b.WriteString("\n\n")
	}

	for _, ev := range t.Locks {
		b.WriteString(lockedStyle.Render(fmt.Sprintf("lock: %s -> %s at %s", ev.ChargeID, ev.PartnerID, ev.Pos)))
		b.WriteString("\n")
	}
	if len(t.Locks) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(panelStyle.Render(t.table()))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Trace) table() string {
	rows := []string{headerStyle.Render("final state")}
	for _, c := range t.Final.Charges {
		status := valueStyle.Render(c.Status.String())
		if c.Status == simulation.Locked {
			status = lockedStyle.Render(fmt.Sprintf("%s to %s", c.Status, c.Partner))
		}
		kind := "fixed"
		if c.Movable {
			kind = "movable"
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(c.ID),
			valueStyle.Width(18).Render(c.Pos.String()),
			valueStyle.Width(8).Render(fmt.Sprintf("%+g", c.Magnitude)),
			valueStyle.Width(9).Render(kind),
			status,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
