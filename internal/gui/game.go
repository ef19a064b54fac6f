package gui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	linkColor       = color.RGBA{R: 230, G: 230, B: 120, A: 255}
	arrowColor      = color.RGBA{R: 120, G: 255, B: 120, A: 255}
)

// arrowScale turns a per-frame step (a fraction of a pixel when settled)
// into something visible; arrows are capped at maxArrow pixels.
const (
	arrowScale = 40.0
	maxArrow   = 80.0
)

// Game is the ebiten frame driver. It turns input into world messages,
// sends one Tick per frame and draws the last snapshot it received.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *simulation.Snapshot
	lastState  *simulation.Snapshot

	cfg      *simulation.Config
	renderer simulation.Renderer

	// UI Controls
	toolbar         *ui.Toolbar
	widgetShowSteps *ui.Checkbox

	// pointer tracking, only presses that started in the scene are forwarded
	pressed    bool
	lastCursor image.Point
	lastTick   time.Time

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame spawns the world actor on system and builds the UI around it.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	// Buffer to avoid blocking
	snapshotCh := make(chan *simulation.Snapshot, 10)

	worldPID, err := simulation.SpawnWorld(ctx, system, simulation.NewEngine(cfg), snapshotCh)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &simulation.Snapshot{Drag: simulation.Idle{}}, // Avoid nil pointer
		cfg:        cfg,
		renderer:   simulation.NewRenderer(cfg),
		toolbar:    ui.NewToolbar(10, 10, 36),
		lastTick:   time.Now(),
	}
	g.toolbar.AddButton("Reset [R]", g.reset)
	g.widgetShowSteps = g.toolbar.AddCheckbox("Steps [F]", false)
	return g, nil
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) error {
	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Coulomb: drag the movable charge")
	ebiten.SetTPS(cfg.TicksPerSecond)

	game, err := NewGame(ctx, cfg, system)
	if err != nil {
		return err
	}
	return ebiten.RunGame(game)
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.widgetShowSteps.Toggle()
	}

	// 1. Widgets first, they own clicks over the toolbar
	g.toolbar.Update()

	// 2. Pointer input, queued before this frame's Tick
	g.forwardPointer()

	// 3. Trigger Simulation Step
	now := time.Now()
	g.tell(simulation.NewTick(now.Sub(g.lastTick)))
	g.lastTick = now

	// 4. Keep the most recent snapshot (Non-blocking)
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			return nil
		}
	}
}

func (g *Game) forwardPointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	moved := image.Pt(mx, my) != g.lastCursor
	g.lastCursor = image.Pt(mx, my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.toolbar.Contains(x, y) {
			return
		}
		g.pressed = true
		g.tell(simulation.NewPointerEvent(simulation.PointerDown, x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.pressed {
			g.pressed = false
			g.tell(simulation.NewPointerEvent(simulation.PointerUp, x, y))
		}
	case g.pressed && moved:
		g.tell(simulation.NewPointerEvent(simulation.PointerMove, x, y))
	}
}

func (g *Game) reset() {
	g.pressed = false
	g.tell(simulation.NewReset())
}

func (g *Game) tell(msg proto.Message) {
	if err := actor.Tell(g.ctx, g.worldPID, msg); err != nil {
		g.System.Logger().Errorf("failed to send %T to world: %v", msg, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Charges from the last known snapshot
	g.renderer.Render(&screenSurface{screen: screen, background: backgroundColor}, g.lastState.Charges)

	// 2. Overlays
	g.drawLockLinks(screen)
	if g.widgetShowSteps.Value {
		g.drawSteps(screen)
	}

	// 3. UI
	g.toolbar.Draw(screen)

	msg := fmt.Sprintf("Frame: %d  %s\nTPS: %.2f  Update: %.2fms  Draw: %.2fms",
		g.lastState.Frame,
		g.lastState.Drag,
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, 10, int(g.cfg.WorldHeight)-40)
}

// drawLockLinks joins every locked charge to its partner.
func (g *Game) drawLockLinks(screen *ebiten.Image) {
	for _, c := range g.lastState.Charges {
		if c.Status != simulation.Locked {
			continue
		}
		p, ok := g.lastState.Find(c.Partner)
		if !ok {
			continue
		}
		vector.StrokeLine(screen,
			float32(c.Pos.X), float32(c.Pos.Y),
			float32(p.Pos.X), float32(p.Pos.Y),
			2, linkColor, true)
	}
}

// drawSteps shows the displacement applied to each charge by the last step.
func (g *Game) drawSteps(screen *ebiten.Image) {
	for _, c := range g.lastState.Charges {
		if c.Step.LenSqr() == 0 {
			continue
		}
		length := math.Min(c.Step.Len()*arrowScale, maxArrow)
		tip := c.Pos.Add(c.Step.Normalize().Mul(length))
		vector.StrokeLine(screen,
			float32(c.Pos.X), float32(c.Pos.Y),
			float32(tip.X), float32(tip.Y),
			2, arrowColor, true)
		vector.FillCircle(screen, float32(tip.X), float32(tip.Y), 3, arrowColor, true)
	}
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }
