package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// WorldActor owns the Engine. Every mutation goes through its mailbox, so
// input sent before a Tick is applied before that Tick.
type WorldActor struct {
	engine     *Engine
	snapshotCh chan<- *Snapshot

	// --- Benchmark Stats ---
	tickCount   int
	lockCount   int
	frameTime   time.Duration
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor wraps engine. Snapshots are pushed on snapshotCh after every
// change; a nil channel disables them.
func NewWorldActor(engine *Engine, snapshotCh chan<- *Snapshot) *WorldActor {
	return &WorldActor{
		engine:      engine,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

// SpawnWorld starts a WorldActor named "world" on system.
func SpawnWorld(ctx context.Context, system actor.ActorSystem, engine *Engine, snapshotCh chan<- *Snapshot) (*actor.PID, error) {
	pid, err := system.Spawn(ctx, "world", NewWorldActor(engine, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	return pid, nil
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s holds %d charges", ctx.ActorName(), len(w.engine.charges))
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		// first frame, before any tick
		w.pushSnapshot()

	case *durationpb.Duration:
		w.tickCount++
		w.frameTime += msg.AsDuration()
		for _, ev := range w.engine.Step() {
			w.lockCount++
			ctx.Logger().Infof("dipole lock: %s snapped to %s at %s", ev.ChargeID, ev.PartnerID, ev.Pos)
		}
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *structpb.Struct:
		ev, err := DecodePointerEvent(msg)
		if err != nil {
			ctx.Logger().Warnf("ignoring pointer message: %v", err)
			return
		}
		if ev.Apply(w.engine) {
			if ev.Kind == PointerDown {
				ctx.Logger().Debugf("pointer down at %s: %s", ev.Pos, w.engine.Drag())
			}
			w.pushSnapshot()
		}

	case *emptypb.Empty:
		w.engine.Reset()
		ctx.Logger().Info("scene reset")
		w.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) < time.Second {
		return
	}
	avg := time.Duration(0)
	if w.tickCount > 0 {
		avg = w.frameTime / time.Duration(w.tickCount)
	}
	ctx.Logger().Infof("TICK RATE: %d/sec (avg frame %s) | Locks: %d | %s",
		w.tickCount, avg, w.lockCount, w.engine.Drag())
	w.tickCount = 0
	w.lockCount = 0
	w.frameTime = 0
	w.lastLogTime = time.Now()
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.engine.Snapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World stopped after %d frames", w.engine.Frame())
	return nil
}
