package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// World actor messages are protobuf well-known types:
//   - *durationpb.Duration is a Tick, carrying the frame time for telemetry
//   - *structpb.Struct is a pointer event {pointer, x, y}
//   - *emptypb.Empty resets the scene

// PointerKind is the kind of a pointer event.
type PointerKind string

const (
	PointerDown PointerKind = "down"
	PointerMove PointerKind = "move"
	PointerUp   PointerKind = "up"
)

// ErrUnknownPointerEvent is returned for a pointer message that cannot be decoded.
var ErrUnknownPointerEvent = errors.New("unknown pointer event")

// PointerEvent is the decoded form of a pointer message.
type PointerEvent struct {
	Kind PointerKind
	Pos  geometry.Vector2D
}

// NewTick builds a Tick message.
func NewTick(elapsed time.Duration) *durationpb.Duration {
	return durationpb.New(elapsed)
}

// NewReset builds a Reset message.
func NewReset() *emptypb.Empty {
	return &emptypb.Empty{}
}

// NewPointerEvent builds a pointer message at screen coordinates (x, y).
func NewPointerEvent(kind PointerKind, x, y float64) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"pointer": structpb.NewStringValue(string(kind)),
		"x":       structpb.NewNumberValue(x),
		"y":       structpb.NewNumberValue(y),
	}}
}

// DecodePointerEvent reads back a message built by NewPointerEvent.
func DecodePointerEvent(msg *structpb.Struct) (PointerEvent, error) {
	fields := msg.GetFields()
	kind := PointerKind(fields["pointer"].GetStringValue())
	switch kind {
	case PointerDown, PointerMove, PointerUp:
	default:
		return PointerEvent{}, fmt.Errorf("%w: %q", ErrUnknownPointerEvent, kind)
	}
	return PointerEvent{
		Kind: kind,
		Pos: geometry.Vector2D{
			X: fields["x"].GetNumberValue(),
			Y: fields["y"].GetNumberValue(),
		},
	}, nil
}

// Apply feeds the event to the engine and reports whether a render is due.
func (ev PointerEvent) Apply(e *Engine) bool {
	switch ev.Kind {
	case PointerDown:
		return e.PointerDown(ev.Pos)
	case PointerMove:
		return e.PointerMove(ev.Pos)
	default:
		_, dragging := e.Drag().(Dragging)
		e.PointerUp()
		return dragging
	}
}
