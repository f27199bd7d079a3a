package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/thomasahle/trainbox/uimodel"
)

// TrainEventKind says what happened to a train.
type TrainEventKind uint8

const (
	TrainCreated TrainEventKind = iota
	TrainDestroyed
)

func (k TrainEventKind) String() string {
	switch k {
	case TrainCreated:
		return "created"
	case TrainDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// TrainEvent is published for every train change.
type TrainEvent struct {
	Kind    TrainEventKind
	TrainID uint32
	Cargo   int
}

// TrainEventType is the Donburi event type carrying TrainEvent.
var TrainEventType = events.NewEventType[TrainEvent]()

type donburiListener struct {
	world donburi.World
}

// NewDonburiListener creates a listener that publishes train events into
// world. Events are queued until TrainEventType.ProcessEvents is called.
func NewDonburiListener(world donburi.World) uimodel.TrainsChangedListener {
	return &donburiListener{world: world}
}

func (l *donburiListener) OnTrainCreated(t *uimodel.Train) {
	TrainEventType.Publish(l.world, TrainEvent{Kind: TrainCreated, TrainID: t.ID(), Cargo: t.Cargo()})
}

func (l *donburiListener) OnTrainDestroyed(t *uimodel.Train) {
	TrainEventType.Publish(l.world, TrainEvent{Kind: TrainDestroyed, TrainID: t.ID(), Cargo: t.Cargo()})
}
