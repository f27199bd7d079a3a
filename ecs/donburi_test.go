package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/thomasahle/trainbox/uimodel"
)

func TestNewDonburiListener(t *testing.T) {
	if NewDonburiListener(donburi.NewWorld()) == nil {
		t.Fatal("NewDonburiListener returned nil")
	}
}

func TestDonburiListener_PublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	listener := NewDonburiListener(world)

	var received []TrainEvent
	TrainEventType.Subscribe(world, func(w donburi.World, e TrainEvent) {
		received = append(received, e)
	})

	a := uimodel.NewTrain(3)
	b := uimodel.NewTrain(5)
	listener.OnTrainCreated(a)
	listener.OnTrainDestroyed(b)

	if len(received) != 0 {
		t.Fatal("events should be queued until ProcessEvents")
	}
	TrainEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Kind != TrainCreated || e.TrainID != a.ID() || e.Cargo != 3 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Kind != TrainDestroyed || e.TrainID != b.ID() || e.Cargo != 5 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiListener_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	listener := NewDonburiListener(world)

	var count1, count2 int
	TrainEventType.Subscribe(world, func(w donburi.World, e TrainEvent) { count1++ })
	TrainEventType.Subscribe(world, func(w donburi.World, e TrainEvent) { count2++ })

	listener.OnTrainCreated(uimodel.NewTrain(1))
	TrainEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d, count2=%d, want 1 each", count1, count2)
	}
}

func TestTrainEventKindString(t *testing.T) {
	if TrainCreated.String() != "created" || TrainDestroyed.String() != "destroyed" {
		t.Error("unexpected kind names")
	}
	if TrainEventKind(9).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}
