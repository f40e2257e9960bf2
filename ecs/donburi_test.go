package ecs

import (
	"testing"

	"github.com/phanxgames/cloth"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []cloth.Event
	SimEventType.Subscribe(world, func(w donburi.World, e cloth.Event) {
		received = append(received, e)
	})

	store.EmitEvent(cloth.Event{
		Type:  cloth.EventPathStart,
		Frame: 7,
		Point: cloth.Vec2{X: 100, Y: 200},
	})
	store.EmitEvent(cloth.Event{
		Type:  cloth.EventCut,
		Depth: 0.5,
		Cut:   cloth.CutResult{Segments: 3, Broken: 12, MaxLayer: 2},
	})

	// Events are queued until processed.
	SimEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != cloth.EventPathStart || e0.Frame != 7 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Point.X != 100 || e0.Point.Y != 200 {
		t.Errorf("event 0 point: (%v,%v)", e0.Point.X, e0.Point.Y)
	}

	e1 := received[1]
	if e1.Type != cloth.EventCut || e1.Cut.Broken != 12 || e1.Cut.MaxLayer != 2 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var store cloth.EventSink = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_SimCut(t *testing.T) {
	world := donburi.NewWorld()
	sim := cloth.NewSim(cloth.MeshConfig{
		Cols: 4, Rows: 3, Spacing: 10,
		Origin: cloth.Vec2{X: 100, Y: 100},
		Layers: 3, LayerGap: 4,
	}, cloth.DefaultSolverConfig())
	sim.SetEventSink(NewDonburiStore(world))

	var types []cloth.EventType
	SimEventType.Subscribe(world, func(w donburi.World, e cloth.Event) {
		types = append(types, e.Type)
	})

	set := cloth.DefaultSettings()
	sim.BeginPath(cloth.Vec2{X: 95, Y: 105})
	sim.ExtendPath(cloth.Vec2{X: 145, Y: 105})
	res := sim.FinalizePath(set)
	if res.Broken == 0 {
		t.Fatal("expected the path to break constraints")
	}
	events.ProcessAllEvents(world)

	want := []cloth.EventType{cloth.EventPathStart, cloth.EventCut, cloth.EventPathEnd}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SimEventType.Subscribe(world, func(w donburi.World, e cloth.Event) {
		count1++
	})
	SimEventType.Subscribe(world, func(w donburi.World, e cloth.Event) {
		count2++
	})

	store.EmitEvent(cloth.Event{Type: cloth.EventReset})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
