package ecs

import (
	"github.com/phanxgames/cloth"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SimEventType is the Donburi event type for cloth simulation events.
// Subscribe to this in your ECS systems to receive cuts and resets.
var SimEventType = events.NewEventType[cloth.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Events are published to SimEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) cloth.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event cloth.Event) {
	SimEventType.Publish(s.world, event)
}
