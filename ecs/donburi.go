package ecs

import (
	"github.com/phanxgames/menunav"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavEventType is the Donburi event type for menunav navigation events.
var NavEventType = events.NewEventType[menunav.NavEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Navigation events are published to NavEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) menunav.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event menunav.NavEvent) {
	NavEventType.Publish(s.world, event)
}
