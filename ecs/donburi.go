package ecs

import (
	"github.com/phanxgames/canvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries canvas pointer events into a Donburi world.
// A canvas emits one event for each accepted press and one for each move,
// release or cancel delivered to the capture target. Events dropped by the
// canvas (no capture target, or a target scaled to zero) never appear.
// Published events stay queued until events.ProcessEvents runs.
var InteractionEventType = events.NewEventType[canvas.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EntityStore that publishes into world. Install
// it with Canvas.SetEntityStore. Elements whose EntityID is zero are never
// forwarded, so only entity-backed elements show up here.
func NewDonburiStore(world donburi.World) canvas.EntityStore {
	return &donburiStore{world: world}
}

// EmitEvent queues event on InteractionEventType. Coordinates are in canvas
// space (GlobalX/GlobalY) and in the target's local space (LocalX/LocalY).
func (s *donburiStore) EmitEvent(event canvas.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
