// Package ecs provides ECS adapters for canvas pointer events.
//
// The primary adapter is [NewDonburiStore], which bridges canvas interaction
// events into a [Donburi] world as typed events. A press is emitted only when
// an element accepts it; moves, releases and cancels are emitted only when
// they reach the captured element. Subscribe to [InteractionEventType] in
// your ECS systems to receive them. Only elements with a non-zero EntityID
// produce events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	c.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
