// Package ecs provides ECS adapters for cloth's simulation events.
//
// The primary adapter is [NewDonburiStore], which bridges cloth events (path
// start and end, cuts, resets) into a [Donburi] world as typed events.
// Subscribe to [SimEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sim.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
