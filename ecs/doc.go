// Package ecs provides ECS adapters for menunav's navigation events.
//
// The primary adapter is [NewDonburiStore], which bridges navigation events
// (focus changes, presses, slider adjustments, group activation) into a
// [Donburi] world as typed events. Subscribe to [NavEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	nav := menunav.NewNavigator(settings, menunav.WithEventSink(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
