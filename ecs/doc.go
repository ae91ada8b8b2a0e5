// Package ecs runs springs inside a [Donburi] world.
//
// Attach any [spring.Animator] to an entity with [Add], call [Update] once per
// tick from a system, and subscribe to [SettledEventType] to react when a
// spring comes to rest:
//
//	ent := ecs.Add(world, pos)
//	ecs.SettledEventType.Subscribe(world, func(w donburi.World, e ecs.SettledEvent) {
//		// e.Entity finished moving
//	})
//
//	// each tick
//	ecs.Update(world, dt)
//	ecs.SettledEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
