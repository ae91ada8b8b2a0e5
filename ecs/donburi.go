package ecs

import (
	"github.com/phanxgames/spring"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SpringData is the component payload: the animator an entity owns.
type SpringData struct {
	Animator spring.Animator
}

// Component marks entities driven by a spring.
var Component = donburi.NewComponentType[SpringData]()

// SettledEvent is published when an entity's spring goes from animating to
// idle during Update, whether by settling or by an adapter clearing it.
type SettledEvent struct {
	Entity donburi.Entity
}

// SettledEventType is the Donburi event type for SettledEvent.
var SettledEventType = events.NewEventType[SettledEvent]()

var query = donburi.NewQuery(filter.Contains(Component))

// Add creates an entity carrying a and returns it.
func Add(world donburi.World, a spring.Animator) donburi.Entity {
	ent := world.Create(Component)
	Component.SetValue(world.Entry(ent), SpringData{Animator: a})
	return ent
}

// Update steps every spring entity by dt seconds and returns how many
// reported a change. Settle transitions are queued on SettledEventType.
func Update(world donburi.World, dt float64) int {
	changed := 0
	query.Each(world, func(entry *donburi.Entry) {
		a := Component.Get(entry).Animator
		if a == nil {
			return
		}
		was := a.Animating()
		if a.Update(dt) {
			changed++
		}
		if was && !a.Animating() {
			SettledEventType.Publish(world, SettledEvent{Entity: entry.Entity()})
		}
	})
	return changed
}
