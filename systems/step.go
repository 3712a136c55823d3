package systems

import (
	"github.com/automoto/pillbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UpdateRunners steps every actor's tasks once.
func UpdateRunners(w donburi.World) {
	var runners []*components.CombatData
	components.Combat.Each(w, func(e *donburi.Entry) {
		runners = append(runners, components.Combat.Get(e))
	})
	for _, cd := range runners {
		cd.Runner.Tick()
	}
}

// Step advances the simulation by dt seconds. The order is fixed: clock,
// input, attack starts, attack tasks, animation events, stun, movement, hit
// volumes, then queued events.
func Step(w donburi.World, dt float64) {
	clock := WorldClock(w)
	if clock == nil {
		return
	}
	clock.Advance(dt)

	UpdateInputs(w, clock.Now)
	UpdateInputGate(w)
	UpdateLocomotion(w)
	UpdateRunners(w)
	UpdateAnimators(w, dt)
	UpdateStun(w, dt)
	UpdatePhysics(w, dt)
	UpdateHitboxes(w, dt)
	UpdateDummies(w, dt)
	events.ProcessAllEvents(w)
}
