package systems

import (
	"sort"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/tags"
	"github.com/yohamta/donburi"
)

// UpdateInputs refreshes every input source that polls per tick.
func UpdateInputs(w donburi.World, now float64) {
	components.Input.Each(w, func(e *donburi.Entry) {
		if p, ok := components.Input.Get(e).Source.(components.InputPoller); ok {
			p.Poll(now)
		}
	})
}

// UpdateInputGate starts the attack bound to each action pressed this tick.
// Stunned actors and actors held off attacking are skipped; so is anything
// after the first accepted attack of the tick.
func UpdateInputGate(w donburi.World) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		source := components.Input.Get(e).Source
		if source == nil || IsStunned(e) {
			return
		}
		cd := components.Combat.Get(e)
		if !cd.CanAttack {
			return
		}
		for _, action := range boundActions(cd) {
			if !source.WasPressed(action) {
				continue
			}
			if StartAttack(e, cd.Bindings[action]) {
				return
			}
		}
	})
}

// boundActions returns the bound actions in a fixed order so simultaneous
// presses resolve the same way every run.
func boundActions(cd *components.CombatData) []cfg.ActionID {
	actions := make([]cfg.ActionID, 0, len(cd.Bindings))
	for a := range cd.Bindings {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
