package systems

import (
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// ChangeState commits next and notifies observers with (old, next). A
// transition to the current state does nothing.
func ChangeState(e *donburi.Entry, next cfg.EntityState) {
	if !e.Valid() || !e.HasComponent(components.State) {
		return
	}
	state := components.State.Get(e)
	if state.Current == next {
		return
	}
	old := state.Current
	state.Previous = old
	state.Current = next

	observers := append([]components.StateObserver(nil), state.Observers...)
	for _, fn := range observers {
		fn(old, next)
	}
}

// OnStateChanged registers fn for every committed state change of e.
func OnStateChanged(e *donburi.Entry, fn components.StateObserver) {
	state := components.State.Get(e)
	state.Observers = append(state.Observers, fn)
}

// CurrentState returns the life-cycle state of e.
func CurrentState(e *donburi.Entry) cfg.EntityState {
	if !e.HasComponent(components.State) {
		return cfg.Grounded
	}
	return components.State.Get(e).Current
}

// ReceiveHit applies a landed hit to target: knockback, then stun, then
// damage, then the GettingHit state.
func ReceiveHit(w donburi.World, target *donburi.Entry, knockback gamemath.Vec, stun, damage float64) {
	if !knockback.IsZero() {
		ApplyKnockback(w, target, knockback)
	}
	if stun > 0 {
		ApplyStun(target, stun)
	}
	if damage > 0 && target.HasComponent(components.Vitality) {
		v := components.Vitality.Get(target)
		v.Current = gamemath.Clamp(v.Current-damage, 0, v.Max)
		v.DamageTaken += damage
	}
	ChangeState(target, cfg.GettingHit)

	actorLog(target).WithFields(logrus.Fields{
		"damage": damage,
		"stun":   stun,
	}).Debug("hit received")
}
