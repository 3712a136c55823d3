package systems

import (
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/yohamta/donburi"
)

// ApplyStun replaces any running stun with d seconds and disables attacking.
func ApplyStun(e *donburi.Entry, d float64) {
	if !e.HasComponent(components.Stun) {
		return
	}
	components.Stun.Get(e).Remaining = d
	ChangeState(e, cfg.Stunned)
	setCanAttack(e, false)
}

// IsStunned reports whether e has stun time left.
func IsStunned(e *donburi.Entry) bool {
	return e.HasComponent(components.Stun) && components.Stun.Get(e).Remaining > 0
}

// UpdateStun decays every stun timer by dt. Actors whose stun runs out go
// back to Grounded and may attack again, unless an interrupt window is
// still holding attacking off.
func UpdateStun(w donburi.World, dt float64) {
	components.Stun.Each(w, func(e *donburi.Entry) {
		stun := components.Stun.Get(e)
		if stun.Remaining <= 0 {
			return
		}
		stun.Remaining -= dt
		if stun.Remaining > 1e-9 {
			return
		}
		stun.Remaining = 0
		ChangeState(e, cfg.Grounded)
		if e.HasComponent(components.Combat) && components.Combat.Get(e).InterruptPending {
			return
		}
		setCanAttack(e, true)
	})
}

func setCanAttack(e *donburi.Entry, v bool) {
	if e.HasComponent(components.Combat) {
		components.Combat.Get(e).CanAttack = v
	}
	if a := animatorOf(e); a != nil {
		a.SetBool(cfg.Anim.CanAttack, v)
	}
}

func animatorOf(e *donburi.Entry) components.Animator {
	if !e.Valid() || !e.HasComponent(components.Animation) {
		return nil
	}
	return components.Animation.Get(e).Animator
}
