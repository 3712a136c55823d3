package systems

import (
	"math"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/yohamta/donburi"
)

// WatchDummy restarts the away timer of a training dummy each time it
// recovers from a hit or a stun.
func WatchDummy(e *donburi.Entry) {
	OnStateChanged(e, func(old, next cfg.EntityState) {
		if !knockedDown(old) || knockedDown(next) || !e.Valid() {
			return
		}
		d := components.Dummy.Get(e)
		d.AwayFor = 0
		d.Returning = false
	})
}

func knockedDown(s cfg.EntityState) bool {
	return s == cfg.Stunned || s == cfg.GettingHit
}

// UpdateDummies walks training dummies back to their spawn once they have
// spent DummyHomeDelay seconds recovered but away from it. The timer pauses
// while a dummy is down, airborne or busy.
func UpdateDummies(w donburi.World, dt float64) {
	components.Dummy.Each(w, func(e *donburi.Entry) {
		d := components.Dummy.Get(e)
		physics := components.Physics.Get(e)

		if IsStunned(e) || IsAttacking(e) || !physics.OnGround {
			return
		}
		switch CurrentState(e) {
		case cfg.Dashing, cfg.GettingHit:
			return
		}

		home := components.Actor.Get(e).Spawn
		dx := home.X - components.Object.Get(e).Center().X
		if math.Abs(dx) <= cfg.Actor.DummyHomeTolerance {
			if d.Returning {
				physics.Velocity.X = 0
			}
			d.AwayFor = 0
			d.Returning = false
			return
		}

		if !d.Returning {
			d.AwayFor += dt
			if d.AwayFor < cfg.Actor.DummyHomeDelay {
				return
			}
			d.Returning = true
			actorLog(e).Debug("dummy walking home")
		}
		speed := math.Min(cfg.Actor.WalkSpeed, math.Abs(dx)/dt)
		physics.Velocity.X = math.Copysign(speed, dx)
	})
}
