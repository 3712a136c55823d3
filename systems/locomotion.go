package systems

import (
	"math"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/tags"
	"github.com/yohamta/donburi"
)

// jumpSpeed is the launch speed of a jump, px/s.
const jumpSpeed = 320

// UpdateLocomotion walks and jumps fighters from their move input. Fighters
// that are attacking, stunned, dashing or being hit keep their velocity.
func UpdateLocomotion(w donburi.World) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Dummy) {
			return
		}
		source := components.Input.Get(e).Source
		if source == nil || IsStunned(e) || IsAttacking(e) {
			return
		}
		switch CurrentState(e) {
		case cfg.Dashing, cfg.GettingHit:
			return
		}

		physics := components.Physics.Get(e)
		actor := components.Actor.Get(e)
		move := source.Read(cfg.ActionMove)

		if math.Abs(move.X) > cfg.Combat.DirectionDeadzone {
			physics.Velocity.X = math.Copysign(cfg.Actor.WalkSpeed, move.X)
			actor.Facing = math.Copysign(1, move.X)
		}
		if physics.OnGround && source.WasPressed(cfg.ActionJump) {
			physics.Velocity.Y = -jumpSpeed
			physics.OnGround = false
			ChangeState(e, cfg.Jumping)
		}
	})
}
