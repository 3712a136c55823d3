package systems

import (
	"math"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// restSpeed is the horizontal speed below which a fighter stops, px/s.
const restSpeed = 1

// UpdatePhysics integrates fighter velocity over dt: gravity scaled per
// actor, horizontal drag, then movement resolved against solids.
func UpdatePhysics(w donburi.World, dt float64) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object
		if obj == nil {
			return
		}

		physics.Velocity.X = gamemath.ApplyDrag(physics.Velocity.X, physics.Drag, dt)
		if math.Abs(physics.Velocity.X) < restSpeed {
			physics.Velocity.X = 0
		}
		physics.Velocity.Y += cfg.Physics.Gravity * physics.GravityScale * dt
		if physics.Velocity.Y > cfg.Physics.MaxFallSpeed {
			physics.Velocity.Y = cfg.Physics.MaxFallSpeed
		}

		moveHorizontal(physics, obj, physics.Velocity.X*dt)
		moveVertical(physics, obj, physics.Velocity.Y*dt)
		obj.Update()

		settleState(e, physics)
	})
}

// moveHorizontal moves obj by dx, stopping flush against the nearest solid
// in the way.
func moveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return
	}
	move := dx
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spansOverlap(obj.Y, obj.H, s.Y, s.H) {
			continue
		}
		if dx > 0 && s.X >= obj.X+obj.W/2 {
			if gap := s.X - (obj.X + obj.W); gap < move {
				move = gap
			}
		} else if dx < 0 && s.X+s.W <= obj.X+obj.W/2 {
			if gap := s.X + s.W - obj.X; gap > move {
				move = gap
			}
		}
	}
	if move != dx {
		physics.Velocity.X = 0
	}
	obj.X += move
}

// moveVertical moves obj by dy. Landing on a solid sets OnGround; hitting
// one from below stops the rise.
func moveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnGround = false

	probe := dy
	if dy >= 0 {
		probe++
	}
	check := obj.Check(0, probe, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}
	move, blocked := dy, false
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spansOverlap(obj.X, obj.W, s.X, s.W) {
			continue
		}
		if dy >= 0 && s.Y >= obj.Y+obj.H/2 {
			if gap := s.Y - (obj.Y + obj.H); gap <= move {
				move, blocked = gap, true
			}
		} else if dy < 0 && s.Y+s.H <= obj.Y+obj.H/2 {
			if gap := s.Y + s.H - obj.Y; gap >= move {
				move, blocked = gap, true
			}
		}
	}
	if blocked {
		physics.Velocity.Y = 0
		physics.OnGround = dy >= 0
	}
	obj.Y += move
}

func spansOverlap(a, aLen, b, bLen float64) bool {
	return a < b+bLen && b < a+aLen
}

// settleState moves fighters between the locomotion states. States owned by
// combat (dashing, stunned, being hit) are left alone while they apply.
func settleState(e *donburi.Entry, physics *components.PhysicsData) {
	switch CurrentState(e) {
	case cfg.Dashing, cfg.Stunned, cfg.Parrying, cfg.Sliding:
		return
	case cfg.GettingHit:
		if IsStunned(e) || !physics.OnGround {
			return
		}
	}

	switch {
	case physics.OnGround && physics.Velocity.X != 0:
		ChangeState(e, cfg.Moving)
	case physics.OnGround:
		ChangeState(e, cfg.Grounded)
	case physics.Velocity.Y < 0:
		ChangeState(e, cfg.Jumping)
	default:
		ChangeState(e, cfg.Falling)
	}
}
