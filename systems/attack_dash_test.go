package systems

import (
	"testing"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct{ from, to cfg.EntityState }

func recordStates(f fighter) *[]transition {
	var seen []transition
	OnStateChanged(f.entry, func(from, to cfg.EntityState) {
		seen = append(seen, transition{from, to})
	})
	return &seen
}

func TestDashMoveRestoresPhysics(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, dashSpec(attackdata.KindDashMove))
	seen := recordStates(f)
	startX := components.Object.Get(f.entry).X

	require.True(t, StartAttack(f.entry, "dash"))
	physics := components.Physics.Get(f.entry)
	assert.Equal(t, cfg.Dashing, CurrentState(f.entry))
	assert.Equal(t, 0.5, physics.Drag)
	assert.Zero(t, physics.GravityScale)
	assert.InDelta(t, 240, physics.Velocity.X, 1e-9)
	assert.Zero(t, f.anim.TriggerCount("dashJump"))

	stepFor(w, 0.4)
	assert.Contains(t, *seen, transition{cfg.Dashing, cfg.Grounded})
	assert.Equal(t, cfg.Physics.DefaultDrag, physics.Drag)
	assert.Equal(t, 1.0, physics.GravityScale)
	assert.Greater(t, components.Object.Get(f.entry).X, startX)
	assert.False(t, IsAttacking(f.entry))
	assert.True(t, IsOnCooldown(f.entry, "dash"))
	assert.Zero(t, countHitboxes(w, f.entry))

	stepFor(w, 0.5)
	assert.False(t, IsOnCooldown(f.entry, "dash"))
}

func TestDashAttackCarriesHitbox(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, -1, dashSpec(attackdata.KindDashAttack))
	seen := recordStates(f)

	require.True(t, StartAttack(f.entry, "dash_slash"))
	assert.InDelta(t, -240, components.Physics.Get(f.entry).Velocity.X, 1e-9)
	assert.Zero(t, countHitboxes(w, f.entry), "armed after the start delay")

	stepFor(w, 0.1)
	boxes := hitboxesOf(w, f.entry)
	require.Len(t, boxes, 1)
	assert.Equal(t, gamemath.Vec{X: -12}, boxes[0].Offset)
	assert.InDelta(t, -128, boxes[0].Knockback.X, 1e-9)

	stepFor(w, 0.3)
	assert.Zero(t, countHitboxes(w, f.entry))
	assert.Contains(t, *seen, transition{cfg.Dashing, cfg.Moving})
}

func TestVerticalDashFiresJumpCue(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, dashSpec(attackdata.KindDashAttack))
	f.in.aim = gamemath.Vec{Y: -1}

	require.True(t, StartAttack(f.entry, "dash_slash"))
	physics := components.Physics.Get(f.entry)
	assert.Equal(t, 1, f.anim.TriggerCount("dashJump"))
	assert.InDelta(t, -240, physics.Velocity.Y, 1e-9)
	assert.False(t, physics.OnGround)
	assert.Equal(t, 1.0, components.Actor.Get(f.entry).Facing)

	stepFor(w, 0.1)
	boxes := hitboxesOf(w, f.entry)
	require.Len(t, boxes, 1)
	assert.Equal(t, gamemath.Vec{Y: -12}, boxes[0].Offset)
}

func TestInterruptedDashLeavesDashingState(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, dashSpec(attackdata.KindDashAttack))

	require.True(t, StartAttack(f.entry, "dash_slash"))
	stepFor(w, 0.1)
	InterruptAttack(f.entry)
	Step(w, dt)

	physics := components.Physics.Get(f.entry)
	assert.NotEqual(t, cfg.Dashing, CurrentState(f.entry))
	assert.Equal(t, cfg.Physics.DefaultDrag, physics.Drag)
	assert.Equal(t, 1.0, physics.GravityScale)
	assert.Zero(t, countHitboxes(w, f.entry))
}
