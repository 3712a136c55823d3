package systems

import (
	"testing"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// holdHeavy presses heavy, keeps it held for hold seconds, then lets go.
func holdHeavy(t *testing.T, w donburi.World, f fighter, hold float64) *components.AttackRuntime {
	t.Helper()
	f.in.held[cfg.ActionHeavy] = true
	require.True(t, StartAttack(f.entry, "heavy"))
	assert.True(t, f.combat().IsHeavy)
	assert.True(t, f.combat().CanTank)
	assert.True(t, f.anim.GetBool(cfg.Anim.IsHeavy))
	assert.Equal(t, 1, f.anim.TriggerCount("heavyWindup"))

	stepFor(w, hold)
	f.in.held[cfg.ActionHeavy] = false
	return f.run("heavy")
}

func TestHeavyHardEarlyReleaseFiresExitCue(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, heavySpec(attackdata.ModeHard))
	run := holdHeavy(t, w, f, 0.2)

	stepFor(w, 0.4)
	assert.Equal(t, 1, f.anim.TriggerCount("heavyExit"))
	assert.Zero(t, f.anim.TriggerCount("heavyAttack"))
	assert.Less(t, run.Charge, 0.5)
	assert.False(t, IsAttacking(f.entry), "cleared promptly")
	assert.True(t, IsOnCooldown(f.entry, "heavy"))
	assert.False(t, f.combat().IsHeavy)
	assert.False(t, f.anim.GetBool(cfg.Anim.IsHeavy))
	assert.Zero(t, countHitboxes(w, f.entry))

	stepFor(w, 1)
	assert.False(t, IsOnCooldown(f.entry, "heavy"))
}

func TestHeavyEasyEarlyReleaseStillAttacks(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, heavySpec(attackdata.ModeEasy))
	run := holdHeavy(t, w, f, 0.2)

	stepFor(w, 0.35)
	assert.Equal(t, 1, f.anim.TriggerCount("heavyAttack"))
	assert.Zero(t, f.anim.TriggerCount("heavyExit"))

	boxes := hitboxesOf(w, f.entry)
	require.Len(t, boxes, 1)
	want := HeavyKnockback(run.Charge, 80, 320, 3)
	assert.InDelta(t, want, boxes[0].Knockback.X, 1e-9)
}

func TestHeavyHardValidRelease(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, heavySpec(attackdata.ModeHard))
	run := holdHeavy(t, w, f, 1)

	Step(w, dt)
	assert.Equal(t, 1, f.anim.TriggerCount("heavyAttack"))
	assert.InDelta(t, 1, run.Charge, 2*dt)
	assert.False(t, IsAttacking(f.entry))
}

func TestHeavyChargeClampedAtMaxHold(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, heavySpec(attackdata.ModeEasy))
	run := holdHeavy(t, w, f, 5)

	assert.InDelta(t, 3, run.Charge, 1e-9)
	assert.Equal(t, 1, f.anim.TriggerCount("heavyAttack"))
	assert.InDelta(t, 320, HeavyKnockback(run.Charge, 80, 320, 3), 1e-6)
}

func TestHeavyHardHeldPastMaxHoldFails(t *testing.T) {
	w := newTestWorld(t)
	f := spawnFighter(t, w, "p1", 100, 1, heavySpec(attackdata.ModeHard))
	holdHeavy(t, w, f, 3.2)

	assert.Equal(t, 1, f.anim.TriggerCount("heavyExit"))
	assert.Zero(t, f.anim.TriggerCount("heavyAttack"))
}

func TestHeavyTanksOneHit(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)
	target := spawnFighter(t, w, "p2", 120, -1, heavySpec(attackdata.ModeEasy))
	target.in.held[cfg.ActionHeavy] = true
	require.True(t, StartAttack(target.entry, "heavy"))

	var seen []components.HitEvent
	components.HitEvents.Subscribe(w, func(_ donburi.World, ev components.HitEvent) {
		seen = append(seen, ev)
	})

	params := HitboxParams{
		Size:      gamemath.Vec{X: 16, Y: 12},
		Offset:    gamemath.Vec{X: 14},
		Knockback: gamemath.Vec{X: 80},
		Stun:      0.5,
		Damage:    10,
		Lifetime:  0.1,
		Variant:   "punch",
	}
	ArmHitbox(w, attacker.entry, params)
	Step(w, dt)

	require.Len(t, seen, 1)
	assert.Equal(t, components.HitTanked, seen[0].Outcome)
	assert.Equal(t, cfg.Actor.MaxVitality, components.Vitality.Get(target.entry).Current)
	assert.False(t, target.combat().CanTank)
	assert.True(t, IsAttacking(target.entry))

	ArmHitbox(w, attacker.entry, params)
	Step(w, dt)

	require.Len(t, seen, 2)
	assert.Equal(t, components.HitInterrupted, seen[1].Outcome)
	assert.Equal(t, cfg.Actor.MaxVitality-10, components.Vitality.Get(target.entry).Current)
	assert.False(t, IsAttacking(target.entry))
	assert.Equal(t, 1, target.anim.TriggerCount(cfg.Anim.Hit))

	Step(w, dt)
	assert.Equal(t, 1, target.anim.TriggerCount("heavyExit"))
	assert.Equal(t, 1, attacker.combat().HitsLanded)
	assert.Equal(t, 1, target.combat().HitsTaken)
}
