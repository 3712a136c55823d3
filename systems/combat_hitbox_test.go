package systems

import (
	"testing"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func jab() HitboxParams {
	return HitboxParams{
		Size:      gamemath.Vec{X: 16, Y: 12},
		Offset:    gamemath.Vec{X: 14},
		Knockback: gamemath.Vec{X: 60},
		Stun:      0.2,
		Damage:    5,
		Lifetime:  0.5,
		Variant:   "jab",
	}
}

func TestHitboxHitsOnceAndNeverItsOwner(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)
	target := spawnFighter(t, w, "p2", 120, -1)

	var seen []components.HitEvent
	components.HitEvents.Subscribe(w, func(_ donburi.World, ev components.HitEvent) {
		seen = append(seen, ev)
	})

	ArmHitbox(w, attacker.entry, jab())
	stepFor(w, 0.3)

	require.Len(t, seen, 1)
	ev := seen[0]
	assert.Equal(t, attacker.entry.Entity(), ev.Attacker)
	assert.Equal(t, target.entry.Entity(), ev.Target)
	assert.Equal(t, components.HitApplied, ev.Outcome)
	assert.Equal(t, "jab", ev.Variant)

	assert.Equal(t, cfg.Actor.MaxVitality, components.Vitality.Get(attacker.entry).Current)
	assert.Equal(t, cfg.Actor.MaxVitality-5, components.Vitality.Get(target.entry).Current)
	assert.Equal(t, 1, target.anim.TriggerCount(cfg.Anim.Hit))
	assert.Equal(t, 1, countHitboxes(w, attacker.entry), "spent volumes stay until expiry")
}

func TestHitboxDestroyedOnHit(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)
	spawnFighter(t, w, "p2", 120, -1)

	p := jab()
	p.DestroyOnHit = true
	ArmHitbox(w, attacker.entry, p)
	Step(w, dt)

	assert.Zero(t, countHitboxes(w, attacker.entry))
}

func TestHitboxExpiresAfterGrace(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)

	ArmHitbox(w, attacker.entry, jab())
	stepFor(w, 0.5)
	assert.Equal(t, 1, countHitboxes(w, attacker.entry))

	stepFor(w, cfg.Combat.HitboxDespawnGrace+2*dt)
	assert.Zero(t, countHitboxes(w, attacker.entry))
}

func TestHitboxMissesOutOfReach(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)
	target := spawnFighter(t, w, "p2", 300, -1)

	ArmHitbox(w, attacker.entry, jab())
	stepFor(w, 0.2)

	assert.Equal(t, cfg.Actor.MaxVitality, components.Vitality.Get(target.entry).Current)
	assert.Zero(t, components.Combat.Get(attacker.entry).HitsLanded)
}

func TestHitboxFollowsOwner(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)
	h := ArmHitbox(w, attacker.entry, jab())

	components.Object.Get(attacker.entry).X = 160
	Step(w, dt)

	centre := components.Object.Get(h).Center()
	owner := components.Object.Get(attacker.entry).Center()
	assert.InDelta(t, owner.X+14, centre.X, 1e-9)
	assert.InDelta(t, owner.Y, centre.Y, 1e-9)
}

func TestHitboxDroppedWithOwner(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnFighter(t, w, "p1", 100, 1)
	h := ArmHitbox(w, attacker.entry, jab())

	w.Remove(attacker.entry.Entity())
	Step(w, dt)
	assert.False(t, h.Valid())
}
