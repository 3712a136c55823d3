package systems

import (
	"testing"

	"github.com/automoto/pillbrawl/animation"
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/input"
	"github.com/automoto/pillbrawl/shared/arenadata"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func duelArena() *arenadata.Arena {
	full := map[cfg.ActionID]string{
		cfg.ActionAttack: "punch",
		cfg.ActionHeavy:  "heavy",
		cfg.ActionDash:   "dash",
	}
	return &arenadata.Arena{
		Name:       "test",
		Width:      640,
		Height:     360,
		SolidRects: []arenadata.SolidRect{{X: 0, Y: floorY, W: 640, H: 32}},
		Spawns: []arenadata.Spawn{
			{X: 100, Y: floorY - cfg.Actor.Height, Facing: 1, Team: "red", Controller: arenadata.ControllerPlayer1, Loadout: full},
			{X: 120, Y: floorY - cfg.Actor.Height, Facing: -1, Index: 1, Team: "blue", Controller: arenadata.ControllerDummy, Loadout: full},
		},
	}
}

func TestSpawnArenaBuildsFighters(t *testing.T) {
	cat, err := attackdata.Default()
	require.NoError(t, err)
	w := factory.NewWorld(1, 640, 360)

	fighters, err := SpawnArena(w, duelArena(), ArenaOptions{Catalog: cat, Mode: attackdata.ModeHard})
	require.NoError(t, err)
	require.Len(t, fighters, 2)

	p1, dummy := fighters[0], fighters[1]
	assert.False(t, p1.HasComponent(components.Dummy))
	assert.True(t, dummy.HasComponent(components.Dummy))
	assert.Equal(t, "red", components.Actor.Get(p1).Team)

	cd := components.Combat.Get(p1)
	assert.Len(t, cd.Loadout, 3)
	assert.True(t, cd.Loadout["heavy"].Hard())
	assert.Equal(t, "punch", cd.Bindings[cfg.ActionAttack])

	_, ok := components.Animation.Get(p1).Animator.(*animation.Timeline)
	assert.True(t, ok)
}

func TestSpawnArenaRejectsUnknownAttack(t *testing.T) {
	cat, err := attackdata.Default()
	require.NoError(t, err)
	a := duelArena()
	a.Spawns[1].Loadout = map[cfg.ActionID]string{cfg.ActionAttack: "fireball"}

	_, err = SpawnArena(factory.NewWorld(1, 640, 360), a, ArenaOptions{Catalog: cat})
	assert.ErrorIs(t, err, factory.ErrUnknownAttack)

	_, err = SpawnArena(factory.NewWorld(1, 640, 360), a, ArenaOptions{})
	assert.Error(t, err)
}

// A pressed attack runs through the clip timeline: the punch clip's event
// opens the first hit, which lands on the dummy.
func TestArenaPunchLandsThroughClipEvents(t *testing.T) {
	cat, err := attackdata.Default()
	require.NoError(t, err)
	w := factory.NewWorld(1, 640, 360)

	pad := input.NewState()
	fighters, err := SpawnArena(w, duelArena(), ArenaOptions{
		Catalog: cat,
		Input: func(sp arenadata.Spawn) components.InputSource {
			if sp.Controller == arenadata.ControllerPlayer1 {
				return pad
			}
			return nil
		},
	})
	require.NoError(t, err)
	p1, dummy := fighters[0], fighters[1]

	var hits []components.HitEvent
	components.HitEvents.Subscribe(w, func(_ donburi.World, ev components.HitEvent) {
		hits = append(hits, ev)
	})

	stepFor(w, 0.1)
	pad.Press(cfg.ActionAttack)
	Step(w, dt)
	pad.Release(cfg.ActionAttack)
	require.True(t, IsAttacking(p1))

	stepFor(w, 0.3)
	require.Len(t, hits, 1)
	assert.Equal(t, "punch", hits[0].Variant)
	assert.Equal(t, 1, components.Combat.Get(p1).Runtime["punch"].HitCount)
	assert.Equal(t, cfg.Actor.MaxVitality-10, components.Vitality.Get(dummy).Current)
	assert.True(t, IsStunned(dummy))
}
