package systems

import (
	"fmt"

	"github.com/automoto/pillbrawl/animation"
	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/input"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/shared/arenadata"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// ArenaOptions configures SpawnArena.
type ArenaOptions struct {
	Catalog *attackdata.Catalog
	// Mode overrides the mode of every attack when set.
	Mode attackdata.Mode
	// Input returns the source driving a spawn. Nil, or a nil result, gives
	// the fighter an idle input state.
	Input func(sp arenadata.Spawn) components.InputSource
}

// SpawnArena adds an arena's solids and one fighter per spawn, in spawn
// order. Each fighter plays clips from the catalogue and routes their events
// back into combat.
func SpawnArena(w donburi.World, a *arenadata.Arena, opts ArenaOptions) ([]*donburi.Entry, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("arena %s: no attack catalogue", a.Name)
	}
	for _, r := range a.SolidRects {
		factory.CreateSolid(w, r.X, r.Y, r.W, r.H)
	}

	fighters := make([]*donburi.Entry, 0, len(a.Spawns))
	for _, sp := range a.Spawns {
		loadout, bindings, err := factory.ResolveLoadout(opts.Catalog, sp.Loadout, opts.Mode)
		if err != nil {
			return nil, fmt.Errorf("arena %s: spawn %d: %w", a.Name, sp.Index, err)
		}

		var source components.InputSource
		if opts.Input != nil {
			source = opts.Input(sp)
		}
		if source == nil {
			source = input.NewState()
		}

		timeline := animation.NewTimeline(opts.Catalog, nil)
		dummy := sp.Controller == arenadata.ControllerDummy
		e := factory.CreateFighter(w, factory.FighterParams{
			Name:     string(sp.Controller),
			Index:    sp.Index,
			Team:     sp.Team,
			X:        sp.X,
			Y:        sp.Y,
			Facing:   sp.Facing,
			Loadout:  loadout,
			Bindings: bindings,
			Animator: timeline,
			Input:    source,
			Dummy:    dummy,
		})
		timeline.SetEmitter(func(name string) { HandleAnimationEvent(e, name) })
		if dummy {
			WatchDummy(e)
		}
		fighters = append(fighters, e)

		logger.Log.WithFields(logrus.Fields{
			"arena":   a.Name,
			"fighter": sp.Controller,
			"team":    sp.Team,
			"attacks": len(loadout),
		}).Info("fighter spawned")
	}
	return fighters, nil
}
