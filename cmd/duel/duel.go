package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/input"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/shared/arenadata"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/systems"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// duel is one scripted fight.
type duel struct {
	Arena    *arenadata.Arena
	Catalog  *attackdata.Catalog
	Scripts  map[int]*input.Script
	Mode     attackdata.Mode
	Seed     int64
	Duration float64 // seconds; 0 runs until every script is done plus Tail
	Tail     float64
}

// fighterResult is the end state of one fighter.
type fighterResult struct {
	Index      int
	Name       string
	Team       string
	Vitality   float64
	HitsLanded int
	HitsTaken  int
}

type result struct {
	Ticks    int
	Hits     []components.HitEvent
	Fighters []fighterResult
}

func (d duel) run() (*result, error) {
	w := factory.NewWorld(d.Seed, d.Arena.Width, d.Arena.Height)
	fighters, err := systems.SpawnArena(w, d.Arena, systems.ArenaOptions{
		Catalog: d.Catalog,
		Mode:    d.Mode,
		Input: func(sp arenadata.Spawn) components.InputSource {
			if s, ok := d.Scripts[sp.Index]; ok {
				return s
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	res := &result{}
	components.HitEvents.Subscribe(w, func(w donburi.World, ev components.HitEvent) {
		res.Hits = append(res.Hits, ev)
		logger.Log.WithFields(logrus.Fields{
			"t":        fmt.Sprintf("%.3f", ev.At),
			"attacker": nameOf(w, ev.Attacker),
			"target":   nameOf(w, ev.Target),
			"variant":  ev.Variant,
			"damage":   ev.Damage,
			"outcome":  ev.Outcome,
		}).Info("hit")
	})

	dt := 1 / float64(cfg.C.TickRate)
	limit := int(math.Round(d.Duration / dt))
	tail := int(math.Round(d.Tail / dt))
	for {
		systems.Step(w, dt)
		res.Ticks++
		if limit > 0 {
			if res.Ticks >= limit {
				break
			}
			continue
		}
		if d.scriptsDone() {
			if tail <= 0 {
				break
			}
			tail--
		}
	}

	for _, e := range fighters {
		if !e.Valid() {
			continue
		}
		actor := components.Actor.Get(e)
		cd := components.Combat.Get(e)
		res.Fighters = append(res.Fighters, fighterResult{
			Index:      actor.Index,
			Name:       actor.Name,
			Team:       actor.Team,
			Vitality:   components.Vitality.Get(e).Current,
			HitsLanded: cd.HitsLanded,
			HitsTaken:  cd.HitsTaken,
		})
	}
	sort.Slice(res.Fighters, func(i, j int) bool { return res.Fighters[i].Index < res.Fighters[j].Index })
	return res, nil
}

func (d duel) scriptsDone() bool {
	for _, s := range d.Scripts {
		if !s.Done() {
			return false
		}
	}
	return true
}

func nameOf(w donburi.World, e donburi.Entity) string {
	if !w.Valid(e) {
		return "?"
	}
	return components.Actor.Get(w.Entry(e)).Name
}
