package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/pillbrawl/assets"
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/keyboard"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/render"
	"github.com/automoto/pillbrawl/settings"
	"github.com/automoto/pillbrawl/shared/arenadata"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/systems"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaConfig is everything an arena scene needs from the command line.
type ArenaConfig struct {
	Arena *arenadata.Arena
	// Arenas, when set, lets Tab switch to the next embedded arena.
	Arenas  *assets.ArenaLoader
	Catalog *attackdata.Catalog
	// Watcher, when set, swaps in reloaded catalogues and restarts the round.
	Watcher *attackdata.Watcher
	Store   *settings.Store
	Seed    int64
}

// ArenaScene runs one arena with keyboard-driven fighters and the debug
// renderer.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	config       ArenaConfig
	settings     settings.Settings
	paused       bool
	round        int
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, config ArenaConfig) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, config: config}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.pollCatalog()
	as.handleHotkeys()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.ecs == nil {
		return
	}
	as.ecs.DrawLayer(layerWorld, screen)
	as.ecs.DrawLayer(layerOverlay, screen)
}

func (as *ArenaScene) configure() {
	s, err := as.config.Store.Load()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings, using defaults")
	}
	as.settings = s
	as.restart()
}

// restart builds a fresh world for the arena with the current catalogue
// and settings.
func (as *ArenaScene) restart() {
	a := as.config.Arena
	as.round++
	world := factory.NewWorld(as.config.Seed+int64(as.round), a.Width, a.Height)

	e := ecs.NewECS(world)
	e.AddSystem(as.step)
	e.AddRenderer(layerWorld, as.drawWorld)
	e.AddRenderer(layerOverlay, as.drawOverlay)

	_, err := systems.SpawnArena(world, a, systems.ArenaOptions{
		Catalog: as.config.Catalog,
		Mode:    as.settings.Mode(),
		Input:   as.inputFor,
	})
	if err != nil {
		panic(fmt.Sprintf("spawn arena %s: %v", a.Name, err))
	}
	components.HitEvents.Subscribe(world, logHit)

	as.ecs = e
	logger.Log.WithFields(logrus.Fields{
		"arena": a.Name,
		"round": as.round,
		"mode":  as.settings.Mode(),
	}).Info("round started")
}

func (as *ArenaScene) inputFor(sp arenadata.Spawn) components.InputSource {
	switch sp.Controller {
	case arenadata.ControllerPlayer1:
		return keyboard.NewSource(as.settings.Schemes[0])
	case arenadata.ControllerPlayer2:
		return keyboard.NewSource(as.settings.Schemes[1])
	}
	return nil
}

func (as *ArenaScene) step(e *ecs.ECS) {
	if as.paused {
		return
	}
	systems.Step(e.World, 1/float64(cfg.C.TickRate))
}

func (as *ArenaScene) handleHotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		as.paused = !as.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		as.settings.DrawHitboxes = !as.settings.DrawHitboxes
		as.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		as.settings.DrawState = !as.settings.DrawState
		as.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		as.settings.ToggleDifficulty()
		as.save()
		as.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		as.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		as.nextArena()
	}
}

// nextArena hands the game a new scene on the arena after this one.
func (as *ArenaScene) nextArena() {
	if as.config.Arenas == nil || as.sceneChanger == nil {
		return
	}
	names, err := as.config.Arenas.LoadArenas()
	if err != nil {
		logger.Log.WithError(err).Warn("could not list arenas")
		return
	}
	next := names[0]
	for i, n := range names {
		if n == as.config.Arena.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	config := as.config
	config.Arena = as.config.Arenas.MustLoadArena(next)
	as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, config))
}

func (as *ArenaScene) save() {
	if err := as.config.Store.Save(as.settings); err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
	}
}

// pollCatalog applies catalogue reloads without blocking the frame.
func (as *ArenaScene) pollCatalog() {
	w := as.config.Watcher
	if w == nil {
		return
	}
	select {
	case cat, ok := <-w.Changed:
		if !ok {
			return
		}
		as.config.Catalog = cat
		logger.Log.WithField("attacks", len(cat.IDs())).Info("attack catalogue reloaded")
		as.restart()
	case err, ok := <-w.Errors:
		if ok {
			logger.Log.WithError(err).Error("attack catalogue reload failed, keeping the old one")
		}
	default:
	}
}

func (as *ArenaScene) drawWorld(e *ecs.ECS, screen *ebiten.Image) {
	render.Draw(e.World, screen, render.Options{
		Hitboxes: as.settings.DrawHitboxes,
		State:    as.settings.DrawState,
	})
}

func (as *ArenaScene) drawOverlay(_ *ecs.ECS, screen *ebiten.Image) {
	status := fmt.Sprintf("%s  %s  round %d", as.config.Arena.Name, as.settings.Difficulty, as.round)
	if as.paused {
		status += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
	ebitenutil.DebugPrintAt(screen, "F1 hitboxes  F2 state  F3 difficulty  F5 restart  Tab arena  P pause", 4, cfg.C.Height-16)
}

func logHit(w donburi.World, ev components.HitEvent) {
	logger.Log.WithFields(logrus.Fields{
		"attacker": ev.Attacker,
		"target":   ev.Target,
		"variant":  ev.Variant,
		"damage":   ev.Damage,
		"outcome":  ev.Outcome,
	}).Info("hit")
}
