package main

import (
	"flag"
	"image"

	"github.com/automoto/pillbrawl/assets"
	"github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/scenes"
	"github.com/automoto/pillbrawl/settings"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	arenaName := flag.String("arena", "training", "Arena to load (duel, training)")
	attacks := flag.String("attacks", "", "Attack catalogue YAML; reloaded on change (empty = built-in)")
	seed := flag.Int64("seed", 1, "Seed for knockback jitter")
	flag.Parse()

	logger.Init()

	arenas := assets.NewArenaLoader()
	arena, err := arenas.Arena(*arenaName)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load arena")
	}

	var watcher *attackdata.Watcher
	catalog, err := attackdata.Default()
	if *attacks != "" {
		catalog, err = attackdata.LoadFile(*attacks)
		if err == nil {
			watcher, err = attackdata.Watch(*attacks)
		}
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load attack catalogue")
	}
	if watcher != nil {
		defer watcher.Close()
	}

	store, err := settings.Open(config.Settings.AppName)
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
	}

	g := &Game{}
	g.scene = scenes.NewArenaScene(g, scenes.ArenaConfig{
		Arena:   arena,
		Arenas:  arenas,
		Catalog: catalog,
		Watcher: watcher,
		Store:   store,
		Seed:    *seed,
	})

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("pillbrawl")
	ebiten.SetTPS(config.C.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
