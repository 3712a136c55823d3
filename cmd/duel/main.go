// Command duel plays a scripted fight headlessly and prints the combat log.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/automoto/pillbrawl/assets"
	"github.com/automoto/pillbrawl/input"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/shared/arenadata"
	"github.com/automoto/pillbrawl/shared/attackdata"
)

//go:embed scripts/exchange.yaml
var defaultScript []byte

func main() {
	arenaName := flag.String("arena", "duel", "Embedded arena name")
	tmx := flag.String("tmx", "", "Arena TMX file, relative to the working directory, to load instead of an embedded arena")
	attacks := flag.String("attacks", "", "Attack catalogue YAML (empty = built-in)")
	scriptPath := flag.String("script", "", "Input script YAML (empty = built-in exchange)")
	mode := flag.String("mode", "", "Force every attack to easy or hard")
	seed := flag.Int64("seed", 1, "Seed for knockback jitter")
	duration := flag.Float64("duration", 0, "Seconds to simulate (0 = until the script ends)")
	flag.Parse()

	logger.Init()

	if err := run(*arenaName, *tmx, *attacks, *scriptPath, attackdata.Mode(*mode), *seed, *duration); err != nil {
		logger.Log.WithError(err).Fatal("duel failed")
	}
}

func run(arenaName, tmx, attacks, scriptPath string, mode attackdata.Mode, seed int64, duration float64) error {
	var (
		arena *arenadata.Arena
		err   error
	)
	if tmx != "" {
		arena, err = arenadata.Load(os.DirFS("."), tmx)
	} else {
		arena, err = assets.NewArenaLoader().Arena(arenaName)
	}
	if err != nil {
		return err
	}

	catalog, err := attackdata.Default()
	if attacks != "" {
		catalog, err = attackdata.LoadFile(attacks)
	}
	if err != nil {
		return err
	}

	switch mode {
	case "", attackdata.ModeEasy, attackdata.ModeHard:
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	script := defaultScript
	if scriptPath != "" {
		if script, err = os.ReadFile(scriptPath); err != nil {
			return fmt.Errorf("read script: %w", err)
		}
	}
	scripts, err := input.ParseScripts(script)
	if err != nil {
		return err
	}

	res, err := duel{
		Arena:    arena,
		Catalog:  catalog,
		Scripts:  scripts,
		Mode:     mode,
		Seed:     seed,
		Duration: duration,
		Tail:     1,
	}.run()
	if err != nil {
		return err
	}

	fmt.Printf("%d ticks, %d hits\n", res.Ticks, len(res.Hits))
	for _, f := range res.Fighters {
		fmt.Printf("  %-8s %-5s vitality %5.1f  landed %d  taken %d\n",
			f.Name, f.Team, f.Vitality, f.HitsLanded, f.HitsTaken)
	}
	return nil
}
