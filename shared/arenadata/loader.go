package arenadata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/pillbrawl/config"
	"github.com/lafriks/go-tiled"
)

// ErrNoSpawns is returned for arenas without a single fighter spawn.
var ErrNoSpawns = errors.New("arena has no spawns")

const (
	spawnGroup = "Spawns"
	solidGroup = "Solids"
)

// Load parses a TMX arena. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case spawnGroup:
			for _, o := range og.Objects {
				sp, err := parseSpawn(o)
				if err != nil {
					return nil, fmt.Errorf("%s: spawn %d: %w", tmxPath, o.ID, err)
				}
				arena.Spawns = append(arena.Spawns, sp)
			}
		case solidGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.SolidRects = append(arena.SolidRects, SolidRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawns)
	}

	// Spawn index decides player order, ties go left-to-right.
	sort.SliceStable(arena.Spawns, func(i, j int) bool {
		a, b := arena.Spawns[i], arena.Spawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return arena, nil
}

// LoadAll loads every .tmx in dir, keyed by stem name, plus the sorted names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return arenas, names, nil
}

func parseSpawn(o *tiled.Object) (Spawn, error) {
	sp := Spawn{
		X:          o.X,
		Y:          o.Y,
		Index:      o.Properties.GetInt("index"),
		Team:       o.Properties.GetString("team"),
		Facing:     1,
		Controller: Controller(o.Properties.GetString("controller")),
	}
	if o.Properties.GetInt("facing") < 0 {
		sp.Facing = -1
	}
	if sp.Controller == "" {
		sp.Controller = ControllerDummy
	}

	loadout, err := ParseLoadout(o.Properties.GetString("loadout"))
	if err != nil {
		return Spawn{}, err
	}
	sp.Loadout = loadout
	return sp, nil
}

// ParseLoadout reads "action:attack" pairs separated by spaces or commas,
// e.g. "attack:punch heavy:heavy dash:dash".
func ParseLoadout(s string) (map[config.ActionID]string, error) {
	out := make(map[config.ActionID]string)
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	for _, f := range fields {
		name, id, ok := strings.Cut(f, ":")
		if !ok || id == "" {
			return nil, fmt.Errorf("bad loadout entry %q", f)
		}
		action, ok := config.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q in loadout", name)
		}
		out[action] = id
	}
	return out, nil
}
