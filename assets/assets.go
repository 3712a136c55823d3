// Package assets embeds the arena maps shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/pillbrawl/shared/arenadata"
)

const arenaDir = "arenas"

//go:embed arenas/*.tmx
var arenaFS embed.FS

// FS returns the embedded asset tree.
func FS() fs.FS { return arenaFS }

// ArenaLoader loads arenas from the embedded maps and caches them by name.
type ArenaLoader struct {
	arenas map[string]*arenadata.Arena
	names  []string
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

// LoadArenas parses every embedded arena once.
func (l *ArenaLoader) LoadArenas() ([]string, error) {
	if l.arenas != nil {
		return l.names, nil
	}
	arenas, names, err := arenadata.LoadAll(arenaFS, arenaDir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	l.arenas, l.names = arenas, names
	return names, nil
}

// Arena returns the named arena.
func (l *ArenaLoader) Arena(name string) (*arenadata.Arena, error) {
	if _, err := l.LoadArenas(); err != nil {
		return nil, err
	}
	a, ok := l.arenas[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown arena %q (have %v)", name, l.names)
	}
	return a, nil
}

// MustLoadArena is Arena for startup code that cannot run without it.
func (l *ArenaLoader) MustLoadArena(name string) *arenadata.Arena {
	a, err := l.Arena(name)
	if err != nil {
		panic(err)
	}
	return a
}
