package factory

import (
	"math/rand"

	"github.com/automoto/pillbrawl/archetypes"
	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CellSize is the resolv broad-phase cell edge in pixels.
const CellSize = 16

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateClock adds the simulation clock and the seeded random source every
// system of the world shares.
func CreateClock(w donburi.World, seed int64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{Clock: &sequence.Clock{}})
	components.Random.SetValue(clock, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	return clock
}

// NewWorld returns a world holding the clock and a space of the given pixel
// size.
func NewWorld(seed int64, width, height int) donburi.World {
	w := donburi.NewWorld()
	CreateClock(w, seed)
	CreateSpace(w, width, height, CellSize, CellSize)
	return w
}
