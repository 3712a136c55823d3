package components

import (
	"math/rand"

	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv collision space singleton.
var Space = donburi.NewComponentType[resolv.Space]()

// ClockData is the simulation clock singleton every runner steps against.
type ClockData struct {
	*sequence.Clock
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData is the world's seeded random source.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
