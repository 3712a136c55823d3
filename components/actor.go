package components

import (
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ActorData struct {
	Name     string
	Index    int
	Team     string
	Facing   float64 // +1 right, -1 left
	Rotation float64 // radians, visual only
	Spawn    gamemath.Vec
}

var Actor = donburi.NewComponentType[ActorData]()
