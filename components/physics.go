package components

import (
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity     gamemath.Vec
	Drag         float64 // fraction of horizontal speed lost per second
	GravityScale float64
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
