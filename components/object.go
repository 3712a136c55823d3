package components

import (
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision body of an entity in the resolv space.
type ObjectData struct {
	*resolv.Object
}

func (o ObjectData) Center() gamemath.Vec {
	return gamemath.Vec{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MoveCenter places the body so its centre is at c.
func (o ObjectData) MoveCenter(c gamemath.Vec) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
