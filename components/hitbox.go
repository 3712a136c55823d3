package components

import (
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner        donburi.Entity // never hit, position source
	Variant      string
	Offset       gamemath.Vec // from the owner's centre
	Knockback    gamemath.Vec
	Stun         float64
	Damage       float64
	TargetTag    string
	Lifetime     float64 // 0 means no scheduled expiry
	Remaining    float64
	Angle        float64 // radians, for drawing diagonal volumes
	HasHit       bool
	DestroyOnHit bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
