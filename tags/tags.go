package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
	Solid   = donburi.NewTag().SetName("Solid")
)

// Resolv tags for collision queries
const (
	ResolvSolid   = "solid"
	ResolvFighter = "fighter"
	ResolvHitbox  = "hitbox"
)
