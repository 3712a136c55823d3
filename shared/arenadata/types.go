// Package arenadata parses TMX arena files shared by the client and the
// headless duel runner. It has no dependencies on ebitengine, donburi, or
// resolv.
package arenadata

import "github.com/automoto/pillbrawl/config"

// Arena holds everything combat needs from an arena map.
type Arena struct {
	Name       string
	Width      int
	Height     int
	Spawns     []Spawn
	SolidRects []SolidRect
}

// SolidRect is an axis-aligned solid surface.
type SolidRect struct {
	X, Y, W, H float64
}

// Controller says who drives a spawned fighter.
type Controller string

const (
	ControllerPlayer1 Controller = "player1"
	ControllerPlayer2 Controller = "player2"
	ControllerDummy   Controller = "dummy"
	ControllerScript  Controller = "script"
)

// Spawn is a fighter spawn point with its attack loadout.
type Spawn struct {
	X, Y       float64
	Index      int
	Team       string
	Facing     float64 // +1 right, -1 left
	Controller Controller
	// Loadout binds input actions to attack spec ids.
	Loadout map[config.ActionID]string
}
