// Package scenes wires combat worlds into ebiten.
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is what the game loop drives.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)
