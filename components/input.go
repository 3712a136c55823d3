package components

import (
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputSource answers per-actor input queries for the current tick.
type InputSource interface {
	WasPressed(a cfg.ActionID) bool
	IsHeld(a cfg.ActionID) bool
	WasReleased(a cfg.ActionID) bool
	Read(a cfg.ActionID) gamemath.Vec
}

// InputPoller is implemented by sources that refresh once per tick, before
// any system reads them.
type InputPoller interface {
	Poll(now float64)
}

type InputData struct {
	Source InputSource
}

var Input = donburi.NewComponentType[InputData]()
