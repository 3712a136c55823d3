package components

import (
	"github.com/automoto/pillbrawl/config"
	"github.com/yohamta/donburi"
)

// StateObserver is told about every committed state change.
type StateObserver func(old, next config.EntityState)

type StateData struct {
	Current   config.EntityState
	Previous  config.EntityState
	Observers []StateObserver
}

var State = donburi.NewComponentType[StateData]()

type StunData struct {
	Remaining float64 // seconds
}

var Stun = donburi.NewComponentType[StunData]()
