package components

import "github.com/yohamta/donburi"

// DummyData drives a training fighter that walks back to its spawn after
// being knocked away.
type DummyData struct {
	AwayFor   float64 // seconds spent recovered but away from home
	Returning bool
}

var Dummy = donburi.NewComponentType[DummyData]()
