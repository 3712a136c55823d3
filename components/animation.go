package components

import "github.com/yohamta/donburi"

// Animator is the fire-and-forget cue sink of an actor. Only GetBool is ever
// read back by combat.
type Animator interface {
	SetTrigger(name string)
	SetBool(name string, v bool)
	SetInt(name string, v int)
	GetBool(name string) bool
}

// AnimatorUpdater is implemented by animators that play clips over time.
type AnimatorUpdater interface {
	Update(dt float64)
}

type AnimationData struct {
	Animator Animator
}

var Animation = donburi.NewComponentType[AnimationData]()
