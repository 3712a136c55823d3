package components

import (
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HitOutcome says what a landed hit volume did to its target.
type HitOutcome int

const (
	HitApplied HitOutcome = iota
	HitTanked
	HitInterrupted // applied, and it broke the target's attack
)

func (o HitOutcome) String() string {
	switch o {
	case HitTanked:
		return "tanked"
	case HitInterrupted:
		return "interrupted"
	default:
		return "applied"
	}
}

// HitEvent is published once per delivered hit.
type HitEvent struct {
	At        float64
	Attacker  donburi.Entity
	Target    donburi.Entity
	Variant   string
	Damage    float64
	Knockback gamemath.Vec
	Stun      float64
	Outcome   HitOutcome
}

var HitEvents = events.NewEventType[HitEvent]()
