package config

// EntityState is the coarse life-cycle state of an actor.
type EntityState int

const (
	Moving EntityState = iota
	Jumping
	Stunned
	Grounded
	Dashing
	Sliding
	Falling
	Parrying
	GettingHit
)

var stateNames = map[EntityState]string{
	Moving:     "moving",
	Jumping:    "jumping",
	Stunned:    "stunned",
	Grounded:   "grounded",
	Dashing:    "dashing",
	Sliding:    "sliding",
	Falling:    "falling",
	Parrying:   "parrying",
	GettingHit: "getting_hit",
}

func (s EntityState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
