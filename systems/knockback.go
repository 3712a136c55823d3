package systems

import (
	"math/rand"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ApplyKnockback sets the target's velocity to kb scaled by a random
// multiplier in [KnockbackJitterMin, KnockbackJitterMax].
func ApplyKnockback(w donburi.World, target *donburi.Entry, kb gamemath.Vec) {
	if !target.HasComponent(components.Physics) {
		return
	}
	physics := components.Physics.Get(target)
	physics.Velocity = kb.Scale(knockbackJitter(worldRand(w)))
	if physics.Velocity.Y < 0 {
		physics.OnGround = false
	}
}

func knockbackJitter(r *rand.Rand) float64 {
	lo, hi := cfg.Combat.KnockbackJitterMin, cfg.Combat.KnockbackJitterMax
	f := rand.Float64
	if r != nil {
		f = r.Float64
	}
	return lo + f()*(hi-lo)
}
