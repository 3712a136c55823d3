package systems

import (
	"math/rand"

	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WorldClock returns the simulation clock singleton, or nil.
func WorldClock(w donburi.World) *sequence.Clock {
	e, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(e).Clock
}

// WorldSpace returns the collision space singleton, or nil.
func WorldSpace(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

func worldRand(w donburi.World) *rand.Rand {
	e, ok := components.Random.First(w)
	if !ok || !e.HasComponent(components.Random) {
		return nil
	}
	return components.Random.Get(e).Rand
}

func now(w donburi.World) float64 {
	if c := WorldClock(w); c != nil {
		return c.Now
	}
	return 0
}

func actorLog(e *donburi.Entry) *logrus.Entry {
	fields := logrus.Fields{"entity": e.Entity()}
	if e.HasComponent(components.Actor) {
		fields["actor"] = components.Actor.Get(e).Name
	}
	return logger.Log.WithFields(fields)
}
