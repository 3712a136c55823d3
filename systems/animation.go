package systems

import (
	"github.com/automoto/pillbrawl/components"
	"github.com/yohamta/donburi"
)

// UpdateAnimators advances animators that play clips. Clip events call back
// into combat from here.
func UpdateAnimators(w donburi.World, dt float64) {
	var players []components.AnimatorUpdater
	components.Animation.Each(w, func(e *donburi.Entry) {
		if u, ok := components.Animation.Get(e).Animator.(components.AnimatorUpdater); ok {
			players = append(players, u)
		}
	})
	// Events may start attacks or destroy actors, so the query is finished
	// before any of them run.
	for _, u := range players {
		u.Update(dt)
	}
}
