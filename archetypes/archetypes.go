package archetypes

import (
	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Actor,
		components.Object,
		components.Physics,
		components.State,
		components.Stun,
		components.Vitality,
		components.Animation,
		components.Input,
		components.Combat,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
