package factory

import (
	"github.com/automoto/pillbrawl/archetypes"
	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxParams configures one hit volume. Offset is from the owner's centre
// and already mirrored to the owner's facing.
type HitboxParams struct {
	Size         gamemath.Vec
	Offset       gamemath.Vec
	Knockback    gamemath.Vec
	Stun         float64
	Damage       float64
	Lifetime     float64
	TargetTag    string
	Variant      string
	DestroyOnHit bool
	Angle        float64
}

// CreateHitbox spawns a hit volume centred on the owner plus p.Offset.
func CreateHitbox(w donburi.World, owner *donburi.Entry, p HitboxParams) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(w)

	centre := components.Object.Get(owner).Center().Add(p.Offset)
	r := gamemath.CenteredRect(centre, p.Size)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:        owner.Entity(),
		Variant:      p.Variant,
		Offset:       p.Offset,
		Knockback:    p.Knockback,
		Stun:         p.Stun,
		Damage:       p.Damage,
		TargetTag:    p.TargetTag,
		Lifetime:     p.Lifetime,
		Remaining:    p.Lifetime,
		Angle:        p.Angle,
		DestroyOnHit: p.DestroyOnHit,
	})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return hitbox
}
