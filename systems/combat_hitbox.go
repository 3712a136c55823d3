package systems

import (
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/automoto/pillbrawl/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxParams configures a hit volume; see factory.HitboxParams.
type HitboxParams = factory.HitboxParams

// ArmHitbox spawns a hit volume riding owner. It never hits owner and
// delivers at most one hit.
func ArmHitbox(w donburi.World, owner *donburi.Entry, p HitboxParams) *donburi.Entry {
	hitbox := factory.CreateHitbox(w, owner, p)
	actorLog(owner).WithFields(logrus.Fields{
		"variant":  p.Variant,
		"offset":   p.Offset,
		"lifetime": p.Lifetime,
	}).Debug("hitbox armed")
	return hitbox
}

// RemoveHitbox takes a hit volume out of the space and the world.
func RemoveHitbox(h *donburi.Entry) {
	if !h.Valid() {
		return
	}
	removeBody(h)
	h.World.Remove(h.Entity())
}

// UpdateHitboxes moves every hit volume with its owner, delivers overlaps
// and removes spent volumes.
func UpdateHitboxes(w donburi.World, dt float64) {
	var spent []*donburi.Entry

	tags.Hitbox.Each(w, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		obj := components.Object.Get(e)

		if !w.Valid(hitbox.Owner) {
			spent = append(spent, e)
			return
		}
		owner := w.Entry(hitbox.Owner)
		obj.MoveCenter(components.Object.Get(owner).Center().Add(hitbox.Offset))

		active := hitbox.Lifetime == 0 || hitbox.Remaining > 0
		if active && !hitbox.HasHit {
			if target := findTarget(w, hitbox, obj); target != nil {
				deliverHit(w, owner, target, hitbox)
			}
		}

		if hitbox.Lifetime > 0 {
			hitbox.Remaining -= dt
		}
		switch {
		case hitbox.HasHit && hitbox.DestroyOnHit:
			spent = append(spent, e)
		case hitbox.Lifetime > 0 && hitbox.Remaining <= -cfg.Combat.HitboxDespawnGrace:
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		RemoveHitbox(e)
	}
}

// findTarget returns the first collider carrying the hit volume's target tag
// that really overlaps it and is not its owner.
func findTarget(w donburi.World, hitbox *components.HitboxData, obj *components.ObjectData) *donburi.Entry {
	tag := hitbox.TargetTag
	if tag == "" {
		tag = tags.ResolvFighter
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	area := obj.Rect()
	for _, other := range check.ObjectsByTags(tag) {
		target, ok := other.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.Entity() == hitbox.Owner {
			continue
		}
		if !area.Overlaps(rectOf(other)) {
			continue
		}
		return target
	}
	return nil
}

// deliverHit applies one hit. A target mid-heavy that may still tank
// absorbs it instead.
func deliverHit(w donburi.World, owner, target *donburi.Entry, hitbox *components.HitboxData) {
	hitbox.HasHit = true

	ev := components.HitEvent{
		At:        now(w),
		Attacker:  owner.Entity(),
		Target:    target.Entity(),
		Variant:   hitbox.Variant,
		Damage:    hitbox.Damage,
		Knockback: hitbox.Knockback,
		Stun:      hitbox.Stun,
	}

	if target.HasComponent(components.Combat) {
		cd := components.Combat.Get(target)
		if cd.IsHeavy && cd.CanTank {
			cd.CanTank = false
			ev.Outcome = components.HitTanked
			ev.Damage, ev.Stun = 0, 0
			components.HitEvents.Publish(w, ev)
			actorLog(target).WithField("variant", hitbox.Variant).Debug("hit tanked")
			return
		}
	}

	ReceiveHit(w, target, hitbox.Knockback, hitbox.Stun, hitbox.Damage)
	anim := animatorOf(target)
	if anim != nil {
		anim.SetTrigger(cfg.Anim.Hit)
	}
	ev.Outcome = components.HitApplied
	if anim != nil && anim.GetBool(cfg.Anim.Attacking) {
		InterruptAttack(target)
		ev.Outcome = components.HitInterrupted
	}

	if owner.HasComponent(components.Combat) {
		components.Combat.Get(owner).HitsLanded++
	}
	if target.HasComponent(components.Combat) {
		components.Combat.Get(target).HitsTaken++
	}
	components.HitEvents.Publish(w, ev)
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
