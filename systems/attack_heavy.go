package systems

import (
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/automoto/pillbrawl/systems/factory"
)

// chargeEpsilon absorbs drift from summing tick lengths into the charge.
const chargeEpsilon = 1e-9

// heavyAttack winds up, charges while the button is held and releases a
// hit whose knockback grows with the charge. While winding up or charging
// the actor tanks one hit.
type heavyAttack struct{}

func (heavyAttack) BeginAction(ctx *AttackContext) {
	run := ctx.Run
	run.Phase = components.PhaseWindup
	run.Charge = 0
	run.HitReady = false
	ctx.holdCooldown()

	cd := ctx.combat()
	cd.IsHeavy = true
	cd.CanTank = true
	ctx.animator().SetBool(cfg.Anim.IsHeavy, true)
	ctx.trigger(ctx.Spec.Heavy.WindupCue)

	run.Action = ctx.spawn(&heavyTask{ctx: ctx})
}

// BeginHitPhase arms the release hit. A release allows exactly one.
func (heavyAttack) BeginHitPhase(ctx *AttackContext) {
	if !ctx.Run.HitReady {
		ctx.log().Debug("heavy hit ignored: no valid release")
		return
	}
	ctx.Run.HitReady = false
	ctx.spawn(&heavyHitTask{ctx: ctx})
}

type heavyTask struct {
	ctx      *AttackContext
	started  bool
	released bool
	resolved bool
	windup   sequence.Timer
	cooldown sequence.Timer
}

func (t *heavyTask) Step(c *sequence.Clock) sequence.Status {
	ctx, run := t.ctx, t.ctx.Run
	heavy := ctx.Spec.Heavy

	if !ctx.ownsVariant() {
		ctx.log().Debug("heavy superseded")
		return sequence.Done
	}

	if !t.resolved {
		if run.Interrupted {
			t.resolve(c, false)
		} else if !ctx.ownsActive() {
			ctx.log().Debug("heavy lost the active slot")
			return sequence.Done
		}
	}

	// The first step runs in the tick the button went down.
	if !t.started {
		t.started = true
		t.windup.Start(c, heavy.Windup)
	} else if !t.released && !t.resolved {
		if ctx.held() {
			run.Charge += c.DT
		} else {
			t.released = true
		}
	}

	switch run.Phase {
	case components.PhaseWindup:
		if !t.windup.Expired(c) {
			return sequence.Running
		}
		run.Phase = components.PhaseCharging
		fallthrough
	case components.PhaseCharging:
		if t.released || run.Charge+chargeEpsilon >= heavy.MaxHold {
			t.resolve(c, true)
		}
	}

	if run.Phase == components.PhaseCooldown && t.cooldown.Expired(c) {
		ctx.releaseCooldown()
		run.Phase = components.PhaseIdle
		return sequence.Done
	}
	return sequence.Running
}

// resolve ends the charge. Easy mode always attacks; hard mode attacks only
// on a release inside [windup, max_hold].
func (t *heavyTask) resolve(c *sequence.Clock, allowed bool) {
	ctx, run := t.ctx, t.ctx.Run
	heavy := ctx.Spec.Heavy
	t.resolved = true

	run.Charge = gamemath.Clamp(run.Charge, 0, heavy.MaxHold)
	valid := allowed
	if valid && ctx.Spec.Hard() {
		valid = t.released &&
			run.Charge+chargeEpsilon >= heavy.Windup &&
			run.Charge <= heavy.MaxHold+chargeEpsilon
	}

	run.Phase = components.PhaseRelease
	if valid {
		ctx.trigger(heavy.AttackCue)
		run.HitReady = true
		if heavy.AutoHit {
			heavyAttack{}.BeginHitPhase(ctx)
		}
	} else {
		ctx.trigger(heavy.ExitCue)
	}
	ctx.log().WithField("charge", run.Charge).WithField("valid", valid).Debug("heavy resolved")

	ctx.releaseActive()
	t.clearHeavy()

	run.Phase = components.PhaseCooldown
	t.cooldown.Start(c, ctx.Spec.Cooldown)
}

func (t *heavyTask) clearHeavy() {
	ctx := t.ctx
	cd := ctx.combat()
	cd.IsHeavy = false
	cd.CanTank = false
	if a := ctx.animator(); a != nil {
		a.SetBool(cfg.Anim.IsHeavy, false)
	}
}

func (t *heavyTask) Finalize() {
	ctx := t.ctx
	if !ctx.alive() {
		return
	}
	if !t.resolved && ctx.ownsActive() {
		t.clearHeavy()
	}
	ctx.releaseActive()
	ctx.releaseCooldown()
}

// heavyHitTask arms the release hit after AttackDelay.
type heavyHitTask struct {
	ctx   *AttackContext
	delay sequence.Timer
}

func (t *heavyHitTask) Step(c *sequence.Clock) sequence.Status {
	ctx := t.ctx
	if !ctx.ownsVariant() || ctx.Run.Interrupted {
		return sequence.Done
	}
	if !t.delay.Armed() {
		t.delay.Start(c, ctx.Spec.AttackDelay)
	}
	if !t.delay.Expired(c) {
		return sequence.Running
	}

	spec := ctx.Spec
	in := ctx.aim()
	facing := ctx.facing()
	place := PlaceHitbox(spec.Hitboxes, HitboxBucket(in), facing, in)

	ArmHitbox(ctx.world(), ctx.Entry, factory.HitboxParams{
		Size:         place.Size,
		Offset:       place.Offset,
		Knockback:    KnockbackAlong(place.Offset, facing, HeavyKnockback(ctx.Run.Charge, spec.Heavy.MinKnockback, spec.Heavy.MaxKnockback, spec.Heavy.MaxHold)),
		Stun:         spec.Stun,
		Damage:       spec.Damage,
		Lifetime:     spec.HitboxLifetime,
		TargetTag:    spec.TargetTag,
		Variant:      spec.ID,
		DestroyOnHit: spec.DestroyOnHit,
		Angle:        place.Angle,
	})
	LockRotation(ctx.Entry, ResolveAttackDirection(in, facing), spec.RotationLock)
	return sequence.Done
}

// HeavyKnockback interpolates the release force by charge over maxHold.
func HeavyKnockback(charge, min, max, maxHold float64) float64 {
	if maxHold <= 0 {
		return min
	}
	return gamemath.Lerp(min, max, charge/maxHold)
}
