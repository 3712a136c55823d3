package systems

import (
	"math/rand"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/automoto/pillbrawl/systems/factory"
)

// comboAttack chains up to MaxCombo hits. Each accepted hit opens a window
// WindowDelay later that stays open for ContinueWindow; pressing again inside
// it lands the next hit.
type comboAttack struct{}

func (comboAttack) BeginAction(ctx *AttackContext) {
	run := ctx.Run
	run.Phase = components.PhaseAwaitingStart
	run.HitCount = 0
	run.InputBuffered = false
	run.CanContinue = false
	run.CannotContinue = false
	ctx.holdCooldown()
	run.Action = ctx.spawn(&comboTask{ctx: ctx})
}

// BeginHitPhase arms a hit only while the run holds the active slot and
// has accepted a hit.
func (comboAttack) BeginHitPhase(ctx *AttackContext) {
	switch ctx.Run.Phase {
	case components.PhaseFirstHit, components.PhaseHit, components.PhaseAwaitingNextInput:
	default:
		ctx.log().WithField("phase", ctx.Run.Phase).Debug("combo hit ignored: no hit pending")
		return
	}
	if !ctx.ownsActive() {
		ctx.log().Debug("combo hit ignored: run is not active")
		return
	}
	ctx.spawn(&comboHitTask{ctx: ctx, hit: ctx.Run.HitCount})
}

type comboTask struct {
	ctx *AttackContext

	start    sequence.Timer
	safety   sequence.Timer
	grace    sequence.Timer // presses ignored until it expires
	open     sequence.Timer // window opens when it expires
	close    sequence.Timer // window closes when it expires
	cooldown sequence.Timer
}

func (t *comboTask) Step(c *sequence.Clock) sequence.Status {
	ctx, run := t.ctx, t.ctx.Run
	combo := ctx.Spec.Combo

	if !ctx.ownsVariant() {
		ctx.log().Debug("combo superseded")
		return sequence.Done
	}
	if run.Phase != components.PhaseExiting && !ctx.ownsActive() {
		if !run.Interrupted {
			ctx.log().Debug("combo lost the active slot")
			return sequence.Done
		}
		t.exit(c)
	}

	if !t.safety.Armed() {
		t.safety.Start(c, combo.Safety())
	}
	if run.Phase != components.PhaseExiting && t.safety.Expired(c) {
		ctx.log().Warn("combo safety timeout")
		t.exit(c)
	}

	switch run.Phase {
	case components.PhaseAwaitingStart:
		if !t.start.Armed() {
			t.start.Start(c, combo.StartTimeout)
		}
		if run.CanContinue {
			run.Phase = components.PhaseFirstHit
			t.hit(c)
			return sequence.Running
		}
		if t.start.Expired(c) {
			ctx.log().Warn("combo never started")
			t.resetCues()
			return sequence.Done
		}
	case components.PhaseAwaitingNextInput:
		t.awaitInput(c)
	}

	if run.Phase == components.PhaseExiting {
		if !t.cooldown.Expired(c) {
			return sequence.Running
		}
		ctx.releaseActive()
		ctx.releaseCooldown()
		run.Phase = components.PhaseIdle
		return sequence.Done
	}
	return sequence.Running
}

// hit accepts the next hit and schedules the window after it.
func (t *comboTask) hit(c *sequence.Clock) {
	ctx, run := t.ctx, t.ctx.Run
	combo := ctx.Spec.Combo
	anim := ctx.animator()

	run.HitCount++
	if run.HitCount == 1 {
		anim.SetInt(cfg.Anim.ComboClip, t.pickClip())
	} else {
		ctx.trigger(ctx.Spec.Cue)
	}
	anim.SetInt(cfg.Anim.ComboStep, run.HitCount)

	run.InputBuffered = false
	run.CannotContinue = false
	run.LastInputAt = c.Now
	comboAttack{}.BeginHitPhase(ctx)

	run.Phase = components.PhaseAwaitingNextInput
	t.grace.Start(c, combo.InputGrace)
	t.open.Start(c, combo.WindowDelay)
	t.close.Start(c, combo.WindowDelay+combo.ContinueWindow)
}

func (t *comboTask) awaitInput(c *sequence.Clock) {
	ctx, run := t.ctx, t.ctx.Run

	if run.HitCount >= ctx.Spec.Combo.MaxCombo {
		if t.open.Expired(c) {
			t.exit(c)
		}
		return
	}

	pressed := ctx.pressed() && t.grace.Expired(c)
	if !t.open.Expired(c) {
		if !pressed {
			return
		}
		if ctx.Spec.Hard() {
			ctx.log().Debug("combo failed: early press")
			t.exit(c)
			return
		}
		run.InputBuffered = true
		return
	}

	switch {
	case run.CannotContinue:
		ctx.log().Debug("combo failed: cannot continue")
		t.exit(c)
	case run.InputBuffered || pressed:
		run.Phase = components.PhaseHit
		t.hit(c)
	case t.close.Expired(c):
		ctx.log().Debug("combo failed: window closed")
		t.exit(c)
	}
}

func (t *comboTask) exit(c *sequence.Clock) {
	t.ctx.Run.Phase = components.PhaseExiting
	t.resetCues()
	t.cooldown.Start(c, t.ctx.Spec.Cooldown)
}

// resetCues plays the exit cue and returns the combo parameters to neutral.
func (t *comboTask) resetCues() {
	ctx := t.ctx
	ctx.trigger(ctx.Spec.Combo.ExitCue)
	ctx.Run.HitCount = 0
	if a := ctx.animator(); a != nil {
		a.SetInt(cfg.Anim.ComboStep, 0)
		a.SetInt(cfg.Anim.ComboClip, 0)
	}
}

func (t *comboTask) pickClip() int {
	n := t.ctx.Spec.Combo.ClipVariants
	if n <= 1 {
		return 0
	}
	if r := worldRand(t.ctx.world()); r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n)
}

// Finalize runs however the combo ended. Every release is guarded, so a
// superseded run touches nothing.
func (t *comboTask) Finalize() {
	ctx := t.ctx
	if !ctx.alive() {
		return
	}
	// A newer run may hold the actor by now; its rotation is not ours.
	level := ctx.ownsActive() || !ctx.combat().Attacking
	ctx.releaseActive()
	ctx.releaseCooldown()
	if ctx.ownsVariant() {
		ctx.Run.Phase = components.PhaseIdle
		ctx.Run.HitCount = 0
	}
	if level {
		restoreRotation(ctx.Entry)
	}
}

// comboHitTask waits AttackDelay and arms one hit volume aimed by input.
type comboHitTask struct {
	ctx   *AttackContext
	hit   int
	delay sequence.Timer
}

func (t *comboHitTask) Step(c *sequence.Clock) sequence.Status {
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
	dir := ResolveAttackDirection(in, facing)
	place := PlaceHitbox(spec.Hitboxes, HitboxBucket(in), facing, in)

	force := spec.Combo.Knockback
	if t.hit >= spec.Combo.MaxCombo {
		force = spec.Combo.FinalKnockback
	}

	ArmHitbox(ctx.world(), ctx.Entry, factory.HitboxParams{
		Size:         place.Size,
		Offset:       place.Offset,
		Knockback:    KnockbackAlong(place.Offset, facing, force),
		Stun:         spec.Stun,
		Damage:       spec.Damage,
		Lifetime:     spec.HitboxLifetime,
		TargetTag:    spec.TargetTag,
		Variant:      spec.ID,
		DestroyOnHit: spec.DestroyOnHit,
		Angle:        place.Angle,
	})
	LockRotation(ctx.Entry, dir, spec.RotationLock)
	return sequence.Done
}
