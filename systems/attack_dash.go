package systems

import (
	"math"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// dashAttack bursts the actor along the aimed direction. With withHitbox it
// also carries a hit volume along the dash.
type dashAttack struct {
	withHitbox bool
}

func (d dashAttack) BeginAction(ctx *AttackContext) {
	run := ctx.Run
	dash := ctx.Spec.Dash
	run.Phase = components.PhaseDashing
	ctx.holdCooldown()

	dir := ResolveDashDirection(ctx.aim(), ctx.facing())
	vertical := gamemath.NearVertical(dir, cfg.Combat.DashVerticalCutoff)
	if vertical {
		ctx.trigger(dash.JumpCue)
	} else {
		components.Actor.Get(ctx.Entry).Facing = gamemath.Sign(dir.X)
		LockRotation(ctx.Entry, dir, ctx.Spec.RotationLock)
	}

	final := cfg.Grounded
	if d.withHitbox {
		final = cfg.Moving
	}
	parent := &dashTask{ctx: ctx}
	parent.physics = ctx.spawn(&dashPhysicsTask{ctx: ctx, dir: dir, final: final})
	if d.withHitbox {
		parent.hitbox = ctx.spawn(&dashHitboxTask{ctx: ctx, dir: dir, vertical: vertical})
	}
	run.Action = ctx.spawn(parent)
}

// BeginHitPhase does nothing: the dash hit volume rides the dash itself.
func (dashAttack) BeginHitPhase(ctx *AttackContext) {
	ctx.log().Debug("dash has no triggered hit phase")
}

// dashTask waits for the dash and its hit volume, then frees the active slot
// and holds the cooldown.
type dashTask struct {
	ctx      *AttackContext
	physics  sequence.Handle
	hitbox   sequence.Handle
	cooling  bool
	cooldown sequence.Timer
}

func (t *dashTask) Step(c *sequence.Clock) sequence.Status {
	ctx, run := t.ctx, t.ctx.Run
	if !ctx.ownsVariant() {
		return sequence.Done
	}
	if !t.cooling {
		if run.Interrupted {
			t.physics.Cancel()
			t.hitbox.Cancel()
		}
		if t.physics.Alive() || t.hitbox.Alive() {
			return sequence.Running
		}
		ctx.releaseActive()
		t.cooling = true
		run.Phase = components.PhaseCooldown
		t.cooldown.Start(c, ctx.Spec.Cooldown)
	}
	if !t.cooldown.Expired(c) {
		return sequence.Running
	}
	ctx.releaseCooldown()
	run.Phase = components.PhaseIdle
	return sequence.Done
}

func (t *dashTask) Finalize() {
	t.physics.Cancel()
	t.hitbox.Cancel()
	if !t.ctx.alive() {
		return
	}
	t.ctx.releaseActive()
	t.ctx.releaseCooldown()
}

// dashPhysicsTask drives the actor's velocity along dir, eased from full
// force to rest over the dash duration.
type dashPhysicsTask struct {
	ctx   *AttackContext
	dir   gamemath.Vec
	final cfg.EntityState

	tween    *gween.Tween
	base     gamemath.Vec
	drag     float64
	gravity  float64
	saved    bool
	restored bool
}

func (t *dashPhysicsTask) Step(c *sequence.Clock) sequence.Status {
	ctx := t.ctx
	if !ctx.alive() {
		return sequence.Done
	}
	physics := components.Physics.Get(ctx.Entry)
	dash := ctx.Spec.Dash

	if t.tween == nil {
		t.drag, t.gravity = physics.Drag, physics.GravityScale
		t.saved = true
		ChangeState(ctx.Entry, cfg.Dashing)

		physics.Drag = dash.Drag
		if dash.IgnoreGravity {
			physics.GravityScale = 0
		}
		t.base = t.dir.Scale(dash.Force)
		physics.Velocity = t.base
		if t.base.Y < 0 {
			physics.OnGround = false
		}
		t.tween = gween.New(1, 0, float32(dash.Duration), dash.Easing())
		return sequence.Running
	}

	if CurrentState(ctx.Entry) != cfg.Dashing {
		ctx.log().Debug("dash cut short")
		return sequence.Done
	}

	mult, finished := t.tween.Update(float32(c.DT))
	physics.Velocity = t.base.Scale(float64(mult))
	if !finished {
		return sequence.Running
	}
	t.restore(ctx.Entry)
	ChangeState(ctx.Entry, t.final)
	return sequence.Done
}

func (t *dashPhysicsTask) Finalize() {
	if !t.ctx.alive() {
		return
	}
	t.restore(t.ctx.Entry)
	if t.saved && CurrentState(t.ctx.Entry) == cfg.Dashing {
		ChangeState(t.ctx.Entry, t.final)
	}
}

func (t *dashPhysicsTask) restore(e *donburi.Entry) {
	if !t.saved || t.restored {
		return
	}
	t.restored = true
	physics := components.Physics.Get(e)
	physics.Drag = t.drag
	physics.GravityScale = t.gravity
}

// dashHitboxTask arms one hit volume along the dash after a short delay and
// removes it once HitboxDuration has passed.
type dashHitboxTask struct {
	ctx      *AttackContext
	dir      gamemath.Vec
	vertical bool

	delay  sequence.Timer
	live   sequence.Timer
	hitbox *donburi.Entry
}

func (t *dashHitboxTask) Step(c *sequence.Clock) sequence.Status {
	ctx := t.ctx
	if !ctx.ownsVariant() || ctx.Run.Interrupted {
		return sequence.Done
	}
	dash := ctx.Spec.Dash

	if t.hitbox == nil {
		if !t.delay.Armed() {
			t.delay.Start(c, dash.AttackStartDelay)
		}
		if !t.delay.Expired(c) {
			return sequence.Running
		}
		size, offset := dashBox(dash.Hitbox.Size, dash.Hitbox.Offset, t.dir, t.vertical)
		t.hitbox = ArmHitbox(ctx.world(), ctx.Entry, factory.HitboxParams{
			Size:         size,
			Offset:       offset,
			Knockback:    t.dir.Scale(dash.Knockback),
			Stun:         ctx.Spec.Stun,
			Damage:       ctx.Spec.Damage,
			TargetTag:    ctx.Spec.TargetTag,
			Variant:      ctx.Spec.ID,
			DestroyOnHit: ctx.Spec.DestroyOnHit,
		})
		t.live.Start(c, dash.HitboxDuration)
	}
	if !t.live.Expired(c) {
		return sequence.Running
	}
	return sequence.Done
}

func (t *dashHitboxTask) Finalize() {
	if t.hitbox != nil && t.hitbox.Valid() {
		RemoveHitbox(t.hitbox)
	}
}

// dashBox lays the authored box along the dash. Boxes are authored for a
// rightward dash; vertical dashes turn them on end.
func dashBox(size, offset, dir gamemath.Vec, vertical bool) (gamemath.Vec, gamemath.Vec) {
	if vertical {
		return gamemath.Vec{X: size.Y, Y: size.X},
			gamemath.Vec{X: 0, Y: math.Abs(offset.X) * gamemath.Sign(dir.Y)}
	}
	return size, gamemath.Vec{X: math.Abs(offset.X) * gamemath.Sign(dir.X), Y: offset.Y}
}
