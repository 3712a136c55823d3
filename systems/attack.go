package systems

import (
	"errors"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

var (
	ErrNoAnimator = errors.New("no animator bound")
	ErrNoInput    = errors.New("no input source bound")
	ErrNoBody     = errors.New("no collision body or physics")
)

// AttackVariant runs one kind of attack. Variants hold no state; everything
// a run mutates lives in its AttackRuntime.
type AttackVariant interface {
	// BeginAction launches the action phase of a run.
	BeginAction(ctx *AttackContext)
	// BeginHitPhase launches one hit phase of a run.
	BeginHitPhase(ctx *AttackContext)
}

var variants = map[attackdata.Kind]AttackVariant{
	attackdata.KindCombo:      comboAttack{},
	attackdata.KindHeavy:      heavyAttack{},
	attackdata.KindDashAttack: dashAttack{withHitbox: true},
	attackdata.KindDashMove:   dashAttack{},
}

// AttackContext binds a variant to one run of one actor.
type AttackContext struct {
	Entry  *donburi.Entry
	Spec   *attackdata.Spec
	Run    *components.AttackRuntime
	Action cfg.ActionID // input action the attack is bound to
}

func newAttackContext(e *donburi.Entry, spec *attackdata.Spec, run *components.AttackRuntime) *AttackContext {
	ctx := &AttackContext{Entry: e, Spec: spec, Run: run}
	if a, ok := components.Combat.Get(e).ActionFor(spec.ID); ok {
		ctx.Action = a
	}
	return ctx
}

func (ctx *AttackContext) world() donburi.World           { return ctx.Entry.World }
func (ctx *AttackContext) combat() *components.CombatData { return components.Combat.Get(ctx.Entry) }

func (ctx *AttackContext) alive() bool {
	return ctx.Entry.Valid() && ctx.Entry.HasComponent(components.Combat)
}

// ownsActive reports whether this run still holds the actor's active slot.
func (ctx *AttackContext) ownsActive() bool {
	if !ctx.alive() {
		return false
	}
	cd := ctx.combat()
	return cd.Attacking && cd.ActiveEpoch == ctx.Run.Epoch
}

// ownsVariant reports whether no newer run of the same variant replaced this
// one.
func (ctx *AttackContext) ownsVariant() bool {
	if !ctx.alive() {
		return false
	}
	return ctx.combat().Runtime[ctx.Spec.ID] == ctx.Run
}

// releaseActive clears the active attack if this run still owns it.
func (ctx *AttackContext) releaseActive() {
	if !ctx.ownsActive() {
		ctx.log().Debug("stale clear ignored")
		return
	}
	ClearCurrentAttack(ctx.Entry)
}

// releaseCooldown ends the variant's cooldown if no newer run took over.
func (ctx *AttackContext) releaseCooldown() {
	if !ctx.ownsVariant() {
		ctx.log().Debug("stale cooldown release ignored")
		return
	}
	ctx.combat().Cooldowns[ctx.Spec.ID] = false
}

func (ctx *AttackContext) holdCooldown() {
	ctx.combat().Cooldowns[ctx.Spec.ID] = true
}

func (ctx *AttackContext) spawn(t sequence.Task) sequence.Handle {
	return ctx.combat().Runner.Spawn(t)
}

func (ctx *AttackContext) animator() components.Animator {
	return animatorOf(ctx.Entry)
}

func (ctx *AttackContext) trigger(cue string) {
	if cue == "" {
		return
	}
	if a := ctx.animator(); a != nil {
		a.SetTrigger(cue)
	}
}

func (ctx *AttackContext) input() components.InputSource {
	if !ctx.alive() {
		return nil
	}
	return components.Input.Get(ctx.Entry).Source
}

func (ctx *AttackContext) pressed() bool {
	in := ctx.input()
	return in != nil && ctx.Action != cfg.ActionNone && in.WasPressed(ctx.Action)
}

func (ctx *AttackContext) held() bool {
	in := ctx.input()
	return in != nil && ctx.Action != cfg.ActionNone && in.IsHeld(ctx.Action)
}

// aim returns the raw directional input.
func (ctx *AttackContext) aim() gamemath.Vec {
	in := ctx.input()
	if in == nil {
		return gamemath.Vec{}
	}
	return in.Read(cfg.ActionMove)
}

func (ctx *AttackContext) facing() float64 {
	return components.Actor.Get(ctx.Entry).Facing
}

func (ctx *AttackContext) log() *logrus.Entry {
	return actorLog(ctx.Entry).WithFields(logrus.Fields{
		"variant": ctx.Spec.ID,
		"epoch":   ctx.Run.Epoch,
	})
}

// checkCollaborators reports the first missing collaborator a run needs.
func checkCollaborators(e *donburi.Entry) error {
	if animatorOf(e) == nil {
		return ErrNoAnimator
	}
	if !e.HasComponent(components.Input) || components.Input.Get(e).Source == nil {
		return ErrNoInput
	}
	if !e.HasComponent(components.Object) || components.Object.Get(e).Object == nil || !e.HasComponent(components.Physics) {
		return ErrNoBody
	}
	return nil
}
