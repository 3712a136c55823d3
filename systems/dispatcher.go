package systems

import (
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/automoto/pillbrawl/tags"
	"github.com/yohamta/donburi"
)

// StartAttack begins variant id on e. It is rejected while another attack
// is active, while id is cooling down, or when e has no such variant.
func StartAttack(e *donburi.Entry, id string) bool {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return false
	}
	cd := components.Combat.Get(e)
	log := actorLog(e).WithField("variant", id)

	if cd.Attacking {
		log.Debug("attack rejected: another attack is active")
		return false
	}
	spec, ok := cd.Loadout[id]
	if !ok || spec == nil {
		log.Warn("attack rejected: variant not in loadout")
		return false
	}
	if cd.Cooldowns[id] {
		log.Debug("attack rejected: cooling down")
		return false
	}
	variant, ok := variants[spec.Kind]
	if !ok {
		log.WithField("kind", spec.Kind).Error("attack aborted: unknown variant kind")
		return false
	}
	if err := checkCollaborators(e); err != nil {
		log.WithError(err).Error("attack aborted")
		return false
	}

	cd.NextEpoch++
	run := &components.AttackRuntime{Epoch: cd.NextEpoch}
	cd.Runtime[id] = run
	cd.Attacking = true
	cd.Current = id
	cd.Last = id
	cd.ActiveEpoch = run.Epoch

	ctx := newAttackContext(e, spec, run)
	ctx.trigger(spec.Cue)
	ctx.animator().SetBool(cfg.Anim.Attacking, true)

	log.WithField("epoch", run.Epoch).Debug("attack started")
	variant.BeginAction(ctx)
	return true
}

// TriggerAttack relaunches the action phase of the active run unless it is
// still going.
func TriggerAttack(e *donburi.Entry) {
	ctx, ok := currentContext(e)
	if !ok {
		return
	}
	if ctx.Run.Action.Alive() {
		ctx.log().Debug("triggerAttack ignored: action phase running")
		return
	}
	variants[ctx.Spec.Kind].BeginAction(ctx)
}

// TriggerHitbox launches a hit phase of the most recent run. A heavy attack
// released its active slot before its hit, so this does not require one.
func TriggerHitbox(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return
	}
	run, spec, ok := components.Combat.Get(e).LatestRun()
	if !ok || spec == nil || run.Interrupted {
		return
	}
	variants[spec.Kind].BeginHitPhase(newAttackContext(e, spec, run))
}

// SignalCanContinueCombo relays a continue signal to a combo-capable active
// run.
func SignalCanContinueCombo(e *donburi.Entry, v bool) {
	if ctx, ok := currentContext(e); ok && ctx.Spec.ComboCapable() {
		ctx.Run.CanContinue = v
	}
}

// SignalCannotContinueCombo relays a cannot-continue signal to a
// combo-capable active run. It closes the run's current window.
func SignalCannotContinueCombo(e *donburi.Entry, v bool) {
	if ctx, ok := currentContext(e); ok && ctx.Spec.ComboCapable() {
		ctx.Run.CannotContinue = v
	}
}

// HandleAnimationEvent routes a clip event back into combat.
func HandleAnimationEvent(e *donburi.Entry, name string) {
	switch name {
	case cfg.AnimEvent.CanContinueCombo:
		SignalCanContinueCombo(e, true)
	case cfg.AnimEvent.CannotContinueCombo:
		SignalCannotContinueCombo(e, true)
	case cfg.AnimEvent.TriggerAttack:
		TriggerAttack(e)
	case cfg.AnimEvent.TriggerHitbox:
		TriggerHitbox(e)
	case cfg.AnimEvent.ClearAttack:
		ClearCurrentAttack(e)
	default:
		actorLog(e).WithField("event", name).Debug("unhandled animation event")
	}
}

// ClearCurrentAttack frees the active slot without touching cooldowns.
func ClearCurrentAttack(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return
	}
	cd := components.Combat.Get(e)
	cd.Attacking = false
	cd.Current = ""
	cd.ActiveEpoch = 0
	if a := animatorOf(e); a != nil {
		a.SetBool(cfg.Anim.Attacking, false)
	}
}

func SetCooldown(e *donburi.Entry, id string, v bool) {
	if e.Valid() && e.HasComponent(components.Combat) {
		components.Combat.Get(e).Cooldowns[id] = v
	}
}

func IsOnCooldown(e *donburi.Entry, id string) bool {
	return e.Valid() && e.HasComponent(components.Combat) && components.Combat.Get(e).Cooldowns[id]
}

func IsAttacking(e *donburi.Entry) bool {
	return e.Valid() && e.HasComponent(components.Combat) && components.Combat.Get(e).Attacking
}

// CurrentVariant returns the id of the active run, or "".
func CurrentVariant(e *donburi.Entry) string {
	if !IsAttacking(e) {
		return ""
	}
	return components.Combat.Get(e).Current
}

// InterruptAttack breaks e's active attack after it was hit. Attacking stays
// disabled for the interrupt window; a newer interrupt restarts the window.
func InterruptAttack(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return
	}
	cd := components.Combat.Get(e)
	if a := animatorOf(e); a != nil {
		a.SetTrigger(cfg.Anim.Interrupt)
		a.SetBool(cfg.Anim.IsHeavy, false)
	}
	if run, _, ok := cd.CurrentRun(); ok {
		run.Interrupted = true
		run.HitReady = false
	}
	ClearCurrentAttack(e)
	cd.IsHeavy = false
	cd.CanTank = false

	cd.InterruptGen++
	gen := cd.InterruptGen
	cd.InterruptPending = true
	setCanAttack(e, false)

	cd.Runner.Spawn(sequence.After(cfg.Combat.InterruptWindow, func() {
		if !e.Valid() || cd.InterruptGen != gen {
			return
		}
		cd.InterruptPending = false
		if IsStunned(e) {
			return
		}
		setCanAttack(e, true)
	}))
	actorLog(e).Debug("attack interrupted")
}

// DestroyActor cancels e's tasks, letting their cleanup run, then removes
// its hit volumes and e itself.
func DestroyActor(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	w := e.World
	if e.HasComponent(components.Combat) {
		components.Combat.Get(e).Runner.CancelAll()
	}

	var owned []*donburi.Entry
	tags.Hitbox.Each(w, func(h *donburi.Entry) {
		if components.Hitbox.Get(h).Owner == e.Entity() {
			owned = append(owned, h)
		}
	})
	for _, h := range owned {
		RemoveHitbox(h)
	}

	removeBody(e)
	w.Remove(e.Entity())
}

func currentContext(e *donburi.Entry) (*AttackContext, bool) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return nil, false
	}
	run, spec, ok := components.Combat.Get(e).CurrentRun()
	if !ok || spec == nil {
		return nil, false
	}
	return newAttackContext(e, spec, run), true
}

func removeBody(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	if space := WorldSpace(e.World); space != nil {
		space.Remove(obj)
	}
}
