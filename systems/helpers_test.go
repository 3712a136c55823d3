package systems

import (
	"math"
	"testing"

	"github.com/automoto/pillbrawl/animation"
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/systems/factory"
	"github.com/automoto/pillbrawl/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

// floorY is the top of the test floor. Fighters spawned at floorY-height
// stand on it.
const floorY = 200

// fakeInput is driven directly by tests. Taps queued with tap are seen as
// pressed for exactly the next tick.
type fakeInput struct {
	next    map[cfg.ActionID]bool
	pressed map[cfg.ActionID]bool
	held    map[cfg.ActionID]bool
	aim     gamemath.Vec
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		next:    map[cfg.ActionID]bool{},
		pressed: map[cfg.ActionID]bool{},
		held:    map[cfg.ActionID]bool{},
	}
}

func (f *fakeInput) Poll(float64) {
	f.pressed = f.next
	f.next = map[cfg.ActionID]bool{}
}

func (f *fakeInput) tap(a cfg.ActionID)             { f.next[a] = true }
func (f *fakeInput) WasPressed(a cfg.ActionID) bool { return f.pressed[a] }
func (f *fakeInput) IsHeld(a cfg.ActionID) bool     { return f.held[a] }
func (f *fakeInput) WasReleased(cfg.ActionID) bool  { return false }
func (f *fakeInput) Read(a cfg.ActionID) gamemath.Vec {
	if a == cfg.ActionMove {
		return f.aim
	}
	return gamemath.Vec{}
}

type fighter struct {
	entry *donburi.Entry
	anim  *animation.Params
	in    *fakeInput
}

func (f fighter) combat() *components.CombatData { return components.Combat.Get(f.entry) }

func (f fighter) run(id string) *components.AttackRuntime { return f.combat().Runtime[id] }

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := factory.NewWorld(7, 640, 360)
	factory.CreateSolid(w, 0, floorY, 640, 32)
	return w
}

func bindingFor(kind attackdata.Kind) cfg.ActionID {
	switch kind {
	case attackdata.KindHeavy:
		return cfg.ActionHeavy
	case attackdata.KindDashAttack:
		return cfg.ActionDashAttack
	case attackdata.KindDashMove:
		return cfg.ActionDash
	default:
		return cfg.ActionAttack
	}
}

// spawnFighter places a fighter standing on the floor with its left edge at
// x, facing facing, armed with specs.
func spawnFighter(t *testing.T, w donburi.World, name string, x, facing float64, specs ...*attackdata.Spec) fighter {
	t.Helper()
	loadout := map[string]*attackdata.Spec{}
	bindings := map[cfg.ActionID]string{}
	for _, s := range specs {
		require.NoError(t, s.Validate())
		loadout[s.ID] = s
		bindings[bindingFor(s.Kind)] = s.ID
	}
	anim := animation.NewParams()
	in := newFakeInput()
	e := factory.CreateFighter(w, factory.FighterParams{
		Name:     name,
		X:        x,
		Y:        floorY - cfg.Actor.Height,
		Facing:   facing,
		Loadout:  loadout,
		Bindings: bindings,
		Animator: anim,
		Input:    in,
	})
	components.Physics.Get(e).OnGround = true
	return fighter{entry: e, anim: anim, in: in}
}

func stepFor(w donburi.World, seconds float64) {
	n := int(math.Round(seconds / dt))
	for i := 0; i < n; i++ {
		Step(w, dt)
	}
}

func countHitboxes(w donburi.World, owner *donburi.Entry) int {
	n := 0
	tags.Hitbox.Each(w, func(h *donburi.Entry) {
		if components.Hitbox.Get(h).Owner == owner.Entity() {
			n++
		}
	})
	return n
}

func hitboxesOf(w donburi.World, owner *donburi.Entry) []components.HitboxData {
	var out []components.HitboxData
	tags.Hitbox.Each(w, func(h *donburi.Entry) {
		if hb := components.Hitbox.Get(h); hb.Owner == owner.Entity() {
			out = append(out, *hb)
		}
	})
	return out
}

var punchBoxes = attackdata.HitboxTable{
	Horizontal: attackdata.Box{Size: gamemath.Vec{X: 16, Y: 12}, Offset: gamemath.Vec{X: 14}},
	Up:         attackdata.Box{Size: gamemath.Vec{X: 12, Y: 16}, Offset: gamemath.Vec{Y: -18}},
	Down:       attackdata.Box{Size: gamemath.Vec{X: 12, Y: 16}, Offset: gamemath.Vec{Y: 18}},
	Diagonal:   attackdata.Box{Size: gamemath.Vec{X: 14, Y: 14}, Offset: gamemath.Vec{X: 12, Y: -12}},
}

func comboSpec(mode attackdata.Mode) *attackdata.Spec {
	return &attackdata.Spec{
		ID:             "punch",
		Kind:           attackdata.KindCombo,
		Cue:            "punch",
		Mode:           mode,
		TargetTag:      tags.ResolvFighter,
		Damage:         10,
		Stun:           0.5,
		Cooldown:       0.3,
		HitboxLifetime: 0.1,
		Hitboxes:       punchBoxes,
		Combo: &attackdata.ComboSpec{
			MaxCombo:       3,
			ContinueWindow: 1.0,
			WindowDelay:    0.25,
			StartTimeout:   2,
			SafetyTimeout:  10,
			InputGrace:     0.1,
			Knockback:      80,
			FinalKnockback: 200,
			ClipVariants:   3,
			ExitCue:        "comboExit",
		},
	}
}

func heavySpec(mode attackdata.Mode) *attackdata.Spec {
	return &attackdata.Spec{
		ID:             "heavy",
		Kind:           attackdata.KindHeavy,
		Cue:            "heavy",
		Mode:           mode,
		TargetTag:      tags.ResolvFighter,
		Damage:         25,
		Stun:           1,
		Cooldown:       1,
		HitboxLifetime: 0.2,
		Hitboxes:       punchBoxes,
		Heavy: &attackdata.HeavySpec{
			Windup:       0.5,
			MaxHold:      3,
			MinKnockback: 80,
			MaxKnockback: 320,
			WindupCue:    "heavyWindup",
			AttackCue:    "heavyAttack",
			ExitCue:      "heavyExit",
			AutoHit:      true,
		},
	}
}

func dashSpec(kind attackdata.Kind) *attackdata.Spec {
	s := &attackdata.Spec{
		ID:        "dash",
		Kind:      kind,
		Cue:       "dash",
		Mode:      attackdata.ModeEasy,
		TargetTag: tags.ResolvFighter,
		Damage:    15,
		Stun:      0.3,
		Cooldown:  0.4,
		Dash: &attackdata.DashSpec{
			Force:            240,
			Duration:         0.3,
			Ease:             "in_out_sine",
			Drag:             0.5,
			IgnoreGravity:    true,
			AttackStartDelay: 0.05,
			HitboxDuration:   0.2,
			Knockback:        128,
			Hitbox:           attackdata.Box{Size: gamemath.Vec{X: 20, Y: 14}, Offset: gamemath.Vec{X: 12}},
			JumpCue:          "dashJump",
		},
	}
	if kind == attackdata.KindDashAttack {
		s.ID = "dash_slash"
	}
	return s
}
