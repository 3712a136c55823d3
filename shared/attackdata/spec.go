// Package attackdata describes attack variants as immutable data loaded from
// YAML. Specs are shared read-only between actors; per-run state lives in the
// combat components. It has no dependencies on ebitengine or donburi.
package attackdata

import (
	"math"

	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// Kind selects the state machine that runs a spec.
type Kind string

const (
	KindCombo      Kind = "combo"
	KindHeavy      Kind = "heavy"
	KindDashAttack Kind = "dash_attack"
	KindDashMove   Kind = "dash_move"
)

// Mode selects the input policy of combos and charged attacks.
type Mode string

const (
	ModeEasy Mode = "easy"
	ModeHard Mode = "hard"
)

// Box is a hit volume size and its offset from the owner's centre, authored
// for an owner facing right.
type Box struct {
	Size   gamemath.Vec `yaml:"size"`
	Offset gamemath.Vec `yaml:"offset"`
}

// HitboxTable picks a box by attack direction bucket.
type HitboxTable struct {
	Horizontal Box `yaml:"horizontal"`
	Up         Box `yaml:"up"`
	Down       Box `yaml:"down"`
	Diagonal   Box `yaml:"diagonal"`
}

type RotationLockSpec struct {
	Enabled  bool    `yaml:"enabled"`
	Duration float64 `yaml:"duration"`
	MaxAngle float64 `yaml:"max_angle"` // degrees
}

type ComboSpec struct {
	MaxCombo       int     `yaml:"max_combo"`
	ContinueWindow float64 `yaml:"continue_window"`
	WindowDelay    float64 `yaml:"window_delay"`
	StartTimeout   float64 `yaml:"start_timeout"`
	SafetyTimeout  float64 `yaml:"safety_timeout"`
	InputGrace     float64 `yaml:"input_grace"`
	Knockback      float64 `yaml:"knockback"`
	FinalKnockback float64 `yaml:"final_knockback"`
	ClipVariants   int     `yaml:"clip_variants"`
	ExitCue        string  `yaml:"exit_cue"`
}

type HeavySpec struct {
	Windup       float64 `yaml:"windup"`
	MaxHold      float64 `yaml:"max_hold"`
	MinKnockback float64 `yaml:"min_knockback"`
	MaxKnockback float64 `yaml:"max_knockback"`
	WindupCue    string  `yaml:"windup_cue"`
	AttackCue    string  `yaml:"attack_cue"`
	ExitCue      string  `yaml:"exit_cue"`
	// AutoHit runs the hit phase on a valid release instead of waiting for
	// a triggerHitbox animation event.
	AutoHit bool `yaml:"auto_hit"`
}

type DashSpec struct {
	Force            float64 `yaml:"force"`
	Duration         float64 `yaml:"duration"`
	Ease             string  `yaml:"ease"`
	Drag             float64 `yaml:"drag"`
	IgnoreGravity    bool    `yaml:"ignore_gravity"`
	AttackStartDelay float64 `yaml:"attack_start_delay"`
	HitboxDuration   float64 `yaml:"hitbox_duration"`
	Knockback        float64 `yaml:"knockback"`
	Hitbox           Box     `yaml:"hitbox"`
	JumpCue          string  `yaml:"jump_cue"`
}

// Spec is the immutable configuration of one attack variant.
type Spec struct {
	ID             string  `yaml:"id"`
	Kind           Kind    `yaml:"kind"`
	Cue            string  `yaml:"cue"`
	Mode           Mode    `yaml:"mode"`
	TargetTag      string  `yaml:"target_tag"`
	Damage         float64 `yaml:"damage"`
	Stun           float64 `yaml:"stun"`
	AttackDelay    float64 `yaml:"attack_delay"`
	Cooldown       float64 `yaml:"cooldown"`
	HitboxLifetime float64 `yaml:"hitbox_lifetime"`
	DestroyOnHit   bool    `yaml:"destroy_on_hit"`

	Hitboxes     HitboxTable      `yaml:"hitboxes"`
	RotationLock RotationLockSpec `yaml:"rotation_lock"`

	Combo *ComboSpec `yaml:"combo"`
	Heavy *HeavySpec `yaml:"heavy"`
	Dash  *DashSpec  `yaml:"dash"`
}

// WithMode returns a copy of s using mode m. The nested blocks are shared,
// which is safe because nothing mutates a loaded spec.
func (s *Spec) WithMode(m Mode) *Spec {
	c := *s
	c.Mode = m
	return &c
}

// Hard reports whether the spec uses the hard input policy.
func (s *Spec) Hard() bool { return s.Mode == ModeHard }

// ComboCapable reports whether continue/cannot-continue signals apply.
func (s *Spec) ComboCapable() bool { return s.Kind == KindCombo }

// Safety returns the overall bound of one combo run. It never undercuts the
// longest run the windows allow.
func (c *ComboSpec) Safety() float64 {
	floor := (c.WindowDelay + c.ContinueWindow) * 1.1 * float64(c.MaxCombo)
	return math.Max(c.SafetyTimeout, floor)
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_sine":      ease.InSine,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
}

// Easing resolves the dash ease curve name. Unknown names fall back to
// in_out_sine; Validate rejects them before they get here.
func (d *DashSpec) Easing() ease.TweenFunc {
	if fn, ok := easings[d.Ease]; ok {
		return fn
	}
	return ease.InOutSine
}
