package config

// Config holds the window and simulation settings shared by the client and
// the headless runner.
type Config struct {
	Width  int
	Height int

	// TickRate is the number of fixed simulation steps per second.
	TickRate int
}

// CombatConfig contains combat tuning that is not owned by an attack variant.
type CombatConfig struct {
	// Damage used when a variant declares none.
	DefaultDamage float64

	// Knockback is applied as a direct velocity set, scaled by a random
	// multiplier in [KnockbackJitterMin, KnockbackJitterMax].
	KnockbackJitterMin float64
	KnockbackJitterMax float64

	// InterruptWindow is how long a target whose attack was interrupted by a
	// hit stays unable to attack.
	InterruptWindow float64

	// Combo defaults, used when an attack file leaves them at zero.
	ComboStartTimeout  float64 // seconds to wait for the first continue signal
	ComboSafetyTimeout float64 // overall bound on one combo run
	ComboInputGrace    float64 // ignore presses this long after an accepted hit
	ComboWindowDelay   float64 // accepted hit to next window opening
	ComboClipVariants  int     // first hit picks a clip in [0, ComboClipVariants)

	// Hit volume lifetimes are padded by this much before despawn.
	HitboxDespawnGrace float64

	// Direction resolution thresholds, in input units.
	DirectionDeadzone   float64 // below this magnitude the input is ignored
	VerticalThreshold   float64 // |y| above this counts as up/down
	HorizontalTolerance float64 // |x| below this counts as no sideways input
	DiagonalThreshold   float64 // |x| above this together with vertical is diagonal
	DashInputDeadzone   float64 // squared magnitude
	DashVerticalCutoff  float64 // |y| of the normalized dash direction
}

// PhysicsConfig contains the minimal integration used by combat movement.
type PhysicsConfig struct {
	Gravity      float64 // px/s^2
	MaxFallSpeed float64
	DefaultDrag  float64 // fraction of velocity lost per second
}

// ActorConfig contains defaults for spawned fighters.
type ActorConfig struct {
	Width       float64
	Height      float64
	MaxVitality float64
	WalkSpeed   float64

	// Dummy fighters walk back to their spawn after being knocked away.
	DummyHomeDelay     float64 // seconds away before walking home
	DummyHomeTolerance float64 // px
}

// DebugConfig contains debug draw toggles.
type DebugConfig struct {
	DrawHitboxes bool
	DrawState    bool
}

var C *Config
var Combat CombatConfig
var Physics PhysicsConfig
var Actor ActorConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Combat = CombatConfig{
		DefaultDamage: 10,

		KnockbackJitterMin: 0.8,
		KnockbackJitterMax: 1.5,

		InterruptWindow: 0.5,

		ComboStartTimeout:  2.0,
		ComboSafetyTimeout: 10.0,
		ComboInputGrace:    0.1,
		ComboWindowDelay:   0.25,
		ComboClipVariants:  3,

		HitboxDespawnGrace: 0.05,

		DirectionDeadzone:   0.1,
		VerticalThreshold:   0.5,
		HorizontalTolerance: 0.1,
		DiagonalThreshold:   0.5,
		DashInputDeadzone:   0.1,
		DashVerticalCutoff:  0.7,
	}

	Physics = PhysicsConfig{
		Gravity:      900,
		MaxFallSpeed: 600,
		DefaultDrag:  4,
	}

	Actor = ActorConfig{
		Width:       16,
		Height:      24,
		MaxVitality: 100,
		WalkSpeed:   60,

		DummyHomeDelay:     1.5,
		DummyHomeTolerance: 2,
	}

	Debug = DebugConfig{
		DrawHitboxes: true,
		DrawState:    true,
	}
}
