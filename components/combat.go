package components

import (
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/yohamta/donburi"
)

// Phase is where a variant's run currently is.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingStart
	PhaseFirstHit
	PhaseAwaitingNextInput
	PhaseHit
	PhaseExiting
	PhaseWindup
	PhaseCharging
	PhaseRelease
	PhaseCooldown
	PhaseDashing
)

var phaseNames = [...]string{
	PhaseIdle:              "idle",
	PhaseAwaitingStart:     "awaiting_start",
	PhaseFirstHit:          "first_hit",
	PhaseAwaitingNextInput: "awaiting_next_input",
	PhaseHit:               "hit",
	PhaseExiting:           "exiting",
	PhaseWindup:            "windup",
	PhaseCharging:          "charging",
	PhaseRelease:           "release",
	PhaseCooldown:          "cooldown",
	PhaseDashing:           "dashing",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// AttackRuntime is the mutable state of one run of one variant. A fresh value
// is created by every StartAttack; continuations compare against the one the
// dispatcher currently holds to detect that they were superseded.
type AttackRuntime struct {
	Phase          Phase
	HitCount       int
	Charge         float64
	InputBuffered  bool
	LastInputAt    float64
	CanContinue    bool
	CannotContinue bool
	Interrupted    bool
	HitReady       bool // a valid release may still run one hit phase
	Epoch          uint64

	// Action is the run's action-phase task.
	Action sequence.Handle
}

// CombatData is the per-actor dispatcher state.
type CombatData struct {
	Attacking   bool
	Current     string // variant id of the active run
	Last        string // variant id of the most recent run, kept after clear
	ActiveEpoch uint64 // epoch of the active run, 0 when idle
	NextEpoch   uint64 // last epoch handed out

	Cooldowns map[string]bool
	Runtime   map[string]*AttackRuntime
	Loadout   map[string]*attackdata.Spec
	Bindings  map[cfg.ActionID]string

	Runner *sequence.Runner

	CanAttack        bool
	IsHeavy          bool
	CanTank          bool
	InterruptGen     uint64
	InterruptPending bool
	RotationGen      uint64

	HitsLanded int
	HitsTaken  int
}

// NewCombatData returns dispatcher state for a loadout. Bindings map input
// actions to spec ids.
func NewCombatData(clock *sequence.Clock, loadout map[string]*attackdata.Spec, bindings map[cfg.ActionID]string) CombatData {
	return CombatData{
		Cooldowns: make(map[string]bool),
		Runtime:   make(map[string]*AttackRuntime),
		Loadout:   loadout,
		Bindings:  bindings,
		Runner:    sequence.NewRunner(clock),
		CanAttack: true,
	}
}

// LatestRun returns the runtime of the most recent run while no newer run
// has replaced it, whether or not it still holds the active slot.
func (c *CombatData) LatestRun() (*AttackRuntime, *attackdata.Spec, bool) {
	run, ok := c.Runtime[c.Last]
	if !ok || run.Epoch != c.NextEpoch {
		return nil, nil, false
	}
	return run, c.Loadout[c.Last], true
}

// ActionFor returns the input action bound to a variant.
func (c *CombatData) ActionFor(id string) (cfg.ActionID, bool) {
	for a, v := range c.Bindings {
		if v == id {
			return a, true
		}
	}
	return cfg.ActionNone, false
}

// CurrentRun returns the runtime of the active run.
func (c *CombatData) CurrentRun() (*AttackRuntime, *attackdata.Spec, bool) {
	if !c.Attacking {
		return nil, nil, false
	}
	run, ok := c.Runtime[c.Current]
	if !ok || run.Epoch != c.ActiveEpoch {
		return nil, nil, false
	}
	return run, c.Loadout[c.Current], true
}

var Combat = donburi.NewComponentType[CombatData]()
