package config

// AnimParams names the animator parameters combat reads and writes.
type AnimParams struct {
	Attacking string // bool, set while an attack runs
	CanAttack string // bool
	IsHeavy   string // bool
	ComboClip string // int, clip picked for the first combo hit
	ComboStep string // int
	Hit       string // trigger on the target of a landed hit
	Interrupt string // trigger when a hit breaks the target's attack
}

// AnimEvents names the clip events that call back into the dispatcher.
type AnimEvents struct {
	CanContinueCombo    string
	CannotContinueCombo string
	TriggerAttack       string
	TriggerHitbox       string
	ClearAttack         string
}

var Anim AnimParams
var AnimEvent AnimEvents

func init() {
	Anim = AnimParams{
		Attacking: "playerAttacking",
		CanAttack: "canAttack",
		IsHeavy:   "isHeavy",
		ComboClip: "comboClip",
		ComboStep: "comboStep",
		Hit:       "playerHit",
		Interrupt: "attackInterrupted",
	}

	AnimEvent = AnimEvents{
		CanContinueCombo:    "canContinueCombo",
		CannotContinueCombo: "cannotContinueCombo",
		TriggerAttack:       "triggerAttack",
		TriggerHitbox:       "triggerHitbox",
		ClearAttack:         "clearAttack",
	}
}
