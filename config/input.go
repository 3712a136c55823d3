package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMove
	ActionJump
	ActionAttack
	ActionHeavy
	ActionDash
	ActionDashAttack
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:       "none",
	ActionMove:       "move",
	ActionJump:       "jump",
	ActionAttack:     "attack",
	ActionHeavy:      "heavy",
	ActionDash:       "dash",
	ActionDashAttack: "dash_attack",
	ActionPause:      "pause",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a name used in arena files and input scripts to an action.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// ControlSchemeID selects one of the keyboard layouts.
type ControlSchemeID int

const (
	ControlSchemeA ControlSchemeID = iota // WASD + F/G/H
	ControlSchemeB                        // Arrows + numpad
)
