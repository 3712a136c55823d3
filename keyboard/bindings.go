package keyboard

import (
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scheme maps actions and the four move directions to keys.
type Scheme struct {
	Left, Right, Up, Down []ebiten.Key
	Actions               map[cfg.ActionID][]ebiten.Key
}

// Schemes holds the two keyboard layouts, so two players can share a
// keyboard.
var Schemes = map[cfg.ControlSchemeID]Scheme{
	cfg.ControlSchemeA: {
		Left:  []ebiten.Key{ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyD},
		Up:    []ebiten.Key{ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyS},
		Actions: map[cfg.ActionID][]ebiten.Key{
			cfg.ActionJump:       {ebiten.KeySpace},
			cfg.ActionAttack:     {ebiten.KeyF},
			cfg.ActionHeavy:      {ebiten.KeyG},
			cfg.ActionDash:       {ebiten.KeyH},
			cfg.ActionDashAttack: {ebiten.KeyR},
			cfg.ActionPause:      {ebiten.KeyEscape},
		},
	},
	cfg.ControlSchemeB: {
		Left:  []ebiten.Key{ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyArrowDown},
		Actions: map[cfg.ActionID][]ebiten.Key{
			cfg.ActionJump:       {ebiten.KeyNumpad0, ebiten.KeyShiftRight},
			cfg.ActionAttack:     {ebiten.KeyNumpad1, ebiten.KeyK},
			cfg.ActionHeavy:      {ebiten.KeyNumpad2, ebiten.KeyL},
			cfg.ActionDash:       {ebiten.KeyNumpad3, ebiten.KeySemicolon},
			cfg.ActionDashAttack: {ebiten.KeyNumpad4, ebiten.KeyO},
			cfg.ActionPause:      {ebiten.KeyBackspace},
		},
	},
}

// GamepadButtons maps actions to standard layout buttons.
var GamepadButtons = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionJump:       {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionAttack:     {ebiten.StandardGamepadButtonRightLeft},
	cfg.ActionHeavy:      {ebiten.StandardGamepadButtonRightTop},
	cfg.ActionDash:       {ebiten.StandardGamepadButtonRightRight},
	cfg.ActionDashAttack: {ebiten.StandardGamepadButtonFrontTopRight},
	cfg.ActionPause:      {ebiten.StandardGamepadButtonCenterRight},
}

// AnalogDeadzone is the stick magnitude below which the stick is ignored.
const AnalogDeadzone = 0.25
