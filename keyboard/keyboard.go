// Package keyboard polls ebiten keyboards and gamepads into input states.
package keyboard

import (
	"math"

	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/input"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Source is an input.State refreshed from one control scheme and,
// optionally, one gamepad.
type Source struct {
	*input.State
	Scheme  cfg.ControlSchemeID
	Gamepad *ebiten.GamepadID
}

func NewSource(scheme cfg.ControlSchemeID) *Source {
	return &Source{State: input.NewState(), Scheme: scheme}
}

// Poll reads the devices. It must run on the ebiten update goroutine.
func (s *Source) Poll(float64) {
	s.Swap()
	s.Current = [cfg.ActionCount]bool{}

	scheme, ok := Schemes[s.Scheme]
	if ok {
		for action, keys := range scheme.Actions {
			if anyKey(keys) {
				s.Current[action] = true
			}
		}
	}
	var stick gamemath.Vec
	if s.Gamepad != nil {
		stick = s.pollGamepad(*s.Gamepad)
	}

	move := Axis(anyKey(scheme.Left), anyKey(scheme.Right), anyKey(scheme.Up), anyKey(scheme.Down), stick)
	s.SetAxis(cfg.ActionMove, move)
	s.Current[cfg.ActionMove] = !move.IsZero()
}

func (s *Source) pollGamepad(id ebiten.GamepadID) gamemath.Vec {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return gamemath.Vec{}
	}
	for action, buttons := range GamepadButtons {
		for _, b := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				s.Current[action] = true
			}
		}
	}
	return gamemath.Vec{
		X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	}
}

// Axis combines direction keys with an analog stick. Keys win over the
// stick; a stick inside AnalogDeadzone reads as zero. Up is negative Y.
func Axis(left, right, up, down bool, stick gamemath.Vec) gamemath.Vec {
	var v gamemath.Vec
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if !v.IsZero() {
		return v.Normalized()
	}
	if math.Hypot(stick.X, stick.Y) < AnalogDeadzone {
		return gamemath.Vec{}
	}
	return stick
}

func anyKey(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
