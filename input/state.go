// Package input holds headless per-actor input buffers. Devices and scripts
// write into a State; combat only reads it.
package input

import (
	"github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
)

// State stores the current and previous tick's held state for all actions.
// Pressed/released edges are computed on demand by comparing ticks.
type State struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
	axes     map[config.ActionID]gamemath.Vec
	latched  [config.ActionCount]bool
}

func NewState() *State {
	return &State{axes: make(map[config.ActionID]gamemath.Vec)}
}

// Swap starts a new tick. Held actions stay held until released.
func (s *State) Swap() {
	s.Previous = s.Current
}

// Poll refreshes a State written between ticks: edges compare what was held
// at this poll with what was held at the last one.
func (s *State) Poll(float64) {
	s.Previous = s.latched
	s.latched = s.Current
}

func (s *State) Press(a config.ActionID)   { s.Current[a] = true }
func (s *State) Release(a config.ActionID) { s.Current[a] = false }

// SetAxis sets the directional value read for a.
func (s *State) SetAxis(a config.ActionID, v gamemath.Vec) {
	s.axes[a] = v
}

func (s *State) WasPressed(a config.ActionID) bool {
	return s.Current[a] && !s.Previous[a]
}

func (s *State) IsHeld(a config.ActionID) bool {
	return s.Current[a]
}

func (s *State) WasReleased(a config.ActionID) bool {
	return !s.Current[a] && s.Previous[a]
}

func (s *State) Read(a config.ActionID) gamemath.Vec {
	return s.axes[a]
}
