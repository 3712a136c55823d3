package input

import (
	"fmt"
	"sort"

	"github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// EventKind is what a scripted event does to the state.
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	EventAxis
)

// Event is one timed change to an input state.
type Event struct {
	At     float64
	Kind   EventKind
	Action config.ActionID
	Axis   gamemath.Vec
}

// Press returns a press event at t.
func Press(t float64, a config.ActionID) Event {
	return Event{At: t, Kind: EventPress, Action: a}
}

// Release returns a release event at t.
func Release(t float64, a config.ActionID) Event {
	return Event{At: t, Kind: EventRelease, Action: a}
}

// Axis sets a directional value at t.
func Axis(t float64, a config.ActionID, v gamemath.Vec) Event {
	return Event{At: t, Kind: EventAxis, Action: a, Axis: v}
}

// Hold presses a at t and releases it d seconds later.
func Hold(t, d float64, a config.ActionID) []Event {
	return []Event{Press(t, a), Release(t+d, a)}
}

// Tap is a short hold.
func Tap(t float64, a config.ActionID) []Event {
	return Hold(t, tapLength, a)
}

const (
	tapLength = 0.05
	epsilon   = 1e-9
)

// Script plays timed events into a State. Events due at or before the polled
// time are applied in order.
type Script struct {
	*State
	events []Event
	next   int
}

func NewScript(events ...Event) *Script {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return &Script{State: NewState(), events: sorted}
}

// Poll starts a new tick and applies due events.
func (s *Script) Poll(now float64) {
	s.Swap()
	for s.next < len(s.events) && s.events[s.next].At <= now+epsilon {
		ev := s.events[s.next]
		switch ev.Kind {
		case EventPress:
			s.Press(ev.Action)
		case EventRelease:
			s.Release(ev.Action)
		case EventAxis:
			s.SetAxis(ev.Action, ev.Axis)
		}
		s.next++
	}
}

// Done reports whether every event has been applied.
func (s *Script) Done() bool { return s.next >= len(s.events) }

// Step is one line of a YAML input script.
type Step struct {
	At      float64       `yaml:"at"`
	Actor   int           `yaml:"actor"`
	Press   string        `yaml:"press"`
	Release string        `yaml:"release"`
	Tap     string        `yaml:"tap"`
	Hold    float64       `yaml:"hold"` // seconds, used with press
	Move    *gamemath.Vec `yaml:"move"`
}

// ParseScripts decodes a YAML list of steps into one script per actor index.
func ParseScripts(data []byte) (map[int]*Script, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("input: unmarshal script: %w", err)
	}

	events := make(map[int][]Event)
	for i, st := range steps {
		evs, err := st.events()
		if err != nil {
			return nil, fmt.Errorf("input: step %d: %w", i, err)
		}
		events[st.Actor] = append(events[st.Actor], evs...)
	}

	scripts := make(map[int]*Script, len(events))
	for actor, evs := range events {
		scripts[actor] = NewScript(evs...)
	}
	return scripts, nil
}

func (st Step) events() ([]Event, error) {
	var out []Event
	action := func(name string) (config.ActionID, error) {
		a, ok := config.ParseAction(name)
		if !ok {
			return config.ActionNone, fmt.Errorf("unknown action %q", name)
		}
		return a, nil
	}

	if st.Move != nil {
		out = append(out, Axis(st.At, config.ActionMove, *st.Move))
	}
	if st.Tap != "" {
		a, err := action(st.Tap)
		if err != nil {
			return nil, err
		}
		out = append(out, Tap(st.At, a)...)
	}
	if st.Press != "" {
		a, err := action(st.Press)
		if err != nil {
			return nil, err
		}
		if st.Hold > 0 {
			out = append(out, Hold(st.At, st.Hold, a)...)
		} else {
			out = append(out, Press(st.At, a))
		}
	}
	if st.Release != "" {
		a, err := action(st.Release)
		if err != nil {
			return nil, err
		}
		out = append(out, Release(st.At, a))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("step at %.2fs does nothing", st.At)
	}
	return out, nil
}
