// Package animation provides the animator sinks combat writes cues into.
// Nothing here draws; the client renders from the recorded parameters.
package animation

// Params is an animator parameter store. It records every trigger so tests
// and the debug overlay can see which cues fired.
type Params struct {
	bools    map[string]bool
	ints     map[string]int
	counts   map[string]int
	Triggers []string
}

func NewParams() *Params {
	return &Params{
		bools:  make(map[string]bool),
		ints:   make(map[string]int),
		counts: make(map[string]int),
	}
}

func (p *Params) SetTrigger(name string) {
	p.Triggers = append(p.Triggers, name)
	p.counts[name]++
}

func (p *Params) SetBool(name string, v bool) { p.bools[name] = v }
func (p *Params) SetInt(name string, v int)   { p.ints[name] = v }
func (p *Params) GetBool(name string) bool    { return p.bools[name] }
func (p *Params) GetInt(name string) int      { return p.ints[name] }

// TriggerCount returns how many times name has fired.
func (p *Params) TriggerCount(name string) int { return p.counts[name] }

// LastTrigger returns the most recent trigger, or "".
func (p *Params) LastTrigger() string {
	if len(p.Triggers) == 0 {
		return ""
	}
	return p.Triggers[len(p.Triggers)-1]
}
