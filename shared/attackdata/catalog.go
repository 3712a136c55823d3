package attackdata

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/automoto/pillbrawl/config"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("invalid attack spec")

//go:embed defaults.yaml
var defaultsYAML []byte

// ClipEvent fires Name when a clip has played for At seconds.
type ClipEvent struct {
	At   float64 `yaml:"at"`
	Name string  `yaml:"name"`
}

// Clip is the event timeline of one animation, keyed by the cue that plays it.
type Clip struct {
	Cue    string      `yaml:"cue"`
	Length float64     `yaml:"length"`
	Events []ClipEvent `yaml:"events"`
}

// Catalog is a validated set of attack specs and animation clips.
type Catalog struct {
	Attacks []Spec `yaml:"attacks"`
	Clips   []Clip `yaml:"clips"`

	byID  map[string]*Spec
	byCue map[string]*Clip
}

// Get returns the spec with the given id.
func (c *Catalog) Get(id string) (*Spec, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Clip returns the clip played by cue.
func (c *Catalog) Clip(cue string) (*Clip, bool) {
	cl, ok := c.byCue[cue]
	return cl, ok
}

// IDs returns the spec ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Parse decodes, fills defaults and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("attackdata: unmarshal: %w", err)
	}
	cat.applyDefaults()
	if err := cat.validate(); err != nil {
		return nil, err
	}
	cat.index()
	return &cat, nil
}

// LoadFile reads and parses a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("attackdata: load %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("attackdata: %s: %w", path, err)
	}
	return cat, nil
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultsYAML)
}

func (c *Catalog) index() {
	c.byID = make(map[string]*Spec, len(c.Attacks))
	for i := range c.Attacks {
		c.byID[c.Attacks[i].ID] = &c.Attacks[i]
	}
	c.byCue = make(map[string]*Clip, len(c.Clips))
	for i := range c.Clips {
		c.byCue[c.Clips[i].Cue] = &c.Clips[i]
	}
}

func (c *Catalog) applyDefaults() {
	for i := range c.Attacks {
		s := &c.Attacks[i]
		if s.Mode == "" {
			s.Mode = ModeEasy
		}
		if s.Damage == 0 {
			s.Damage = config.Combat.DefaultDamage
		}
		if s.HitboxLifetime == 0 {
			s.HitboxLifetime = 0.1
		}
		if s.RotationLock.Enabled && s.RotationLock.MaxAngle == 0 {
			s.RotationLock.MaxAngle = 45
		}
		if cs := s.Combo; cs != nil {
			if cs.StartTimeout == 0 {
				cs.StartTimeout = config.Combat.ComboStartTimeout
			}
			if cs.SafetyTimeout == 0 {
				cs.SafetyTimeout = config.Combat.ComboSafetyTimeout
			}
			if cs.InputGrace == 0 {
				cs.InputGrace = config.Combat.ComboInputGrace
			}
			if cs.WindowDelay == 0 {
				cs.WindowDelay = config.Combat.ComboWindowDelay
			}
			if cs.ClipVariants == 0 {
				cs.ClipVariants = config.Combat.ComboClipVariants
			}
			if cs.FinalKnockback == 0 {
				cs.FinalKnockback = cs.Knockback
			}
		}
		if d := s.Dash; d != nil && d.Ease == "" {
			d.Ease = "in_out_sine"
		}
	}
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Attacks))
	for i := range c.Attacks {
		s := &c.Attacks[i]
		if s.ID == "" {
			return fmt.Errorf("%w: attack %d has no id", ErrInvalidSpec, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidSpec, s.ID)
		}
		seen[s.ID] = true
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for _, cl := range c.Clips {
		if cl.Cue == "" {
			return fmt.Errorf("%w: clip without cue", ErrInvalidSpec)
		}
		for _, ev := range cl.Events {
			if ev.At < 0 || ev.At > cl.Length {
				return fmt.Errorf("%w: clip %q event %q at %.2fs outside [0, %.2f]",
					ErrInvalidSpec, cl.Cue, ev.Name, ev.At, cl.Length)
			}
		}
	}
	return nil
}

// Validate checks one spec in isolation.
func (s *Spec) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidSpec, s.ID, fmt.Sprintf(format, args...))
	}

	if s.Mode != ModeEasy && s.Mode != ModeHard {
		return bad("unknown mode %q", s.Mode)
	}
	if s.Cooldown < 0 || s.AttackDelay < 0 || s.Stun < 0 || s.HitboxLifetime < 0 {
		return bad("negative timing")
	}

	switch s.Kind {
	case KindCombo:
		cs := s.Combo
		if cs == nil {
			return bad("combo block missing")
		}
		if cs.MaxCombo < 1 {
			return bad("max_combo must be at least 1, got %d", cs.MaxCombo)
		}
		if cs.ContinueWindow <= 0 {
			return bad("continue_window must be positive")
		}
		if cs.InputGrace > cs.WindowDelay {
			return bad("input_grace %.2f exceeds window_delay %.2f", cs.InputGrace, cs.WindowDelay)
		}
	case KindHeavy:
		h := s.Heavy
		if h == nil {
			return bad("heavy block missing")
		}
		if h.MaxHold <= 0 {
			return bad("max_hold must be positive")
		}
		if h.Windup < 0 || h.Windup > h.MaxHold {
			return bad("windup %.2f outside [0, max_hold]", h.Windup)
		}
		if h.MaxKnockback < h.MinKnockback {
			return bad("max_knockback below min_knockback")
		}
	case KindDashAttack, KindDashMove:
		d := s.Dash
		if d == nil {
			return bad("dash block missing")
		}
		if d.Duration <= 0 {
			return bad("dash duration must be positive")
		}
		if _, ok := easings[d.Ease]; !ok {
			return bad("unknown ease %q", d.Ease)
		}
	default:
		return bad("unknown kind %q", s.Kind)
	}
	return nil
}
