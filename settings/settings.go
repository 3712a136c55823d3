// Package settings persists player preferences between sandbox sessions.
package settings

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/logger"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Settings is the data stored on disk.
type Settings struct {
	Difficulty   cfg.Difficulty         `json:"difficulty"`
	Schemes      [2]cfg.ControlSchemeID `json:"schemes"`
	DrawHitboxes bool                   `json:"drawHitboxes"`
	DrawState    bool                   `json:"drawState"`
}

// Defaults returns the settings used before anything was saved.
func Defaults() Settings {
	return Settings{
		Difficulty:   cfg.Settings.DefaultDifficulty,
		Schemes:      [2]cfg.ControlSchemeID{cfg.ControlSchemeA, cfg.ControlSchemeB},
		DrawHitboxes: cfg.Debug.DrawHitboxes,
		DrawState:    cfg.Debug.DrawState,
	}
}

// Mode is the attack input policy selected by the difficulty.
func (s Settings) Mode() attackdata.Mode {
	if s.Difficulty == cfg.DifficultyHard {
		return attackdata.ModeHard
	}
	return attackdata.ModeEasy
}

// ToggleDifficulty switches between easy and hard.
func (s *Settings) ToggleDifficulty() {
	if s.Difficulty == cfg.DifficultyHard {
		s.Difficulty = cfg.DifficultyEasy
	} else {
		s.Difficulty = cfg.DifficultyHard
	}
}

// ItemStore is the key/value storage behind a Store. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store loads and saves Settings. A Store without storage keeps working
// with defaults and drops saves.
type Store struct {
	items ItemStore
}

// Open returns a Store backed by the per-user gdata directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("settings: open %s: %w", appName, err)
	}
	return &Store{items: m}, nil
}

// NewStore wraps items.
func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Load returns the saved settings, or Defaults when nothing usable is
// stored. Unknown difficulties fall back to the default one.
func (s *Store) Load() (Settings, error) {
	out := Defaults()
	if s == nil || s.items == nil {
		return out, nil
	}

	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		return out, fmt.Errorf("settings: load: %w", err)
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Defaults(), fmt.Errorf("settings: parse: %w", err)
	}

	switch out.Difficulty {
	case cfg.DifficultyEasy, cfg.DifficultyHard:
	default:
		logger.Log.WithField("difficulty", out.Difficulty).Warn("unknown saved difficulty, using default")
		out.Difficulty = cfg.Settings.DefaultDifficulty
	}
	for i, sc := range out.Schemes {
		if sc != cfg.ControlSchemeA && sc != cfg.ControlSchemeB {
			out.Schemes[i] = Defaults().Schemes[i]
		}
	}
	return out, nil
}

// Save writes v.
func (s *Store) Save(v Settings) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}
