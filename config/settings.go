package config

// Difficulty selects the combo and charge input policy.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// SettingsConfig contains defaults for persisted player preferences.
type SettingsConfig struct {
	AppName           string
	DefaultDifficulty Difficulty
}

var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:           "pillbrawl",
		DefaultDifficulty: DifficultyEasy,
	}
}
