// Package config provides YAML-based game configuration loading and
// per-stage difficulty management.
package config

// GalagaConfig contains all configuration for the game.
type GalagaConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Attack     AttackConfig     `yaml:"attack"`
	Shots      ShotConfig       `yaml:"shots"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig defines lives and stage parameters.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`          // Ships at start, the one in play included
	StartStage    int `yaml:"start_stage"`    // First stage, 0-based
	RushThreshold int `yaml:"rush_threshold"` // Enemies left when rush mode starts
	FPS           int `yaml:"fps"`            // Simulation frames per second
}

// AttackConfig defines the attacker scheduler at the easiest level.
type AttackConfig struct {
	Cooldown     int `yaml:"cooldown"`      // Frames between two dives
	InitialWait  int `yaml:"initial_wait"`  // Frames before the first dive of a stage
	MaxAttackers int `yaml:"max_attackers"` // Concurrent divers
}

// ShotConfig defines enemy bullet speed in pixels per frame.
type ShotConfig struct {
	MinSpeed float64 `yaml:"min_speed"` // Speed on the first stage
	MaxSpeed float64 `yaml:"max_speed"` // Speed from MaxStage on
	MaxStage int     `yaml:"max_stage"` // Stage where the speed stops growing
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage" or "none"
	MaxAt int    `yaml:"max_at"` // Stage at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	CooldownReduction int `yaml:"cooldown_reduction"` // Cooldown frames removed at max difficulty
	ExtraAttackers    int `yaml:"extra_attackers"`    // Divers added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset maps a flag value to a preset. Unknown names report false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
