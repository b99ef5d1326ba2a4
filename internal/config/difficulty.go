package config

import "math"

// DifficultyManager calculates per-stage game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a stage.
func (d *DifficultyManager) Level(stage int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "stage" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(stage)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Cooldown returns the frames between dives for a stage.
func (d *DifficultyManager) Cooldown(base, stage int) int {
	level := d.Level(stage)
	result := base - int(level*float64(d.cfg.Scaling.CooldownReduction))
	if result < 10 { // Keep dives apart
		result = 10
	}
	return result
}

// Attackers returns how many enemies may dive at once on a stage.
func (d *DifficultyManager) Attackers(base, stage int) int {
	level := d.Level(stage)
	return base + int(math.Round(level*float64(d.cfg.Scaling.ExtraAttackers)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
