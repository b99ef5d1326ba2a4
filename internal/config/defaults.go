package config

import (
	_ "embed"
)

//go:embed defaults/galaga.yaml
var defaultGalagaYAML []byte

// DefaultGalagaConfig returns the default configuration.
func DefaultGalagaConfig() GalagaConfig {
	return GalagaConfig{
		Gameplay: GameplayConfig{
			Lives:         3,
			StartStage:    0,
			RushThreshold: 5,
			FPS:           60,
		},
		Attack: AttackConfig{
			Cooldown:     120,
			InitialWait:  60,
			MaxAttackers: 2,
		},
		Shots: ShotConfig{
			MinSpeed: 2.5,
			MaxSpeed: 4.0,
			MaxStage: 64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 32,
			},
			Scaling: ScalingConfig{
				CooldownReduction: 90,
				ExtraAttackers:    1,
			},
		},
	}
}
