package config

import (
	_ "embed"
)

//go:embed defaults/snaketris.yaml
var defaultSnaketrisYAML []byte

// DefaultSnaketrisConfig returns the default snaketris configuration.
func DefaultSnaketrisConfig() SnaketrisConfig {
	return SnaketrisConfig{
		Board: BoardConfig{
			CellSize:         20,
			ViewportFraction: 1.0,
		},
		Movement: MovementConfig{
			MaxCooldownMs: 200,
			MinCooldownMs: 5,
		},
		Player: PlayerConfig{
			Name:          "Player",
			InitialLength: 4,
			Speed:         0.5,
			Color:         "#73aa73",
		},
		Enemies: []EnemyConfig{
			{Archetype: "eater", Count: 2, InitialLength: 4, Speed: 0.35},
			{Archetype: "killer", Count: 1, InitialLength: 4, Speed: 0.4},
			{Archetype: "speedster", Count: 1, InitialLength: 3, Speed: 0.3},
			{Archetype: "glutton", Count: 1, InitialLength: 5, Speed: 0.3},
		},
		Food: FoodConfig{
			Regular:   6,
			Beefy:     2,
			Energetic: 2,
			Frozen:    1,
			Special:   1,
		},
		Effects: EffectsConfig{
			MaxSatietyLevel:       3,
			MaxSwiftnessLevel:     3,
			MaxFreezeLevel:        3,
			FreezeSeconds:         2,
			InvincibilitySeconds:  3,
			SwiftnessDecaySeconds: 8,
		},
		Tetris: TetrisConfig{
			Enabled:           true,
			FallCooldownMs:    250,
			GravityCooldownMs: 400,
			AIMoveCooldownMs:  120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				ExtraEnemies:    2,
			},
		},
	}
}

// ClassicConfig strips a config down to a lone snake: no enemies and no
// falling blocks.
func ClassicConfig(cfg SnaketrisConfig) SnaketrisConfig {
	cfg.Enemies = nil
	cfg.Tetris.Enabled = false
	cfg.Food.Frozen = 0
	cfg.Difficulty.Scaling.ExtraEnemies = 0
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snaketris", "snaketris_classic":
		return defaultSnaketrisYAML
	default:
		return nil
	}
}
