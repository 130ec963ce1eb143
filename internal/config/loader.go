package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnaketris loads snaketris configuration.
// Search order: customPath -> ~/.snaketris/configs/snaketris.yaml -> ./configs/snaketris.yaml -> embedded default
func LoadSnaketris(customPath string) (SnaketrisConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultSnaketrisConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("snaketris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultSnaketrisConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "snaketris.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultSnaketrisConfig()
	}

	var embedded SnaketrisConfig
	if err := yaml.Unmarshal(defaultSnaketrisYAML, &embedded); err != nil {
		return DefaultSnaketrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// ApplySnaketrisPreset modifies the config based on a difficulty preset.
func ApplySnaketrisPreset(cfg *SnaketrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate reports the first value that would make a match unplayable.
func (c SnaketrisConfig) Validate() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("board.cell_size must be positive, got %v", c.Board.CellSize)
	}
	if c.Board.ViewportFraction <= 0 || c.Board.ViewportFraction > 1 {
		return fmt.Errorf("board.viewport_fraction must be in (0, 1], got %v", c.Board.ViewportFraction)
	}
	if c.Movement.MinCooldownMs <= 0 || c.Movement.MaxCooldownMs < c.Movement.MinCooldownMs {
		return fmt.Errorf("movement cooldowns must satisfy 0 < min <= max, got min=%d max=%d",
			c.Movement.MinCooldownMs, c.Movement.MaxCooldownMs)
	}
	if c.Player.InitialLength < 1 {
		return fmt.Errorf("player.initial_length must be at least 1, got %d", c.Player.InitialLength)
	}
	for i, e := range c.Enemies {
		switch e.Archetype {
		case "eater", "killer", "speedster", "glutton":
		default:
			return fmt.Errorf("enemies[%d]: unknown archetype %q", i, e.Archetype)
		}
		if e.Count < 0 || e.InitialLength < 1 {
			return fmt.Errorf("enemies[%d]: count must be >= 0 and initial_length >= 1", i)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaketris", "configs", filename)
}
