// Package config provides YAML-based game configuration loading and
// difficulty management for snaketris.
package config

// SnaketrisConfig contains all configuration for a snaketris match.
type SnaketrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Movement   MovementConfig   `yaml:"movement"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    []EnemyConfig    `yaml:"enemies"`
	Food       FoodConfig       `yaml:"food"`
	Effects    EffectsConfig    `yaml:"effects"`
	Tetris     TetrisConfig     `yaml:"tetris"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the lattice and how much of the viewport the board takes.
type BoardConfig struct {
	CellSize         float64 `yaml:"cell_size"`
	ViewportFraction float64 `yaml:"viewport_fraction"`
}

// MovementConfig bounds the per-actor move cooldown.
type MovementConfig struct {
	MaxCooldownMs int `yaml:"max_cooldown_ms"`
	MinCooldownMs int `yaml:"min_cooldown_ms"`
}

// PlayerConfig defines the human-controlled snake.
type PlayerConfig struct {
	Name          string  `yaml:"name"`
	InitialLength int     `yaml:"initial_length"`
	Speed         float64 `yaml:"speed"` // 0.0 = slowest, 1.0 = fastest
	Color         string  `yaml:"color"`
}

// EnemyConfig spawns Count AI snakes of one archetype.
type EnemyConfig struct {
	Archetype     string  `yaml:"archetype"` // eater, killer, speedster, glutton
	Count         int     `yaml:"count"`
	InitialLength int     `yaml:"initial_length"`
	Speed         float64 `yaml:"speed"`
}

// FoodConfig sets how many food items of each kind are on the board.
type FoodConfig struct {
	Regular   int `yaml:"regular"`
	Beefy     int `yaml:"beefy"`
	Energetic int `yaml:"energetic"`
	Frozen    int `yaml:"frozen"`
	Special   int `yaml:"special"`
}

// EffectsConfig defines modifier caps and durations.
type EffectsConfig struct {
	MaxSatietyLevel       int     `yaml:"max_satiety_level"`
	MaxSwiftnessLevel     int     `yaml:"max_swiftness_level"`
	MaxFreezeLevel        int     `yaml:"max_freeze_level"`
	FreezeSeconds         float64 `yaml:"freeze_seconds"`
	InvincibilitySeconds  float64 `yaml:"invincibility_seconds"`
	SwiftnessDecaySeconds float64 `yaml:"swiftness_decay_seconds"`
}

// TetrisConfig controls the falling-block sub-game dead actors join.
type TetrisConfig struct {
	Enabled           bool `yaml:"enabled"`
	FallCooldownMs    int  `yaml:"fall_cooldown_ms"`
	GravityCooldownMs int  `yaml:"gravity_cooldown_ms"`
	AIMoveCooldownMs  int  `yaml:"ai_move_cooldown_ms"`
}

// DifficultyConfig defines how enemy speed ramps up during a match.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Additional eaters spawned at max difficulty
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
