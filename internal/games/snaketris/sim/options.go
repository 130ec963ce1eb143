package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/snaketris/internal/config"
)

// PlayerSpec describes the human-controlled snake.
type PlayerSpec struct {
	Name   string
	Length int // body segments behind the head
	Speed  float64
	Color  colorful.Color
}

// EnemySpec describes one AI snake.
type EnemySpec struct {
	Archetype Archetype
	Length    int
	Speed     float64
}

// TetrisOptions configures the falling-block phase dead actors pass through.
type TetrisOptions struct {
	Enabled bool
	Fall    time.Duration
	Gravity time.Duration
	AIMove  time.Duration
}

// Options configures a World.
type Options struct {
	Pitch            float64
	ViewportFraction float64

	MaxCooldown time.Duration
	MinCooldown time.Duration

	Player  PlayerSpec
	Enemies []EnemySpec
	Food    [foodKinds]int

	MaxSatiety     int
	MaxSwiftness   int
	MaxFreeze      int
	FreezeBase     time.Duration
	Invincibility  time.Duration
	SwiftnessDecay time.Duration

	Tetris TetrisOptions

	// Difficulty ramps enemy speed and roster size from the player's score.
	// Nil keeps both fixed.
	Difficulty *config.DifficultyManager

	Seed   int64
	Logger *log.Logger
}

// DefaultOptions returns options built from the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultSnaketrisConfig())
}

// OptionsFromConfig converts a loaded configuration into world options.
func OptionsFromConfig(cfg config.SnaketrisConfig) Options {
	opts := Options{
		Pitch:            cfg.Board.CellSize,
		ViewportFraction: cfg.Board.ViewportFraction,
		MaxCooldown:      time.Duration(cfg.Movement.MaxCooldownMs) * time.Millisecond,
		MinCooldown:      time.Duration(cfg.Movement.MinCooldownMs) * time.Millisecond,
		Player: PlayerSpec{
			Name:   cfg.Player.Name,
			Length: cfg.Player.InitialLength,
			Speed:  cfg.Player.Speed,
			Color:  ParseColor(cfg.Player.Color, playerColor),
		},
		MaxSatiety:     cfg.Effects.MaxSatietyLevel,
		MaxSwiftness:   cfg.Effects.MaxSwiftnessLevel,
		MaxFreeze:      cfg.Effects.MaxFreezeLevel,
		FreezeBase:     seconds(cfg.Effects.FreezeSeconds),
		Invincibility:  seconds(cfg.Effects.InvincibilitySeconds),
		SwiftnessDecay: seconds(cfg.Effects.SwiftnessDecaySeconds),
		Tetris: TetrisOptions{
			Enabled: cfg.Tetris.Enabled,
			Fall:    time.Duration(cfg.Tetris.FallCooldownMs) * time.Millisecond,
			Gravity: time.Duration(cfg.Tetris.GravityCooldownMs) * time.Millisecond,
			AIMove:  time.Duration(cfg.Tetris.AIMoveCooldownMs) * time.Millisecond,
		},
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	opts.Food[FoodRegular] = cfg.Food.Regular
	opts.Food[FoodBeefy] = cfg.Food.Beefy
	opts.Food[FoodEnergetic] = cfg.Food.Energetic
	opts.Food[FoodFrozen] = cfg.Food.Frozen
	opts.Food[FoodSpecial] = cfg.Food.Special

	for _, e := range cfg.Enemies {
		arch, ok := ParseArchetype(e.Archetype)
		if !ok {
			continue
		}
		for range e.Count {
			opts.Enemies = append(opts.Enemies, EnemySpec{Archetype: arch, Length: e.InitialLength, Speed: e.Speed})
		}
	}
	return opts
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// normalize fills unusable values with working ones.
func (o *Options) normalize() {
	if o.Pitch <= 0 {
		o.Pitch = 20
	}
	if o.MinCooldown <= 0 {
		o.MinCooldown = 5 * time.Millisecond
	}
	if o.MaxCooldown < o.MinCooldown {
		o.MaxCooldown = 200 * time.Millisecond
	}
	o.Player.Length = max(o.Player.Length, 1)
	if o.Player.Name == "" {
		o.Player.Name = "Player"
	}
	for i := range o.Enemies {
		o.Enemies[i].Length = max(o.Enemies[i].Length, 1)
	}
	if o.Tetris.Fall <= 0 {
		o.Tetris.Fall = 250 * time.Millisecond
	}
	if o.Tetris.Gravity <= 0 {
		o.Tetris.Gravity = 400 * time.Millisecond
	}
	if o.Tetris.AIMove <= 0 {
		o.Tetris.AIMove = 120 * time.Millisecond
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}
