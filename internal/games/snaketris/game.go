// Package snaketris adapts the snaketris simulation to the platform's game
// interface: it loads configuration, maps input actions, and draws the
// world into a character screen.
package snaketris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snaketris/internal/config"
	"github.com/vovakirdan/snaketris/internal/core"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/sim"
	"github.com/vovakirdan/snaketris/internal/registry"
)

// Mode selects the rule set.
type Mode string

const (
	ModeArcade  Mode = "snaketris"
	ModeClassic Mode = "snaketris_classic"
)

const hudHeight = 2

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		difficultyPreset = p
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetLogger routes simulation logs. Nil silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game runs one snaketris match.
type Game struct {
	mode    Mode
	cfg     config.SnaketrisConfig
	world   *sim.World
	runtime core.RuntimeConfig
	dt      time.Duration

	screenW  int
	screenH  int
	tooSmall bool
	last     sim.Report
}

// New creates a full snaketris match: rival snakes and falling blocks.
func New() *Game {
	return &Game{mode: ModeArcade}
}

// NewClassic creates a lone-snake match.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register(string(ModeArcade), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Snaketris (Classic)"
	}
	return "Snaketris"
}

// LoadConfig resolves the configuration a match of this mode would use.
func (g *Game) LoadConfig() config.SnaketrisConfig {
	cfg, err := config.LoadSnaketris(configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultSnaketrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnaketrisPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeClassic {
		cfg = config.ClassicConfig(cfg)
	}
	return cfg
}

// Reset initializes or restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.LoadConfig()
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.dt = time.Second / time.Duration(runtime.TickRate)

	opts := sim.OptionsFromConfig(g.cfg)
	opts.Seed = runtime.Seed
	opts.Logger = logger
	g.world = sim.New(opts)
	g.last = sim.Report{}
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize fits the board to a new screen without restarting. Each world
// cell is two columns wide and one row tall, inside a one-cell border.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	pitch := g.cfg.Board.CellSize
	vw := float64((screenW-2)/2) * pitch
	vh := float64(screenH-hudHeight-2) * pitch
	g.tooSmall = !g.world.Resize(vw, vh)
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	input := sim.Input{
		TogglePause: in.Has(core.ActionPause),
		Respawn:     in.Has(core.ActionRespawn),
		Grow:        in.Has(core.ActionGrow),
		Shrink:      in.Has(core.ActionShrink),
	}
	for _, a := range in.Order {
		if d, ok := turnFor(a); ok {
			input.Turns = append(input.Turns, d)
		}
	}
	g.last = g.world.Step(g.dt, input)
	return core.StepResult{State: g.State(), ScoreChanged: g.last.ScoreChanged}
}

func turnFor(a core.Action) (sim.Direction, bool) {
	switch a {
	case core.ActionUp:
		return sim.Up, true
	case core.ActionDown:
		return sim.Down, true
	case core.ActionLeft:
		return sim.Left, true
	case core.ActionRight:
		return sim.Right, true
	}
	return 0, false
}

// State returns the player's view of the match.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	p := g.world.Player()
	return core.GameState{
		Score:    p.Score,
		Length:   p.Len(),
		GameOver: p.Phase == sim.Dead && p.Spawned(),
		Paused:   g.world.Paused(),
	}
}

// Standings returns the top n actors for the live scoreboard.
func (g *Game) Standings(n int) []core.Standing {
	if g.world == nil {
		return nil
	}
	entries := g.world.Scoreboard(n)
	out := make([]core.Standing, len(entries))
	for i, e := range entries {
		status := e.Phase.String()
		if e.Phase == sim.Alive && e.Kind == sim.KindBlock {
			status = "block"
		}
		out[i] = core.Standing{
			Name:   e.Name,
			Score:  e.Score,
			Status: status,
			Color:  core.Color(sim.Hex(e.Color)),
			Player: e.Player,
		}
	}
	return out
}

// Match returns the player's statistics so far.
func (g *Game) Match() core.MatchStats {
	if g.world == nil {
		return core.MatchStats{}
	}
	p := g.world.Player()
	return core.MatchStats{
		Score:     p.Score,
		MaxLength: p.MaxLength,
		Frames:    g.world.Frame(),
		Kills:     p.Kills,
		Deaths:    p.Deaths,
		Meals:     p.Meals,
	}
}

// LastReport returns what happened during the most recent step.
func (g *Game) LastReport() sim.Report {
	return g.last
}

// World exposes the simulation for headless drivers.
func (g *Game) World() *sim.World {
	return g.world
}
