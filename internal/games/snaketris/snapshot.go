package snaketris

import "github.com/vovakirdan/snaketris/internal/games/snaketris/sim"

// StateType represents the player's situation in the match.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateBlock       StateType = "block"
	StateDying       StateType = "dying"
	StateDead        StateType = "dead"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the match state for determinism testing and replay.
type Snapshot struct {
	Frame      uint64
	Mode       string
	Score      int
	Length     int
	HeadX      float64
	HeadY      float64
	Dir        sim.Direction
	Enemies    int
	EnemyScore int // sum over every enemy
	Foods      int // foods currently on the board
	Settled    int
	State      StateType
}

// Snapshot returns the current match snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	p := g.world.Player()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.world.Paused():
		state = StatePaused
	case p.Phase == sim.Dead:
		state = StateDead
	case p.Phase == sim.Dying:
		state = StateDying
	case p.Kind == sim.KindBlock:
		state = StateBlock
	}

	snap := Snapshot{
		Frame:   g.world.Frame(),
		Mode:    string(g.mode),
		Score:   p.Score,
		Length:  p.Len(),
		HeadX:   p.Head.X,
		HeadY:   p.Head.Y,
		Dir:     p.Steering.Current(),
		Settled: g.world.SettledCells(),
		State:   state,
	}
	for _, a := range g.world.Actors() {
		if a.Player {
			continue
		}
		snap.Enemies++
		snap.EnemyScore += a.Score
	}
	for _, f := range g.world.Foods() {
		if f.Placed {
			snap.Foods++
		}
	}
	return snap
}
