package sim

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/body"
)

// bareOptions is a quiet world: no enemies, no food, no tetris.
func bareOptions() Options {
	return Options{
		Pitch:            20,
		ViewportFraction: 1,
		MaxCooldown:      200 * time.Millisecond,
		MinCooldown:      5 * time.Millisecond,
		Player:           PlayerSpec{Name: "P", Length: 3, Speed: 0.5, Color: playerColor},
		MaxSatiety:       3,
		MaxSwiftness:     3,
		MaxFreeze:        3,
		FreezeBase:       2 * time.Second,
		Invincibility:    3 * time.Second,
		SwiftnessDecay:   8 * time.Second,
		Seed:             1,
	}
}

// newTestWorld builds a 400x400 world and runs one empty frame so every
// actor and food is on the board.
func newTestWorld(t *testing.T, opts Options) *World {
	t.Helper()
	w := New(opts)
	if !w.Resize(400, 400) {
		t.Fatal("Resize(400, 400) failed")
	}
	w.Step(0, Input{})
	return w
}

// place puts a living snake at head facing dir with length body segments
// trailing straight behind it.
func place(w *World, a *Actor, head r2.Vec, dir Direction, length int) {
	for _, id := range a.Body.Clear() {
		w.despawn(id)
	}
	if a.block != nil {
		for _, id := range a.block.parts {
			w.despawn(id)
		}
		a.block = nil
	}
	w.flush()

	a.Kind = KindSnake
	a.Phase = Alive
	a.fresh = false
	a.Head = head
	a.Body = body.New()
	back := dir.Opposite().Step(w.lattice.Pitch)
	p := head
	for range length {
		p = w.board.Wrap(r2.Add(p, back))
		a.Body.PushTail(w.spawnSegment(a.ID, p))
	}
	a.Steering = NewSteering(dir)
	a.Mods = Modifiers{}
	a.Cooldown = NewCooldown(w.moveCooldown(a))
}

// tick steps exactly one move period of the player.
func tick(w *World) Report {
	return w.Step(w.Player().Cooldown.Period(), Input{})
}

func vec(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}
