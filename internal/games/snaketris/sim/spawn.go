package sim

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/body"
)

// respawn brings dead actors back. Enemies return on their own in a fresh
// random color; the player waits for a request unless it is entering the
// match or owed a snake after landing as a block. With tetris enabled a dead
// actor comes back as a block.
func (w *World) respawn(requested bool) {
	for _, a := range w.actors {
		if a.Phase != Dead {
			continue
		}
		if a.Player && !a.fresh && !a.snakify && !requested {
			continue
		}
		var ok bool
		if a.fresh || a.snakify || !w.opts.Tetris.Enabled {
			ok = w.spawnSnake(a, a.snakify)
		} else {
			ok = w.spawnBlock(a)
		}
		if !ok {
			continue
		}
		if !a.Player && !a.fresh && !a.snakify {
			a.Color = BrightColor(w.rng)
		}
		a.fresh = false
		a.snakify = false
	}
}

// spawnSnake places a on a random run of free cells long enough for its
// head and body. It logs and reports false when the board has no such run.
func (w *World) spawnSnake(a *Actor, invincible bool) bool {
	dir := Right
	if !a.Player {
		dir = Directions[w.rng.Intn(len(Directions))]
	}
	back := dir.Opposite().Step(w.lattice.Pitch)
	occ := w.occupied()

	var heads []r2.Vec
	for c := range w.board.Cells() {
		free := true
		p := c
		for range a.Length + 1 {
			if _, taken := occ[w.lattice.Index(p)]; taken {
				free = false
				break
			}
			p = w.board.Wrap(r2.Add(p, back))
		}
		if free {
			heads = append(heads, c)
		}
	}
	if len(heads) == 0 {
		w.log.Warn("no room to spawn", "actor", a.Name, "length", a.Length+1)
		return false
	}

	a.Head = heads[w.rng.Intn(len(heads))]
	a.Body = body.New()
	p := a.Head
	for range a.Length {
		p = w.board.Wrap(r2.Add(p, back))
		a.Body.PushTail(w.spawnSegment(a.ID, p))
	}
	a.Kind = KindSnake
	a.Phase = Alive
	a.block = nil
	a.hasTarget = false
	a.Steering = NewSteering(dir)
	a.Mods = Modifiers{}
	if invincible {
		a.Mods.Invincible = w.opts.Invincibility
	}
	a.Cooldown = NewCooldown(w.moveCooldown(a))
	w.log.Debug("spawned", "actor", a.Name, "x", a.Head.X, "y", a.Head.Y, "dir", dir)
	return true
}

var snakeNames = []string{
	"Slytherin", "Serpentine", "Noodle", "Fang", "Scales",
	"Hiss", "Viper", "Cobra", "Python", "Rattles",
	"Basilisk", "Kaa", "Slinky", "Slippy", "Scaly",
	"Anaconda", "Medusa", "Sidewinder", "Boa", "Adder",
	"Monty", "Garter", "Coil", "Stripes", "Fangs",
	"Venom", "Constrictor", "Mamba", "Diamondback", "Zara",
	"Quetzalcoatl", "Slither", "Twister", "Sly", "Slink",
	"Glider", "Glissando", "Marauder", "Leviathan", "Nachash",
	"Wraps", "Wriggles", "Twists", "Tailspin", "Noodles",
	"Screech", "Sizzle", "Shaker", "Vicious", "Jaws",
}

func shuffledNames(rng *rand.Rand) []string {
	names := make([]string, len(snakeNames))
	for i, j := range rng.Perm(len(snakeNames)) {
		names[i] = snakeNames[j]
	}
	return names
}
