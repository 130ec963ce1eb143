package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

// Obstacle is anything a snake head can crash into.
type Obstacle struct {
	Owner ActorID
	Pos   r2.Vec
	Head  bool
}

// FirstHit returns the first obstacle closer than one pitch to head. An
// actor's own head is never an obstacle to itself; its body is.
func FirstHit(self ActorID, head r2.Vec, obstacles []Obstacle, pitch float64) (Obstacle, bool) {
	for _, o := range obstacles {
		if o.Head && o.Owner == self {
			continue
		}
		if grid.Distance(head, o.Pos) < pitch {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Crashed reports whether head collides with any obstacle.
func Crashed(self ActorID, head r2.Vec, obstacles []Obstacle, pitch float64) bool {
	_, hit := FirstHit(self, head, obstacles, pitch)
	return hit
}

// obstacles snapshots every living head, segment, block part, and settled
// cell. A dying snake's head is hidden and does not block.
func (w *World) obstacles() []Obstacle {
	var out []Obstacle
	for _, a := range w.actors {
		if a.Phase == Dead {
			continue
		}
		if a.Kind == KindBlock {
			if a.block != nil {
				for _, id := range a.block.parts {
					out = append(out, Obstacle{Owner: a.ID, Pos: w.segmentPos(id)})
				}
			}
			continue
		}
		if a.Phase == Alive {
			out = append(out, Obstacle{Owner: a.ID, Pos: a.Head, Head: true})
		}
		for id := range a.Body.All() {
			out = append(out, Obstacle{Owner: a.ID, Pos: w.segmentPos(id)})
		}
	}
	for c := range w.placed {
		out = append(out, Obstacle{Owner: NoActor, Pos: w.lattice.Center(c)})
	}
	return out
}

// collide kills every advanced snake whose head hit something. Positions are
// taken from one snapshot, so two heads meeting both die.
func (w *World) collide(advanced []ActorID, obstacles []Obstacle, r *Report) {
	for _, id := range advanced {
		a := w.actors[id]
		if !a.Snake() || a.Mods.Invulnerable() {
			continue
		}
		hit, ok := FirstHit(id, a.Head, obstacles, w.lattice.Pitch)
		if !ok {
			continue
		}
		if hit.Owner != NoActor && hit.Owner != id {
			w.actors[hit.Owner].Kills++
		}
		w.log.Info("crashed", "actor", a.Name, "into", w.ownerName(hit.Owner))
		w.kill(a)
		r.Crashed = append(r.Crashed, id)
	}
}

func (w *World) ownerName(id ActorID) string {
	if a := w.Actor(id); a != nil {
		return a.Name
	}
	return "block"
}
