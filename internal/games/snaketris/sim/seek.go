package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/board"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

// seek retargets and steers every AI snake that just moved.
func (w *World) seek(advanced []ActorID, obstacles []Obstacle) {
	for _, id := range advanced {
		a := w.actors[id]
		if a.Player || !a.Snake() {
			continue
		}
		if t, ok := w.pickTarget(a); ok {
			a.target = t
			a.hasTarget = true
		}
		if !a.hasTarget {
			continue
		}
		pitch := w.lattice.Pitch
		blocked := func(next r2.Vec) bool {
			return Crashed(a.ID, next, obstacles, pitch)
		}
		a.Steering.Request(ChooseDirection(a.Head, a.target, a.Steering.Current(), w.board, blocked))
	}
}

// pickTarget finds the nearest thing the actor's archetype wants. It reports
// false when nothing qualifies, leaving the previous target in place.
func (w *World) pickTarget(a *Actor) (r2.Vec, bool) {
	var candidates []r2.Vec
	wantFood := func(k FoodKind) bool {
		switch a.Archetype {
		case ArchetypeEater:
			return true
		case ArchetypeKiller, ArchetypeSpeedster:
			return k == FoodEnergetic
		case ArchetypeGlutton:
			return k == FoodBeefy
		}
		return false
	}
	for _, f := range w.foods {
		if f.Placed && wantFood(f.Kind) {
			candidates = append(candidates, f.Pos)
		}
	}
	if a.Archetype == ArchetypeKiller {
		for _, other := range w.actors {
			if other.ID != a.ID && other.Snake() {
				candidates = append(candidates, other.Head)
			}
		}
	}
	return nearest(a.Head, candidates)
}

func nearest(from r2.Vec, candidates []r2.Vec) (r2.Vec, bool) {
	best, found := r2.Vec{}, false
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if d := grid.Distance(from, c); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// ChooseDirection picks a heading toward target on a wrapping board. The
// axis with the larger effective gap goes first; when crossing an edge is
// shorter than the direct route, the heading on that axis is reversed. The
// reversal of current is never chosen, and blocked next cells are skipped.
// If every candidate is blocked, current is kept.
func ChooseDirection(head, target r2.Vec, current Direction, b *board.Board, blocked func(r2.Vec) bool) Direction {
	horiz, dx := axisHeading(target.X-head.X, b.Width(), Right, Left)
	vert, dy := axisHeading(target.Y-head.Y, b.Height(), Up, Down)

	best, second := horiz, vert
	if dy > dx {
		best, second = vert, horiz
	}

	pitch := b.Lattice().Pitch
	for _, d := range [4]Direction{best, second, second.Opposite(), best.Opposite()} {
		if d == current.Opposite() {
			continue
		}
		if blocked != nil && blocked(b.Wrap(r2.Add(head, d.Step(pitch)))) {
			continue
		}
		return d
	}
	return current
}

// axisHeading returns the heading along one axis and the effective gap,
// taking the wrap route when it is shorter.
func axisHeading(delta, extent float64, pos, neg Direction) (Direction, float64) {
	d := pos
	if delta < 0 {
		d = neg
	}
	gap := math.Abs(delta)
	if gap > extent/2 {
		return d.Opposite(), extent - gap
	}
	return d, gap
}
