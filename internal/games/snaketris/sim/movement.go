package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// move advances every snake whose cooldown elapsed and returns them in actor
// order. Dying snakes use the same cadence to shed their tail.
func (w *World) move(dt time.Duration, r *Report) []ActorID {
	var advanced []ActorID
	for _, a := range w.actors {
		if a.Kind != KindSnake || a.Phase == Dead {
			continue
		}
		if !a.Cooldown.Tick(dt) {
			continue
		}
		if a.Phase == Dying {
			w.shed(a)
			continue
		}
		w.advance(a)
		advanced = append(advanced, a.ID)
	}
	r.Moved = advanced
	return advanced
}

// advance moves the head one cell and drags the body along: the tail segment
// jumps to where the head was, so only one segment changes position.
func (w *World) advance(a *Actor) {
	dir := a.Steering.Resolve()
	prev := a.Head
	a.Head = w.board.Wrap(r2.Add(prev, dir.Step(w.lattice.Pitch)))

	if id, ok := a.Body.Rotate(); ok {
		w.segments[id].pos = prev
	} else if id, ok := a.Body.Head(); ok {
		w.segments[id].pos = prev
	}
}

func (w *World) shed(a *Actor) {
	if id, ok := a.Body.Shed(); ok {
		w.despawn(id)
		return
	}
	a.Phase = Dead
	a.Kind = KindSnake
	w.log.Debug("actor gone", "actor", a.Name)
}
