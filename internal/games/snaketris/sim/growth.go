package sim

import "gonum.org/v1/gonum/spatial/r2"

// Grow queues n segments for the actor, scaled by its satiety.
func (w *World) Grow(id ActorID, n int) {
	a := w.Actor(id)
	if a == nil || !a.Snake() || n <= 0 {
		return
	}
	a.Mods.Nourishment += n * (1 + a.Mods.Satiety)
}

// Shrink queues n segments for removal.
func (w *World) Shrink(id ActorID, n int) {
	a := w.Actor(id)
	if a == nil || !a.Snake() || n <= 0 {
		return
	}
	a.Mods.Hunger += n
}

// digest pays one segment of growth and one of hunger per move.
func (w *World) digest(advanced []ActorID, r *Report) {
	for _, id := range advanced {
		a := w.actors[id]
		if a.Mods.Nourishment > 0 {
			a.Mods.Nourishment--
			w.growOne(a)
			r.ScoreChanged = true
		}
		if a.Mods.Hunger > 0 && a.Snake() {
			a.Mods.Hunger--
			w.shrinkOne(a)
			r.ScoreChanged = true
		}
	}
}

// growOne appends a segment one cell behind the tail, opposite the heading.
func (w *World) growOne(a *Actor) {
	tail := a.Head
	if id, ok := a.Body.Tail(); ok {
		tail = w.segmentPos(id)
	}
	back := a.Steering.Current().Opposite().Step(w.lattice.Pitch)
	a.Body.PushTail(w.spawnSegment(a.ID, w.board.Wrap(r2.Add(tail, back))))
	a.addScore(1)
}

// shrinkOne drops the tail. A snake that cannot lose another segment dies.
func (w *World) shrinkOne(a *Actor) {
	id, ok := a.Body.PopTail()
	if !ok {
		w.log.Info("starved", "actor", a.Name)
		w.kill(a)
		return
	}
	w.despawn(id)
	a.addScore(-1)
}

// kill starts the dying sequence. Modifiers belong to the living and are
// dropped.
func (w *World) kill(a *Actor) {
	if a.Phase != Alive {
		return
	}
	a.Phase = Dying
	a.Deaths++
	a.Mods = Modifiers{}
	a.hasTarget = false
	a.Cooldown.SetPeriod(w.moveCooldown(a), w.opts.MinCooldown)
}
