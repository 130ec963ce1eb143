package sim

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

// FoodKind selects the effect a food has on whoever eats it.
type FoodKind int

const (
	FoodRegular   FoodKind = iota // grow one
	FoodBeefy                     // raise satiety, grow two
	FoodEnergetic                 // raise swiftness, shrink one
	FoodFrozen                    // freeze every other living actor
	FoodSpecial                   // grow one, turn invincible
	foodKinds
)

var foodNames = [foodKinds]string{"regular", "beefy", "energetic", "frozen", "special"}

func (k FoodKind) String() string {
	if k < 0 || k >= foodKinds {
		return "unknown"
	}
	return foodNames[k]
}

var foodColors = [foodKinds]colorful.Color{
	FoodRegular:   {R: 0.7, G: 0.4, B: 1.0},
	FoodBeefy:     {R: 1.0, G: 0.25, B: 0.6},
	FoodEnergetic: {R: 1.0, G: 0.85, B: 0.0},
	FoodFrozen:    {R: 0.45, G: 0.75, B: 1.0},
	FoodSpecial:   {R: 1.0, G: 1.0, B: 1.0},
}

// Food is an edible item sitting on one cell.
type Food struct {
	Kind   FoodKind
	Pos    r2.Vec
	Placed bool
}

// Meal records one food eaten during a frame.
type Meal struct {
	Actor ActorID
	Food  FoodKind
}

// eat lets every food be eaten by at most one advanced snake per frame. The
// first actor in advance order wins and the food moves once.
func (w *World) eat(advanced []ActorID, r *Report) {
	pitch := w.lattice.Pitch
	for _, f := range w.foods {
		if !f.Placed {
			continue
		}
		for _, id := range advanced {
			a := w.actors[id]
			if !a.Snake() || grid.Distance(a.Head, f.Pos) >= pitch {
				continue
			}
			w.feed(a, f.Kind)
			a.Meals++
			r.Meals = append(r.Meals, Meal{Actor: id, Food: f.Kind})
			w.placeFood(f)
			break
		}
	}
}

// feed applies the effect of one food kind.
func (w *World) feed(a *Actor, kind FoodKind) {
	switch kind {
	case FoodRegular:
		w.Grow(a.ID, 1)
	case FoodBeefy:
		a.Mods.Satiety = min(a.Mods.Satiety+1, w.opts.MaxSatiety)
		w.Grow(a.ID, 2)
	case FoodEnergetic:
		a.Mods.Swiftness = min(a.Mods.Swiftness+1, w.opts.MaxSwiftness)
		a.Mods.swiftAge = 0
		w.Shrink(a.ID, 1)
	case FoodFrozen:
		for _, other := range w.actors {
			if other.ID != a.ID && other.Living() {
				w.freeze(other)
			}
		}
	case FoodSpecial:
		w.Grow(a.ID, 1)
		a.Mods.Invincible = w.opts.Invincibility
	}
	w.log.Debug("ate", "actor", a.Name, "food", kind)
}

// placeFood moves f to a random free cell. With no free cell the food is
// taken off the board and retried next frame.
func (w *World) placeFood(f *Food) {
	pos, ok := w.randomFreeCell(w.occupied())
	if !ok {
		if f.Placed {
			w.log.Warn("no free cell for food", "kind", f.Kind)
		}
		f.Placed = false
		return
	}
	f.Pos = pos
	f.Placed = true
}

func (w *World) placeMissingFood() {
	for _, f := range w.foods {
		if !f.Placed {
			w.placeFood(f)
		}
	}
}
