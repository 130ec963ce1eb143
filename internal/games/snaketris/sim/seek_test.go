package sim

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/board"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

func TestChooseDirectionPrefersWrap(t *testing.T) {
	b := board.NewSized(grid.New(20), 400, 400)

	// Direct route is 340 to the right, wrapping left is 60
	got := ChooseDirection(vec(-170, 10), vec(170, 10), Up, b, nil)
	if got != Left {
		t.Errorf("ChooseDirection = %v, want left through the edge", got)
	}

	got = ChooseDirection(vec(-50, 10), vec(50, 10), Up, b, nil)
	if got != Right {
		t.Errorf("ChooseDirection = %v, want right for the direct route", got)
	}

	got = ChooseDirection(vec(10, 170), vec(10, -170), Right, b, nil)
	if got != Up {
		t.Errorf("ChooseDirection = %v, want up through the top edge", got)
	}
}

func TestChooseDirectionLargerAxisFirst(t *testing.T) {
	b := board.NewSized(grid.New(20), 400, 400)

	if got := ChooseDirection(vec(10, 10), vec(30, 110), Right, b, nil); got != Up {
		t.Errorf("ChooseDirection = %v, want up", got)
	}
	if got := ChooseDirection(vec(10, 10), vec(110, -30), Up, b, nil); got != Right {
		t.Errorf("ChooseDirection = %v, want right", got)
	}
}

func TestChooseDirectionNeverReverses(t *testing.T) {
	b := board.NewSized(grid.New(20), 400, 400)

	// Target straight behind: skip Left, fall back to the minor axis
	got := ChooseDirection(vec(10, 10), vec(-90, 10), Right, b, nil)
	if got == Left {
		t.Error("chose the reversal of the current heading")
	}
	if got != Up {
		t.Errorf("ChooseDirection = %v, want up", got)
	}
}

func TestChooseDirectionAvoidsBlocked(t *testing.T) {
	b := board.NewSized(grid.New(20), 400, 400)
	walls := map[r2.Vec]bool{vec(30, 10): true, vec(10, 30): true}
	blocked := func(p r2.Vec) bool { return walls[p] }

	got := ChooseDirection(vec(10, 10), vec(110, 50), Right, b, blocked)
	if got != Down {
		t.Errorf("ChooseDirection = %v, want down", got)
	}

	all := func(r2.Vec) bool { return true }
	if got := ChooseDirection(vec(10, 10), vec(110, 50), Right, b, all); got != Right {
		t.Errorf("fully blocked should keep the heading, got %v", got)
	}
}

func TestArchetypeTargets(t *testing.T) {
	opts := bareOptions()
	opts.Food[FoodRegular] = 1
	opts.Food[FoodBeefy] = 1
	opts.Food[FoodEnergetic] = 1
	opts.Enemies = []EnemySpec{
		{Archetype: ArchetypeEater, Length: 1},
		{Archetype: ArchetypeGlutton, Length: 1},
		{Archetype: ArchetypeSpeedster, Length: 1},
		{Archetype: ArchetypeKiller, Length: 1},
	}
	w := newTestWorld(t, opts)

	foods := map[FoodKind]r2.Vec{
		FoodRegular:   vec(-30, 10),
		FoodBeefy:     vec(150, 150),
		FoodEnergetic: vec(-150, -150),
	}
	for _, f := range w.foods {
		f.Pos = foods[f.Kind]
	}
	place(w, w.Player(), vec(10, 90), Right, 1)
	for i := 1; i <= 4; i++ {
		place(w, w.Actor(ActorID(i)), vec(10, 10+float64(i)*-20), Right, 1)
	}

	cases := []struct {
		id   ActorID
		want r2.Vec
	}{
		{1, foods[FoodRegular]},
		{2, foods[FoodBeefy]},
		{3, foods[FoodEnergetic]},
	}
	for _, c := range cases {
		got, ok := w.pickTarget(w.Actor(c.id))
		if !ok || got != c.want {
			t.Errorf("%v target = %v, %v, want %v", w.Actor(c.id).Archetype, got, ok, c.want)
		}
	}

	// The killer sits at (10, -70); the speedster's head at (10, -50) is
	// closer than the energetic food
	got, ok := w.pickTarget(w.Actor(4))
	if !ok || got != vec(10, -50) {
		t.Errorf("killer target = %v, %v, want nearest rival head", got, ok)
	}
}

func TestTargetKeptWhenNothingQualifies(t *testing.T) {
	opts := bareOptions()
	opts.Enemies = []EnemySpec{{Archetype: ArchetypeGlutton, Length: 1, Speed: 0.5}}
	w := newTestWorld(t, opts)
	e := w.Actor(1)
	place(w, e, vec(10, 10), Right, 1)
	place(w, w.Player(), vec(-150, -150), Right, 1)
	e.target, e.hasTarget = vec(10, 150), true

	tick(w)
	if e.target != vec(10, 150) {
		t.Errorf("target = %v, want the previous target kept", e.target)
	}
	if e.Steering.Current() != Up {
		t.Errorf("heading = %v, want up toward the kept target", e.Steering.Current())
	}
}
