// Package sim is the snaketris simulation: snakes moving on a wrapping
// lattice board, eating, growing, colliding, and turning into falling blocks
// when they die. It is deterministic for a given seed and sequence of frames.
package sim

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/board"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/body"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

var (
	playerColor = colorful.Color{R: 115.0 / 255, G: 170.0 / 255, B: 115.0 / 255}

	archetypeColors = map[Archetype]colorful.Color{
		ArchetypeEater:     {R: 90.0 / 255, G: 162.0 / 255, B: 250.0 / 255},
		ArchetypeKiller:    {R: 202.0 / 255, G: 98.0 / 255, B: 157.0 / 255},
		ArchetypeSpeedster: {R: 254.0 / 255, G: 227.0 / 255, B: 0},
		ArchetypeGlutton:   {R: 254.0 / 255, G: 165.0 / 255, B: 1.0 / 255},
	}
)

// Input is everything the player did since the previous frame.
type Input struct {
	Turns       []Direction // in arrival order
	TogglePause bool
	Respawn     bool
	Grow        bool
	Shrink      bool
}

// Report summarizes what happened during one frame.
type Report struct {
	Frame        uint64
	Moved        []ActorID
	Meals        []Meal
	Crashed      []ActorID
	Landed       []ActorID
	LinesCleared int
	ScoreChanged bool
}

type segment struct {
	pos   r2.Vec
	owner ActorID
	live  bool
}

type placedCell struct {
	color colorful.Color
	owner ActorID
}

// World owns every entity in a match. It is not safe for concurrent use.
type World struct {
	opts    Options
	log     *log.Logger
	rng     *rand.Rand
	lattice grid.Lattice
	board   *board.Board

	frame  uint64
	paused bool

	segments []segment
	free     []body.SegmentID
	doomed   []body.SegmentID

	actors  []*Actor
	foods   []*Food
	placed  map[grid.Cell]placedCell
	gravity Cooldown

	names []string
	extra int
}

// New creates a world with its roster and food but nothing on the board.
// Entities are placed on the first frame after the board gets an extent.
func New(opts Options) *World {
	opts.normalize()
	lattice := grid.New(opts.Pitch)
	w := &World{
		opts:    opts,
		log:     opts.Logger,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		lattice: lattice,
		board:   board.New(lattice, opts.ViewportFraction),
		placed:  make(map[grid.Cell]placedCell),
		gravity: NewCooldown(opts.Tetris.Gravity),
	}
	w.names = shuffledNames(w.rng)

	w.addActor(&Actor{
		Name:   opts.Player.Name,
		Player: true,
		Color:  opts.Player.Color,
		Speed:  opts.Player.Speed,
		Length: opts.Player.Length,
	})
	for _, e := range opts.Enemies {
		w.addEnemy(e)
	}

	for kind, n := range opts.Food {
		for range n {
			w.foods = append(w.foods, &Food{Kind: FoodKind(kind)})
		}
	}
	return w
}

func (w *World) addActor(a *Actor) *Actor {
	a.ID = ActorID(len(w.actors))
	a.Kind = KindSnake
	a.Phase = Dead
	a.fresh = true
	a.Body = body.New()
	a.Steering = NewSteering(Right)
	a.Cooldown = NewCooldown(w.opts.MaxCooldown)
	w.actors = append(w.actors, a)
	return a
}

func (w *World) addEnemy(e EnemySpec) *Actor {
	name := w.names[len(w.actors)%len(w.names)]
	return w.addActor(&Actor{
		Name:      name,
		Archetype: e.Archetype,
		Color:     archetypeColors[e.Archetype],
		Speed:     e.Speed,
		Length:    e.Length,
	})
}

// Resize fits the board to a viewport and pulls every entity back inside.
// It reports false when the viewport is unusable.
func (w *World) Resize(viewportW, viewportH float64) bool {
	if !w.board.Resize(viewportW, viewportH) {
		return false
	}
	for i := range w.segments {
		if w.segments[i].live {
			w.segments[i].pos = w.board.Clamp(w.segments[i].pos)
		}
	}
	for _, a := range w.actors {
		a.Head = w.board.Clamp(a.Head)
	}
	for _, f := range w.foods {
		f.Pos = w.board.Clamp(f.Pos)
	}
	if len(w.placed) > 0 {
		old := w.placed
		w.placed = make(map[grid.Cell]placedCell, len(old))
		for c, p := range old {
			w.placed[w.lattice.Index(w.board.Clamp(w.lattice.Center(c)))] = p
		}
	}
	w.log.Debug("board resized", "width", w.board.Width(), "height", w.board.Height())
	return true
}

// Step advances the simulation by dt.
func (w *World) Step(dt time.Duration, in Input) Report {
	if in.TogglePause {
		w.paused = !w.paused
	}
	r := Report{Frame: w.frame}
	if w.paused || !w.board.Ready() {
		return r
	}
	w.frame++
	r.Frame = w.frame

	w.applyInput(in, &r)
	w.tickEffects(dt)
	advanced := w.move(dt, &r)
	w.digest(advanced, &r)
	w.eat(advanced, &r)
	obstacles := w.obstacles()
	w.collide(advanced, obstacles, &r)
	w.seek(advanced, obstacles)
	if w.opts.Tetris.Enabled {
		w.tetris(dt, &r)
	}
	w.growRoster()
	w.respawn(in.Respawn)
	w.placeMissingFood()
	w.flush()

	for _, a := range w.actors {
		a.MaxLength = max(a.MaxLength, a.Len())
	}
	return r
}

func (w *World) applyInput(in Input, r *Report) {
	p := w.actors[0]
	if !p.Living() {
		return
	}
	for _, d := range in.Turns {
		if p.Kind == KindBlock {
			w.steerBlock(p, d, r)
			continue
		}
		p.Steering.Request(d)
	}
	if in.Grow {
		w.Grow(p.ID, 1)
	}
	if in.Shrink {
		w.Shrink(p.ID, 1)
	}
}

// growRoster adds eaters as difficulty rises.
func (w *World) growRoster() {
	if w.opts.Difficulty == nil {
		return
	}
	want := w.opts.Difficulty.ExtraEnemies(w.actors[0].Score, int(w.frame))
	for w.extra < want {
		a := w.addEnemy(EnemySpec{Archetype: ArchetypeEater, Length: 3, Speed: 0.35})
		w.extra++
		w.log.Info("enemy joined", "name", a.Name, "archetype", a.Archetype)
	}
}

func (w *World) spawnSegment(owner ActorID, pos r2.Vec) body.SegmentID {
	s := segment{pos: pos, owner: owner, live: true}
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.segments[id] = s
		return id
	}
	w.segments = append(w.segments, s)
	return body.SegmentID(len(w.segments) - 1)
}

// despawn queues a segment for removal at the end of the frame.
func (w *World) despawn(id body.SegmentID) {
	w.doomed = append(w.doomed, id)
}

func (w *World) flush() {
	for _, id := range w.doomed {
		w.segments[id].live = false
		w.free = append(w.free, id)
	}
	w.doomed = w.doomed[:0]
}

func (w *World) segmentPos(id body.SegmentID) r2.Vec {
	return w.segments[id].pos
}

// actorCells returns every cell holding a head, segment, or block part.
func (w *World) actorCells() map[grid.Cell]struct{} {
	occ := make(map[grid.Cell]struct{})
	mark := func(p r2.Vec) { occ[w.lattice.Index(p)] = struct{}{} }

	for _, a := range w.actors {
		if a.Phase == Dead {
			continue
		}
		if a.Kind == KindSnake {
			if a.Phase == Alive {
				mark(a.Head)
			}
			for id := range a.Body.All() {
				mark(w.segmentPos(id))
			}
		} else if a.block != nil {
			for _, id := range a.block.parts {
				mark(w.segmentPos(id))
			}
		}
	}
	return occ
}

// occupied extends actorCells with settled cells and food.
func (w *World) occupied() map[grid.Cell]struct{} {
	occ := w.actorCells()
	for c := range w.placed {
		occ[c] = struct{}{}
	}
	for _, f := range w.foods {
		if f.Placed {
			occ[w.lattice.Index(f.Pos)] = struct{}{}
		}
	}
	return occ
}

func (w *World) randomFreeCell(occ map[grid.Cell]struct{}) (r2.Vec, bool) {
	var free []r2.Vec
	for c := range w.board.Cells() {
		if _, taken := occ[w.lattice.Index(c)]; !taken {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return r2.Vec{}, false
	}
	return free[w.rng.Intn(len(free))], true
}

// Board returns the play field.
func (w *World) Board() *board.Board { return w.board }

// Frame returns the number of simulated frames.
func (w *World) Frame() uint64 { return w.frame }

// Paused reports whether Step is currently a no-op.
func (w *World) Paused() bool { return w.paused }

// Player returns the human-controlled actor.
func (w *World) Player() *Actor { return w.actors[0] }

// Actors returns every actor, player first. Callers must not modify them.
func (w *World) Actors() []*Actor { return w.actors }

// Actor returns the actor with the given id, or nil.
func (w *World) Actor(id ActorID) *Actor {
	if id < 0 || int(id) >= len(w.actors) {
		return nil
	}
	return w.actors[id]
}

// Foods returns a copy of every food item.
func (w *World) Foods() []Food {
	out := make([]Food, len(w.foods))
	for i, f := range w.foods {
		out[i] = *f
	}
	return out
}

// Segments returns the positions of an actor's body, head first.
func (w *World) Segments(id ActorID) []r2.Vec {
	a := w.Actor(id)
	if a == nil {
		return nil
	}
	var out []r2.Vec
	for s := range a.Body.All() {
		out = append(out, w.segmentPos(s))
	}
	return out
}

// SettledCells returns the number of block cells resting on the board.
func (w *World) SettledCells() int { return len(w.placed) }
