package sim

import (
	"reflect"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/board"
)

func TestStepSkipsUntilBoardReady(t *testing.T) {
	w := New(bareOptions())

	r := w.Step(time.Second, Input{})
	if r.Frame != 0 || w.Frame() != 0 {
		t.Errorf("frame advanced without a board: %d", w.Frame())
	}
	if w.Player().Phase != Dead {
		t.Error("player should not spawn before the board has an extent")
	}

	w.Resize(400, 400)
	w.Step(0, Input{})
	if w.Player().Phase != Alive || w.Player().Len() != 4 {
		t.Errorf("player = %v len %d, want alive len 4", w.Player().Phase, w.Player().Len())
	}
}

func TestPauseToggle(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 2)

	w.Step(0, Input{TogglePause: true})
	if !w.Paused() {
		t.Fatal("world should be paused")
	}
	w.Step(time.Second, Input{})
	if p.Head != vec(10, 10) {
		t.Errorf("paused world moved the player to %v", p.Head)
	}
	w.Step(0, Input{TogglePause: true})
	tick(w)
	if p.Head != vec(30, 10) {
		t.Errorf("head = %v after resume, want (30, 10)", p.Head)
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 3)

	tick(w)

	if p.Head != vec(30, 10) {
		t.Errorf("head = %v, want (30, 10)", p.Head)
	}
	want := []r2.Vec{vec(10, 10), vec(-10, 10), vec(-30, 10)}
	got := w.Segments(p.ID)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segments = %v, want %v", got, want)
			break
		}
	}
}

func TestSingleSegmentFollowsHead(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Up, 1)

	tick(w)
	if p.Head != vec(10, 30) {
		t.Errorf("head = %v", p.Head)
	}
	if segs := w.Segments(p.ID); len(segs) != 1 || segs[0] != vec(10, 10) {
		t.Errorf("segments = %v, want [(10, 10)]", segs)
	}
}

func TestWrapThroughMovement(t *testing.T) {
	opts := bareOptions()
	opts.Pitch = 16
	w := New(opts)
	w.board = board.NewSized(w.lattice, 400, 400)
	w.Step(0, Input{})
	p := w.Player()
	place(w, p, vec(192, 8), Right, 2)

	tick(w)

	if p.Head != vec(-192, 8) {
		t.Errorf("head = %v, want (-192, 8)", p.Head)
	}
	if segs := w.Segments(p.ID); segs[0] != vec(192, 8) || segs[1] != vec(176, 8) {
		t.Errorf("segments = %v", segs)
	}
}

func TestPlayerTurnInput(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 2)

	w.Step(p.Cooldown.Period(), Input{Turns: []Direction{Up, Left}})
	if p.Head != vec(10, 30) {
		t.Fatalf("first move head = %v, want (10, 30)", p.Head)
	}
	tick(w)
	if p.Head != vec(-10, 30) {
		t.Errorf("buffered turn head = %v, want (-10, 30)", p.Head)
	}
}

func TestGrowthAddsExactlyK(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(-150, 10), Right, 3)
	const k = 4

	w.Grow(p.ID, k)
	before := p.Body.Len()
	for range k {
		tick(w)
	}
	if got := p.Body.Len() - before; got != k {
		t.Errorf("body grew by %d, want %d", got, k)
	}
	if p.Score != k {
		t.Errorf("score = %d, want %d", p.Score, k)
	}

	tick(w)
	if p.Body.Len()-before != k {
		t.Error("growth should stop once the debt is paid")
	}
}

func TestGrowthAppendsBehindTail(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 1)

	w.Grow(p.ID, 1)
	r := tick(w)
	if !r.ScoreChanged {
		t.Error("growth should report a score change")
	}
	segs := w.Segments(p.ID)
	if len(segs) != 2 || segs[1] != vec(-10, 10) {
		t.Errorf("segments = %v, want tail at (-10, 10)", segs)
	}
}

func TestSatietyScalesGrowth(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 2)

	p.Mods.Satiety = 2
	w.Grow(p.ID, 1)
	if p.Mods.Nourishment != 3 {
		t.Errorf("nourishment = %d, want 3", p.Mods.Nourishment)
	}
}

func TestShrinkToLastSegmentThenDie(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 4)
	p.Score = 10

	w.Shrink(p.ID, 3)
	for range 3 {
		tick(w)
	}
	if p.Body.Len() != 1 || p.Phase != Alive {
		t.Fatalf("after shrinking 3 of 4: len %d phase %v", p.Body.Len(), p.Phase)
	}
	if p.Score != 7 {
		t.Errorf("score = %d, want 7", p.Score)
	}

	w.Shrink(p.ID, 1)
	tick(w)
	if p.Phase != Dying {
		t.Errorf("shrinking the last segment should kill, phase = %v", p.Phase)
	}
}

func TestDyingShedsThenWaitsForRespawn(t *testing.T) {
	w := newTestWorld(t, bareOptions())
	p := w.Player()
	place(w, p, vec(10, 10), Right, 2)
	w.kill(p)

	for range 3 {
		tick(w)
	}
	if p.Phase != Dead {
		t.Fatalf("phase = %v after shedding, want dead", p.Phase)
	}
	if p.Deaths != 1 {
		t.Errorf("deaths = %d", p.Deaths)
	}

	tick(w)
	if p.Phase != Dead {
		t.Error("player should wait for a respawn request")
	}
	w.Step(0, Input{Respawn: true})
	if p.Phase != Alive || p.Kind != KindSnake {
		t.Errorf("respawn without tetris should give a snake, got %v/%v", p.Phase, p.Kind)
	}
}

func TestEnemyRespawnsAsBlockWithTetris(t *testing.T) {
	opts := bareOptions()
	opts.Enemies = []EnemySpec{{Archetype: ArchetypeEater, Length: 1, Speed: 0.5}}
	opts.Tetris = TetrisOptions{Enabled: true, Fall: time.Second, Gravity: time.Second, AIMove: time.Second}
	w := newTestWorld(t, opts)
	e := w.Actor(1)
	place(w, e, vec(10, 10), Right, 1)
	w.kill(e)

	for i := 0; i < 5 && e.Kind != KindBlock; i++ {
		w.Step(e.Cooldown.Period(), Input{})
	}
	if e.Kind != KindBlock || e.Phase != Alive {
		t.Fatalf("enemy = %v/%v, want a living block", e.Phase, e.Kind)
	}
	if len(e.block.parts) != 4 {
		t.Errorf("block has %d parts", len(e.block.parts))
	}
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() ([]Sprite, []ScoreEntry) {
		opts := DefaultOptions()
		opts.Seed = 42
		w := New(opts)
		w.Resize(800, 600)
		for range 600 {
			w.Step(16*time.Millisecond, Input{})
		}
		return w.View(), w.Scoreboard(0)
	}

	v1, s1 := run()
	v2, s2 := run()
	if !reflect.DeepEqual(v1, v2) {
		t.Error("views differ for the same seed")
	}
	if !reflect.DeepEqual(s1, s2) {
		t.Error("scoreboards differ for the same seed")
	}
}

func TestResizeClampsEntities(t *testing.T) {
	w := New(bareOptions())
	w.Resize(800, 800)
	w.Step(0, Input{})
	p := w.Player()
	place(w, p, vec(370, 370), Left, 1)

	w.Resize(400, 400)
	if p.Head != vec(190, 190) {
		t.Errorf("head = %v, want (190, 190)", p.Head)
	}
	for _, s := range w.Segments(p.ID) {
		if !w.Board().Contains(s) {
			t.Errorf("segment %v outside the board", s)
		}
	}
}

func TestEnemyRespawnsInNewColor(t *testing.T) {
	opts := bareOptions()
	opts.Enemies = []EnemySpec{{Archetype: ArchetypeEater, Length: 1, Speed: 0.5}}
	w := newTestWorld(t, opts)
	p, e := w.Player(), w.Actor(1)
	place(w, p, vec(-150, -150), Right, 1)
	place(w, e, vec(110, 110), Up, 1)
	before := Hex(e.Color)
	w.kill(e)

	for i := 0; i < 10 && e.Phase != Alive; i++ {
		tick(w)
	}
	if e.Phase != Alive {
		t.Fatalf("enemy phase = %v, want a respawned snake", e.Phase)
	}
	if after := Hex(e.Color); after == before {
		t.Errorf("respawned enemy kept its color %s", before)
	}
}

func TestFirstSpawnKeepsConfiguredColors(t *testing.T) {
	opts := bareOptions()
	opts.Enemies = []EnemySpec{{Archetype: ArchetypeGlutton, Length: 1, Speed: 0.5}}
	w := newTestWorld(t, opts)

	if got, want := Hex(w.Actor(1).Color), Hex(archetypeColors[ArchetypeGlutton]); got != want {
		t.Errorf("enemy color = %s, want the archetype color %s", got, want)
	}
	if got, want := Hex(w.Player().Color), Hex(playerColor); got != want {
		t.Errorf("player color = %s, want %s", got, want)
	}
}
