package sim

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

func tetrisOptions() Options {
	opts := bareOptions()
	opts.Enemies = []EnemySpec{{Archetype: ArchetypeEater, Length: 1, Speed: 0.5}}
	opts.Tetris = TetrisOptions{Enabled: true, Fall: time.Hour, Gravity: time.Hour, AIMove: time.Hour}
	return opts
}

// makeBlock turns a into an I block whose cells sit at the given positions.
func makeBlock(w *World, a *Actor, cells ...r2.Vec) {
	place(w, a, vec(0, 0), Right, 0)
	a.Body.Clear()
	b := &Block{shape: Shapes[0], fall: NewCooldown(time.Hour), ai: NewCooldown(time.Hour)}
	for _, c := range cells {
		b.parts = append(b.parts, w.spawnSegment(a.ID, c))
	}
	a.block = b
	a.Kind = KindBlock
	a.Phase = Alive
}

func settleCells(w *World, cells ...r2.Vec) {
	for _, c := range cells {
		w.placed[w.lattice.Index(c)] = placedCell{owner: NoActor}
	}
}

func TestLineClearAwardsRowLength(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	e := w.Actor(1)
	place(w, w.Player(), vec(10, 150), Right, 1)

	floor := w.board.Floor()
	cols := w.board.ColumnCount()
	var rest []r2.Vec
	i := 0
	for x := range w.board.Columns() {
		if i >= 4 {
			rest = append(rest, vec(x, floor))
		}
		i++
	}
	settleCells(w, rest...)
	settleCells(w, vec(-190, floor+20))
	makeBlock(w, e, vec(-190, floor), vec(-170, floor), vec(-150, floor), vec(-130, floor))

	var r Report
	w.land(e, &r)

	if r.LinesCleared != 1 {
		t.Fatalf("cleared %d lines, want 1", r.LinesCleared)
	}
	if e.Score != cols {
		t.Errorf("score = %d, want the row length %d", e.Score, cols)
	}
	if got := w.SettledCells(); got != 1 {
		t.Errorf("settled cells = %d, want only the cell above the cleared row", got)
	}
	for x := range w.board.Columns() {
		if _, ok := w.placed[w.lattice.Index(vec(x, floor))]; ok {
			t.Errorf("cell (%v, %v) survived the clear", x, floor)
		}
	}
	if e.Kind != KindSnake || e.Phase != Alive || !e.Mods.Invulnerable() {
		t.Errorf("landed actor = %v/%v invulnerable=%v, want an invincible snake",
			e.Kind, e.Phase, e.Mods.Invulnerable())
	}
}

func TestIncompleteRowStays(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	e := w.Actor(1)
	floor := w.board.Floor()
	makeBlock(w, e, vec(-190, floor), vec(-170, floor), vec(-150, floor), vec(-130, floor))

	var r Report
	w.land(e, &r)
	if r.LinesCleared != 0 || w.SettledCells() != 4 {
		t.Errorf("cleared %d, settled %d, want 0 and 4", r.LinesCleared, w.SettledCells())
	}
	if e.Score != 0 {
		t.Errorf("score = %d", e.Score)
	}
}

func TestBlockFallsAndRests(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	e := w.Actor(1)
	floor := w.board.Floor()
	settleCells(w, vec(-150, floor))
	makeBlock(w, e, vec(-190, floor+40), vec(-170, floor+40), vec(-150, floor+40), vec(-130, floor+40))

	var r Report
	w.dropBlock(e, &r)
	if got := w.segmentPos(e.block.parts[0]); got.Y != floor+20 {
		t.Fatalf("block at y=%v, want %v", got.Y, floor+20)
	}
	w.dropBlock(e, &r)
	if len(r.Landed) != 1 || e.block != nil {
		t.Fatalf("block should rest on the settled cell, landed = %v", r.Landed)
	}
	if _, ok := w.placed[w.lattice.Index(vec(-150, floor+20))]; !ok {
		t.Error("landed part missing from settled cells")
	}
}

func TestShiftBlockBounds(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	e := w.Actor(1)
	makeBlock(w, e, vec(-190, 90), vec(-170, 90), vec(-150, 90), vec(-130, 90))

	if w.shiftBlock(e.block, -1) {
		t.Error("shift past the left edge should be refused")
	}
	settleCells(w, vec(-110, 90))
	if w.shiftBlock(e.block, 1) {
		t.Error("shift into a settled cell should be refused")
	}
	w.placed = make(map[grid.Cell]placedCell)
	if !w.shiftBlock(e.block, 1) {
		t.Fatal("shift into free space refused")
	}
	if got := w.segmentPos(e.block.parts[0]).X; got != -170 {
		t.Errorf("x = %v after shift, want -170", got)
	}
}

func TestPlayerSteersBlock(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	p := w.Player()
	makeBlock(w, p, vec(-10, 90), vec(10, 90), vec(30, 90), vec(50, 90))

	w.Step(0, Input{Turns: []Direction{Right, Down}})
	got := w.segmentPos(p.block.parts[0])
	if got != vec(10, 70) {
		t.Errorf("block origin = %v, want (10, 70)", got)
	}
}

func TestSettleDropsOneRow(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	floor := w.board.Floor()
	place(w, w.Player(), vec(10, 150), Right, 1)
	place(w, w.Actor(1), vec(10, 130), Right, 1)
	settleCells(w, vec(-190, floor), vec(-170, floor+40), vec(-170, floor+60))

	w.settle()

	for _, want := range []r2.Vec{vec(-190, floor), vec(-170, floor+20), vec(-170, floor+40)} {
		if _, ok := w.placed[w.lattice.Index(want)]; !ok {
			t.Errorf("expected settled cell at %v", want)
		}
	}
	if w.SettledCells() != 3 {
		t.Errorf("settled = %d, want 3", w.SettledCells())
	}
}

func TestLandingColumn(t *testing.T) {
	tests := []struct {
		heights []int
		width   int
		want    int
	}{
		{[]int{3, 0, 0, 2, 1}, 2, 1},
		{[]int{0, 0, 0, 0}, 4, 0},
		{[]int{5, 4, 3, 2, 1}, 1, 4},
		{[]int{1, 1}, 3, 0},
	}
	for _, tt := range tests {
		if got := LandingColumn(tt.heights, tt.width); got != tt.want {
			t.Errorf("LandingColumn(%v, %d) = %d, want %d", tt.heights, tt.width, got, tt.want)
		}
	}
}

func TestAISteersTowardLowestColumn(t *testing.T) {
	w := newTestWorld(t, tetrisOptions())
	e := w.Actor(1)
	floor := w.board.Floor()
	// Everything left of x=30 is stacked two high
	for x := range w.board.Columns() {
		if x < 30 {
			settleCells(w, vec(x, floor), vec(x, floor+20))
		}
	}
	makeBlock(w, e, vec(-190, 150), vec(-170, 150), vec(-150, 150), vec(-130, 150))

	for range 20 {
		w.aiSteerBlock(e)
	}
	if got := w.segmentPos(e.block.parts[0]).X; got != 30 {
		t.Errorf("block settled over x=%v, want 30", got)
	}
}

func TestShapeExtent(t *testing.T) {
	for _, s := range Shapes {
		w, h := s.Extent()
		if w*h < 4 || w > 4 || h > 2 {
			t.Errorf("%s extent = %dx%d", s.Name, w, h)
		}
	}
}

func TestLandedBlockCanRespawnOverItsOldHead(t *testing.T) {
	opts := bareOptions()
	opts.Tetris = TetrisOptions{Enabled: true, Fall: time.Hour, Gravity: time.Hour, AIMove: time.Hour}
	w := newTestWorld(t, opts)
	p := w.Player()
	p.Length = 1

	floor := w.board.Floor()
	blockCells := []r2.Vec{vec(-190, floor), vec(-170, floor), vec(-150, floor), vec(-130, floor)}
	makeBlock(w, p, blockCells...)

	// The only free run of two cells covers the head cell of the previous life.
	keep := make(map[grid.Cell]bool)
	for _, c := range append(blockCells, vec(-110, floor), vec(10, 10), vec(-10, 10)) {
		keep[w.lattice.Index(c)] = true
	}
	for c := range w.board.Cells() {
		if !keep[w.lattice.Index(c)] {
			settleCells(w, c)
		}
	}

	var r Report
	w.land(p, &r)

	if p.Phase != Alive || p.Kind != KindSnake {
		t.Fatalf("landed player = %v/%v, want a living snake", p.Phase, p.Kind)
	}
	if p.Head != vec(10, 10) {
		t.Errorf("head = %v, want (10, 10)", p.Head)
	}
}
