package sim

import (
	"cmp"
	"maps"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/body"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

// Shape is a tetromino as cell offsets from its bottom-left corner.
type Shape struct {
	Name  string
	Cells [4]grid.Cell
}

// Shapes are the seven tetrominoes.
var Shapes = []Shape{
	{"I", [4]grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0}}},
	{"O", [4]grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}}},
	{"T", [4]grid.Cell{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 0}}},
	{"L", [4]grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 2, Row: 1}}},
	{"J", [4]grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 0, Row: 1}}},
	{"S", [4]grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 1}}},
	{"Z", [4]grid.Cell{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: 0}, {Col: 2, Row: 0}}},
}

// Extent returns the shape's width and height in cells.
func (s Shape) Extent() (int, int) {
	w, h := 0, 0
	for _, c := range s.Cells {
		w = max(w, c.Col+1)
		h = max(h, c.Row+1)
	}
	return w, h
}

// Block is the falling form a dead actor takes. Its parts live in the
// segment arena until it lands and they become settled cells.
type Block struct {
	shape Shape
	parts []body.SegmentID
	fall  Cooldown
	ai    Cooldown

	targetX   float64
	hasTarget bool
}

// tetris runs falling blocks, AI block steering, and settled-cell gravity.
func (w *World) tetris(dt time.Duration, r *Report) {
	for _, a := range w.actors {
		if a.Kind != KindBlock || !a.Living() || a.block == nil {
			continue
		}
		if !a.Player && a.block.ai.Tick(dt) {
			w.aiSteerBlock(a)
		}
		if a.block.fall.Tick(dt) {
			w.dropBlock(a, r)
		}
	}
	if w.gravity.Tick(dt) {
		w.settle()
	}
}

// spawnBlock turns a dead actor into a random tetromino at the top of the
// board. It reports false when no column has room.
func (w *World) spawnBlock(a *Actor) bool {
	shape := Shapes[w.rng.Intn(len(Shapes))]
	width, height := shape.Extent()
	cols := slices.Collect(w.board.Columns())
	if len(cols) < width || w.board.RowCount() < height {
		return false
	}
	pitch := w.lattice.Pitch
	baseY := w.board.Ceiling() - float64(height-1)*pitch

	for _, start := range w.rng.Perm(len(cols) - width + 1) {
		var pos [4]r2.Vec
		free := true
		for i, off := range shape.Cells {
			pos[i] = r2.Vec{X: cols[start] + float64(off.Col)*pitch, Y: baseY + float64(off.Row)*pitch}
			if _, taken := w.placed[w.lattice.Index(pos[i])]; taken {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		b := &Block{
			shape: shape,
			fall:  NewCooldown(w.opts.Tetris.Fall),
			ai:    NewCooldown(w.opts.Tetris.AIMove),
		}
		for _, p := range pos {
			b.parts = append(b.parts, w.spawnSegment(a.ID, p))
		}
		a.block = b
		a.Kind = KindBlock
		a.Phase = Alive
		a.Mods = Modifiers{}
		w.log.Debug("tetrified", "actor", a.Name, "shape", shape.Name)
		return true
	}
	w.log.Debug("no room for block", "actor", a.Name)
	return false
}

// steerBlock applies a player turn to a falling block.
func (w *World) steerBlock(a *Actor, d Direction, r *Report) {
	switch d {
	case Left:
		w.shiftBlock(a.block, -1)
	case Right:
		w.shiftBlock(a.block, 1)
	case Down:
		w.dropBlock(a, r)
	}
}

// shiftBlock moves a block one column. It refuses moves off the board or
// into settled cells.
func (w *World) shiftBlock(b *Block, dx int) bool {
	if b == nil {
		return false
	}
	step := float64(dx) * w.lattice.Pitch
	half := w.board.HalfWidth()
	for _, id := range b.parts {
		p := w.segmentPos(id)
		p.X += step
		if p.X <= -half || p.X >= half {
			return false
		}
		if _, taken := w.placed[w.lattice.Index(p)]; taken {
			return false
		}
	}
	for _, id := range b.parts {
		w.segments[id].pos.X += step
	}
	return true
}

// dropBlock moves a block down one row, landing it when it rests on the
// floor or a settled cell.
func (w *World) dropBlock(a *Actor, r *Report) {
	b := a.block
	if b == nil {
		return
	}
	if w.resting(b) {
		w.land(a, r)
		return
	}
	for _, id := range b.parts {
		w.segments[id].pos.Y -= w.lattice.Pitch
	}
}

func (w *World) resting(b *Block) bool {
	floor := -w.board.HalfHeight()
	for _, id := range b.parts {
		below := w.segmentPos(id)
		below.Y -= w.lattice.Pitch
		if below.Y < floor {
			return true
		}
		if _, taken := w.placed[w.lattice.Index(below)]; taken {
			return true
		}
	}
	return false
}

// land settles a block, clears completed rows, and brings the actor back as
// an invincible snake.
func (w *World) land(a *Actor, r *Report) {
	rows := make(map[int]struct{})
	for _, id := range a.block.parts {
		c := w.lattice.Index(w.segmentPos(id))
		w.placed[c] = placedCell{color: a.Color, owner: a.ID}
		rows[c.Row] = struct{}{}
		w.despawn(id)
	}
	a.block = nil
	a.Kind = KindSnake
	a.Phase = Dead
	r.Landed = append(r.Landed, a.ID)

	if n := w.clearLines(slices.Sorted(maps.Keys(rows)), a); n > 0 {
		r.LinesCleared += n
		r.ScoreChanged = true
	}

	if !w.spawnSnake(a, true) {
		a.snakify = true
	}
}

// clearLines removes every full row among rows and credits a with the row
// length for each. Removal happens after all rows are checked.
func (w *World) clearLines(rows []int, a *Actor) int {
	cols := w.board.ColumnCount()
	first := w.lattice.Index(r2.Vec{X: -w.board.HalfWidth() + w.lattice.HalfCell()}).Col
	var doomed []grid.Cell
	cleared := 0
	for _, row := range rows {
		full := true
		for i := range cols {
			if _, ok := w.placed[grid.Cell{Col: first + i, Row: row}]; !ok {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		cleared++
		a.addScore(cols)
		for i := range cols {
			doomed = append(doomed, grid.Cell{Col: first + i, Row: row})
		}
		w.log.Info("line cleared", "actor", a.Name, "row", row)
	}
	for _, c := range doomed {
		delete(w.placed, c)
	}
	return cleared
}

// settle drops every unsupported settled cell by one row, lowest first.
func (w *World) settle() {
	if len(w.placed) == 0 {
		return
	}
	cells := slices.SortedFunc(maps.Keys(w.placed), func(a, b grid.Cell) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	floorRow := w.lattice.Index(r2.Vec{Y: w.board.Floor()}).Row
	occ := w.actorCells()
	for _, c := range cells {
		below := grid.Cell{Col: c.Col, Row: c.Row - 1}
		if below.Row < floorRow {
			continue
		}
		if _, ok := w.placed[below]; ok {
			continue
		}
		if _, ok := occ[below]; ok {
			continue
		}
		w.placed[below] = w.placed[c]
		delete(w.placed, c)
	}
}

// aiSteerBlock nudges an AI block toward the column with the lowest stack.
func (w *World) aiSteerBlock(a *Actor) {
	b := a.block
	if !b.hasTarget {
		b.targetX = w.landingX(b)
		b.hasTarget = true
	}
	left := math.Inf(1)
	for _, id := range b.parts {
		left = min(left, w.segmentPos(id).X)
	}
	tolerance := w.lattice.HalfCell()
	switch {
	case left < b.targetX-tolerance:
		w.shiftBlock(b, 1)
	case left > b.targetX+tolerance:
		w.shiftBlock(b, -1)
	}
}

func (w *World) landingX(b *Block) float64 {
	cols := slices.Collect(w.board.Columns())
	width, _ := b.shape.Extent()
	return cols[LandingColumn(w.columnHeights(cols), width)]
}

// columnHeights returns the stack height of each column, in cells.
func (w *World) columnHeights(cols []float64) []int {
	heights := make([]int, len(cols))
	if len(cols) == 0 {
		return heights
	}
	first := w.lattice.Index(r2.Vec{X: cols[0]}).Col
	floorRow := w.lattice.Index(r2.Vec{Y: w.board.Floor()}).Row
	for c := range w.placed {
		i := c.Col - first
		if i >= 0 && i < len(heights) {
			heights[i] = max(heights[i], c.Row-floorRow+1)
		}
	}
	return heights
}

// LandingColumn returns the leftmost start column of the width-wide window
// whose tallest stack is lowest.
func LandingColumn(heights []int, width int) int {
	best, bestHeight := 0, math.MaxInt
	for start := 0; start+width <= len(heights); start++ {
		if h := slices.Max(heights[start : start+width]); h < bestHeight {
			best, bestHeight = start, h
		}
	}
	return best
}
