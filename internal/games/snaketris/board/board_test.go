package board

import (
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

func TestResizeEvenMultiple(t *testing.T) {
	tests := []struct {
		name         string
		fraction     float64
		vw, vh       float64
		wantW, wantH float64
	}{
		{"exact", 1.0, 800, 800, 800, 800},
		{"odd cell count rounds down", 1.0, 420, 300, 400, 280},
		{"partial cell floors", 1.0, 419, 259, 400, 240},
		{"fraction", 0.5, 800, 600, 400, 280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(grid.New(20), tt.fraction)
			if !b.Resize(tt.vw, tt.vh) {
				t.Fatal("Resize() = false, want true")
			}
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
			if b.ColumnCount()%2 != 0 || b.RowCount()%2 != 0 {
				t.Errorf("cell counts %dx%d should be even", b.ColumnCount(), b.RowCount())
			}
		})
	}
}

func TestResizeRejectsNonPositive(t *testing.T) {
	b := New(grid.New(20), 1)
	b.Resize(400, 400)

	for _, dims := range [][2]float64{{0, 400}, {400, -1}, {-5, -5}, {30, 400}} {
		if b.Resize(dims[0], dims[1]) {
			t.Errorf("Resize(%v, %v) = true, want false", dims[0], dims[1])
		}
		if b.Width() != 400 || b.Height() != 400 {
			t.Errorf("Resize(%v, %v) changed board to %vx%v", dims[0], dims[1], b.Width(), b.Height())
		}
	}
}

func TestReady(t *testing.T) {
	var nilBoard *Board
	if nilBoard.Ready() {
		t.Error("nil board should not be ready")
	}
	b := New(grid.New(20), 1)
	if b.Ready() {
		t.Error("board should not be ready before Resize")
	}
	b.Resize(200, 200)
	if !b.Ready() {
		t.Error("board should be ready after Resize")
	}
}

func TestWrapScenario(t *testing.T) {
	// 400 units at pitch 16: half-extent 200, half cell 8
	b := NewSized(grid.New(16), 400, 400)

	got := b.Wrap(r2.Vec{X: 192 + 16, Y: 0})
	if got.X != -192 {
		t.Errorf("Wrap(208) x = %v, want -192", got.X)
	}

	// Exactly at +half wraps to half_cell - half
	got = b.Wrap(r2.Vec{X: 200, Y: 8})
	if got.X != 8-200 {
		t.Errorf("Wrap(200) x = %v, want %v", got.X, 8-200)
	}

	// Stepping again is a normal interior move
	next := b.Wrap(r2.Vec{X: got.X + 16, Y: got.Y})
	if next.X != got.X+16 || next.Y != 8 {
		t.Errorf("interior move wrapped unexpectedly: %v", next)
	}
}

func TestWrapAllEdges(t *testing.T) {
	b := NewSized(grid.New(20), 400, 200)
	tests := []struct {
		in, want r2.Vec
	}{
		{r2.Vec{X: 210, Y: 10}, r2.Vec{X: -190, Y: 10}},
		{r2.Vec{X: -210, Y: 10}, r2.Vec{X: 190, Y: 10}},
		{r2.Vec{X: 10, Y: 110}, r2.Vec{X: 10, Y: -90}},
		{r2.Vec{X: 10, Y: -110}, r2.Vec{X: 10, Y: 90}},
		{r2.Vec{X: 190, Y: 90}, r2.Vec{X: 190, Y: 90}},
	}

	for _, tt := range tests {
		if got := b.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !b.lattice.OnLattice(b.Wrap(tt.in)) {
			t.Errorf("Wrap(%v) left the lattice", tt.in)
		}
	}
}

func TestClampAfterShrink(t *testing.T) {
	b := New(grid.New(20), 1)
	b.Resize(800, 800)
	child := r2.Vec{X: 350, Y: -370}

	b.Resize(400, 400)
	got := b.Clamp(child)
	if got != (r2.Vec{X: 190, Y: -190}) {
		t.Errorf("Clamp(%v) = %v, want (190, -190)", child, got)
	}
	if !b.Contains(got) {
		t.Errorf("clamped position %v not inside board", got)
	}

	inside := r2.Vec{X: 50, Y: 30}
	if b.Clamp(inside) != inside {
		t.Error("Clamp should not move interior positions")
	}
}

func TestColumnsAndRows(t *testing.T) {
	b := NewSized(grid.New(20), 120, 80)

	cols := slices.Collect(b.Columns())
	if len(cols) != 6 || cols[0] != -50 || cols[5] != 50 {
		t.Errorf("Columns() = %v", cols)
	}
	rows := slices.Collect(b.Rows())
	if len(rows) != 4 || rows[0] != b.Floor() || rows[3] != b.Ceiling() {
		t.Errorf("Rows() = %v, floor %v ceiling %v", rows, b.Floor(), b.Ceiling())
	}

	count := 0
	for c := range b.Cells() {
		if !b.Contains(c) {
			t.Errorf("cell %v outside board", c)
		}
		count++
	}
	if count != 24 {
		t.Errorf("Cells() yielded %d, want 24", count)
	}
}
