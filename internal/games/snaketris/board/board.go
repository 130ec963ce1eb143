// Package board tracks the play-field extent and the toroidal edge rules
// applied to everything that moves on it.
package board

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/grid"
)

// DefaultFraction is the share of the viewport the board occupies.
const DefaultFraction = 1.0

// Board is the play field, centered on the world origin.
// Width and Height are whole, even multiples of the lattice pitch.
type Board struct {
	lattice  grid.Lattice
	fraction float64
	width    float64
	height   float64
}

// New creates an empty board. It has no extent until the first Resize.
func New(lattice grid.Lattice, fraction float64) *Board {
	if fraction <= 0 || fraction > 1 {
		fraction = DefaultFraction
	}
	return &Board{lattice: lattice, fraction: fraction}
}

// NewSized creates a board with an explicit extent in world units, taken
// as-is without rounding to the lattice.
func NewSized(lattice grid.Lattice, width, height float64) *Board {
	b := New(lattice, DefaultFraction)
	if width > 0 && height > 0 {
		b.width = width
		b.height = height
	}
	return b
}

// Lattice returns the grid the board is aligned to.
func (b *Board) Lattice() grid.Lattice {
	return b.lattice
}

// Resize recomputes the board from a viewport size. Each axis becomes the
// largest even multiple of the pitch fitting the configured fraction of the
// viewport. Non-positive or too-small viewports leave the board unchanged
// and report false.
func (b *Board) Resize(viewportW, viewportH float64) bool {
	if viewportW <= 0 || viewportH <= 0 {
		return false
	}
	w := b.evenCells(viewportW * b.fraction)
	h := b.evenCells(viewportH * b.fraction)
	if w == 0 || h == 0 {
		return false
	}
	b.width = w
	b.height = h
	return true
}

// evenCells floors n to an even number of whole cells.
func (b *Board) evenCells(n float64) float64 {
	cells := int(math.Floor(n / b.lattice.Pitch))
	if cells%2 != 0 {
		cells--
	}
	if cells <= 0 {
		return 0
	}
	return float64(cells) * b.lattice.Pitch
}

// Ready reports whether the board has a usable extent.
func (b *Board) Ready() bool {
	return b != nil && b.width > 0 && b.height > 0
}

// Width returns the board width in world units.
func (b *Board) Width() float64 { return b.width }

// Height returns the board height in world units.
func (b *Board) Height() float64 { return b.height }

// HalfWidth returns the horizontal half-extent.
func (b *Board) HalfWidth() float64 { return b.width / 2 }

// HalfHeight returns the vertical half-extent.
func (b *Board) HalfHeight() float64 { return b.height / 2 }

// ColumnCount returns the number of lattice columns.
func (b *Board) ColumnCount() int {
	return int(b.width / b.lattice.Pitch)
}

// RowCount returns the number of lattice rows.
func (b *Board) RowCount() int {
	return int(b.height / b.lattice.Pitch)
}

// Floor returns the y coordinate of the lowest row of cell centers.
func (b *Board) Floor() float64 {
	return -b.HalfHeight() + b.lattice.HalfCell()
}

// Ceiling returns the y coordinate of the highest row of cell centers.
func (b *Board) Ceiling() float64 {
	return b.HalfHeight() - b.lattice.HalfCell()
}

// Contains reports whether p lies strictly inside the board.
func (b *Board) Contains(p r2.Vec) bool {
	return p.X > -b.HalfWidth() && p.X < b.HalfWidth() &&
		p.Y > -b.HalfHeight() && p.Y < b.HalfHeight()
}

// Wrap re-enters a position that reached or passed an edge on the opposite
// side, at the first cell center inside that edge.
func (b *Board) Wrap(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: wrapAxis(p.X, b.HalfWidth(), b.lattice.HalfCell()),
		Y: wrapAxis(p.Y, b.HalfHeight(), b.lattice.HalfCell()),
	}
}

func wrapAxis(v, half, halfCell float64) float64 {
	switch {
	case v >= half:
		return halfCell - half
	case v <= -half:
		return half - halfCell
	default:
		return v
	}
}

// Clamp pulls a position that drifted outside the board back to the
// nearest inner cell. Positions already inside are returned unchanged.
func (b *Board) Clamp(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: clampAxis(p.X, b.HalfWidth(), b.lattice.HalfCell()),
		Y: clampAxis(p.Y, b.HalfHeight(), b.lattice.HalfCell()),
	}
}

func clampAxis(v, half, halfCell float64) float64 {
	switch {
	case v > half:
		return half - halfCell
	case v < -half:
		return halfCell - half
	default:
		return v
	}
}

// Columns yields the x coordinate of every column center, left to right.
func (b *Board) Columns() iter.Seq[float64] {
	return b.lattice.Cells(b.HalfWidth())
}

// Rows yields the y coordinate of every row center, bottom to top.
func (b *Board) Rows() iter.Seq[float64] {
	return b.lattice.Cells(b.HalfHeight())
}

// Cells yields every cell center on the board, row by row from the bottom.
func (b *Board) Cells() iter.Seq[r2.Vec] {
	return func(yield func(r2.Vec) bool) {
		for y := range b.Rows() {
			for x := range b.Columns() {
				if !yield(r2.Vec{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
