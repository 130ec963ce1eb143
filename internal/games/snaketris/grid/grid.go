// Package grid quantizes world coordinates onto the play-field lattice.
// Every game-relevant position is a cell center: a multiple of the cell
// pitch offset by half a cell.
package grid

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultPitch is the edge length of one cell in world units.
const DefaultPitch = 20.0

// Cell is the integer index of a lattice cell.
// Cell{0, 0} is the cell whose lower-left corner is the world origin.
type Cell struct {
	Col, Row int
}

// Lattice describes the grid all entities are snapped to.
type Lattice struct {
	Pitch float64
}

// New returns a lattice with the given pitch, falling back to DefaultPitch
// for non-positive values.
func New(pitch float64) Lattice {
	if pitch <= 0 {
		pitch = DefaultPitch
	}
	return Lattice{Pitch: pitch}
}

// HalfCell returns half of the cell pitch.
func (l Lattice) HalfCell() float64 {
	return l.Pitch / 2
}

// Snap maps a coordinate to the center of the cell containing it.
// Two coordinates share a cell iff their snapped values are equal.
func (l Lattice) Snap(n float64) float64 {
	return math.Floor(n/l.Pitch)*l.Pitch + l.HalfCell()
}

// SnapVec snaps both axes of a position.
func (l Lattice) SnapVec(v r2.Vec) r2.Vec {
	return r2.Vec{X: l.Snap(v.X), Y: l.Snap(v.Y)}
}

// Index returns the cell containing v.
func (l Lattice) Index(v r2.Vec) Cell {
	return Cell{
		Col: int(math.Floor(v.X / l.Pitch)),
		Row: int(math.Floor(v.Y / l.Pitch)),
	}
}

// Center returns the world position of a cell center.
func (l Lattice) Center(c Cell) r2.Vec {
	return r2.Vec{
		X: float64(c.Col)*l.Pitch + l.HalfCell(),
		Y: float64(c.Row)*l.Pitch + l.HalfCell(),
	}
}

// Same reports whether two positions fall in the same cell.
func (l Lattice) Same(a, b r2.Vec) bool {
	return l.Index(a) == l.Index(b)
}

// OnLattice reports whether v already is a cell center.
func (l Lattice) OnLattice(v r2.Vec) bool {
	return l.SnapVec(v) == v
}

// Cells yields every lattice coordinate in [-extent, extent] in ascending
// order. The sequence is lazy and can be ranged over repeatedly.
func (l Lattice) Cells(extent float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if extent < 0 {
			return
		}
		start := l.Snap(-extent)
		if start < -extent {
			start += l.Pitch
		}
		for c := start; c <= extent; c += l.Pitch {
			if !yield(c) {
				return
			}
		}
	}
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}
