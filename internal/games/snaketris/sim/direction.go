package sim

import "gonum.org/v1/gonum/spatial/r2"

// Direction is one of the four cardinal headings. The zero value is Right.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

// Directions lists every heading.
var Directions = [4]Direction{Right, Up, Left, Down}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Step returns the displacement of one move of length pitch. World y grows
// upward.
func (d Direction) Step(pitch float64) r2.Vec {
	switch d {
	case Up:
		return r2.Vec{Y: pitch}
	case Left:
		return r2.Vec{X: -pitch}
	case Down:
		return r2.Vec{Y: -pitch}
	default:
		return r2.Vec{X: pitch}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return "right"
	}
}

// Steering is a depth-one direction queue. A request made while the current
// heading has not been used yet is buffered and applied on the following move.
type Steering struct {
	current  Direction
	previous Direction
	next     Direction
	hasNext  bool
}

// NewSteering starts facing d with nothing buffered.
func NewSteering(d Direction) Steering {
	return Steering{current: d, previous: d}
}

// Current returns the heading the next move will use.
func (s *Steering) Current() Direction {
	return s.current
}

// Request asks for a new heading. Reversals of the heading in effect when the
// request would apply are rejected. A second request before the next move
// replaces any buffered one.
func (s *Steering) Request(d Direction) bool {
	if d == s.current.Opposite() {
		return false
	}
	if s.current == s.previous {
		s.current = d
		s.hasNext = false
		return true
	}
	if d == s.current {
		s.hasNext = false
		return true
	}
	s.next = d
	s.hasNext = true
	return true
}

// Resolve promotes a buffered heading and commits the current one. Call it
// once per move, before reading Current.
func (s *Steering) Resolve() Direction {
	if s.current == s.previous && s.hasNext {
		if s.next != s.current.Opposite() {
			s.current = s.next
		}
		s.hasNext = false
	}
	s.previous = s.current
	return s.current
}
