package dive

import "fmt"

// Position is the submarine's horizontal offset and depth. Depth may go
// negative.
type Position struct {
	Horizontal int
	Depth      int
}

// Product is the puzzle answer for a final position.
func (p Position) Product() int {
	return p.Horizontal * p.Depth
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Horizontal, p.Depth)
}

// Submarine accumulates moves starting from the surface.
type Submarine struct {
	Horizontal, Depth int
	// Aim is only used by ApplyAimed.
	Aim int
}

func NewSubmarine() *Submarine {
	return &Submarine{}
}

// Apply moves the submarine directly: down and up change depth.
func (s *Submarine) Apply(m Move) {
	switch m.Direction {
	case Forward:
		s.Horizontal += m.Distance
	case Down:
		s.Depth += m.Distance
	case Up:
		s.Depth -= m.Distance
	}
}

// ApplyAimed moves the submarine using aim: down and up turn the nose,
// forward travels along it.
func (s *Submarine) ApplyAimed(m Move) {
	switch m.Direction {
	case Forward:
		s.Horizontal += m.Distance
		s.Depth += s.Aim * m.Distance
	case Down:
		s.Aim += m.Distance
	case Up:
		s.Aim -= m.Distance
	}
}

func (s *Submarine) Position() Position {
	return Position{Horizontal: s.Horizontal, Depth: s.Depth}
}

func (s *Submarine) String() string {
	return fmt.Sprintf("(%d,%d) aim %d", s.Horizontal, s.Depth, s.Aim)
}

// Track applies every move in order and returns where the submarine ends up.
func Track(moves []Move) Position {
	sub := NewSubmarine()
	for _, m := range moves {
		sub.Apply(m)
	}
	return sub.Position()
}

// TrackAim is Track with aim-based steering.
func TrackAim(moves []Move) Position {
	sub := NewSubmarine()
	for _, m := range moves {
		sub.ApplyAimed(m)
	}
	return sub.Position()
}
