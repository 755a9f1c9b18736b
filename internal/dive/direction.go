package dive

import "fmt"

// Direction is one of the three commands the submarine understands.
type Direction int

const (
	Forward Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a command word to its Direction. Matching is exact and
// case-sensitive.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unrecognized direction %q", s)
}

// Move is a single course command.
type Move struct {
	Direction Direction
	Distance  int
}

func (m Move) String() string {
	return fmt.Sprintf("%s %d", m.Direction, m.Distance)
}
