package aoc

import "fmt"

// Answer is one solved puzzle part.
type Answer struct {
	Day   int
	Part  int
	Value int
}

func (a Answer) String() string {
	return fmt.Sprintf("day %d, part %d: %d", a.Day, a.Part, a.Value)
}
