package sonar

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a sweep is too short for the requested count.
var ErrInvalidInput = errors.New("invalid input")

// CountIncreases counts readings that are deeper than the one before them.
func CountIncreases(depths []int) (int, error) {
	if len(depths) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 depths, got %d", ErrInvalidInput, len(depths))
	}
	increases := 0
	prev := depths[0]
	for _, d := range depths[1:] {
		if d > prev {
			increases++
		}
		prev = d
	}
	return increases, nil
}

// CountWindowedIncreases sums every contiguous window of the given size and
// counts how many window sums are larger than the previous one.
func CountWindowedIncreases(depths []int, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("%w: window size must be at least 1, got %d", ErrInvalidInput, window)
	}
	if len(depths) < window {
		return 0, fmt.Errorf("%w: need at least %d depths, got %d", ErrInvalidInput, window, len(depths))
	}

	sum := 0
	for _, d := range depths[:window] {
		sum += d
	}

	increases := 0
	for i := window; i < len(depths); i++ {
		// slide: drop the reading leaving the window, add the one entering
		next := sum - depths[i-window] + depths[i]
		if next > sum {
			increases++
		}
		sum = next
	}
	return increases, nil
}
