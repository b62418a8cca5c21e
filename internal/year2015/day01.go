package year2015

import (
	"fmt"

	"advent-solver/internal/puzzle"
)

// day01 follows the parentheses: the final floor, and the 1-based position
// of the first step into the basement (0 if it never happens).
func day01(input string) (puzzle.Answers, error) {
	floor, basement := 0, 0
	for i, c := range input {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		case '\n', '\r':
			continue
		default:
			return puzzle.Answers{}, fmt.Errorf("day 1: unexpected %q at %d", c, i+1)
		}
		if floor == -1 && basement == 0 {
			basement = i + 1
		}
	}
	return puzzle.Answers{Part1: floor, Part2: basement}, nil
}
