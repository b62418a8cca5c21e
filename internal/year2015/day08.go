package year2015

import (
	"fmt"
	"strconv"

	"advent-solver/internal/puzzle"
)

// day08 compares string literals with their decoded and re-encoded forms.
// The inputs only use the \\, \" and \xHH escapes, all of which Go string
// literals share.
func day08(input string) (puzzle.Answers, error) {
	decodedDiff, encodedDiff := 0, 0
	for n, lit := range lines(input) {
		s, err := strconv.Unquote(lit)
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day 8: line %d: %q: %w", n+1, lit, err)
		}
		decodedDiff += len(lit) - len(s)
		encodedDiff += len(strconv.Quote(lit)) - len(lit)
	}
	return puzzle.Answers{Part1: decodedDiff, Part2: encodedDiff}, nil
}
