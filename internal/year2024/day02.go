package year2024

import (
	"fmt"
	"strings"

	"advent-solver/internal/puzzle"
)

func day02(input string) (puzzle.Answers, error) {
	safe, dampened := 0, 0
	for n, line := range lines(input) {
		levels, err := ints(strings.Fields(line))
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day 2: line %d: %w", n+1, err)
		}
		if isSafe(levels) {
			safe++
			dampened++
			continue
		}
		if safeWithoutOne(levels) {
			dampened++
		}
	}
	return puzzle.Answers{Part1: safe, Part2: dampened}, nil
}

// isSafe reports whether levels move strictly in one direction by steps of
// one to three.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	dir := 1
	if levels[1] < levels[0] {
		dir = -1
	}
	for i := 1; i < len(levels); i++ {
		step := (levels[i] - levels[i-1]) * dir
		if step < 1 || step > 3 {
			return false
		}
	}
	return true
}

func safeWithoutOne(levels []int) bool {
	trimmed := make([]int, 0, len(levels)-1)
	for skip := range levels {
		trimmed = append(trimmed[:0], levels[:skip]...)
		trimmed = append(trimmed, levels[skip+1:]...)
		if isSafe(trimmed) {
			return true
		}
	}
	return false
}
