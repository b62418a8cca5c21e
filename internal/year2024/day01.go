package year2024

import (
	"fmt"
	"slices"
	"strings"

	"advent-solver/internal/puzzle"
)

func day01(input string) (puzzle.Answers, error) {
	var left, right []int
	counts := map[int]int{}
	for n, line := range lines(input) {
		pair, err := ints(strings.Fields(line))
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day 1: line %d: %w", n+1, err)
		}
		if len(pair) != 2 {
			return puzzle.Answers{}, fmt.Errorf("day 1: line %d: want two numbers, got %d", n+1, len(pair))
		}
		left = append(left, pair[0])
		right = append(right, pair[1])
		counts[pair[1]]++
	}
	slices.Sort(left)
	slices.Sort(right)

	distance, similarity := 0, 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		distance += d
		similarity += left[i] * counts[left[i]]
	}
	return puzzle.Answers{Part1: distance, Part2: similarity}, nil
}
