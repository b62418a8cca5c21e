package year2015

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"advent-solver/internal/puzzle"
)

func day02(input string) (puzzle.Answers, error) {
	paper, ribbon := 0, 0
	for n, line := range lines(input) {
		dims, err := parseBox(line)
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day 2: line %d: %w", n+1, err)
		}
		slices.Sort(dims)
		l, w, h := dims[0], dims[1], dims[2]
		paper += 2*(l*w+w*h+h*l) + l*w
		ribbon += 2*(l+w) + l*w*h
	}
	return puzzle.Answers{Part1: paper, Part2: ribbon}, nil
}

func parseBox(line string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(line), "x")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want LxWxH, got %q", line)
	}
	dims := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		dims[i] = v
	}
	return dims, nil
}
