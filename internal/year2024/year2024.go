// Package year2024 holds the solvers for the 2024 puzzles.
package year2024

import (
	"fmt"
	"strconv"
	"strings"

	"advent-solver/internal/puzzle"
)

const year = 2024

// Register installs every 2024 solver into r.
func Register(r *puzzle.Registry) {
	r.MustRegister(year, 1, puzzle.Func(day01))
	r.MustRegister(year, 2, puzzle.Func(day02))
	r.MustRegister(year, 3, puzzle.Func(day03))
	r.MustRegister(year, 4, puzzle.Func(day04))
	r.MustRegister(year, 7, puzzle.Func(day07))
}

func lines(input string) []string {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

func ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out[i] = v
	}
	return out, nil
}
