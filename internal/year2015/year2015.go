// Package year2015 holds the solvers for the 2015 puzzles.
package year2015

import (
	"strings"

	"advent-solver/internal/puzzle"
)

const year = 2015

// Register installs every 2015 solver into r.
func Register(r *puzzle.Registry) {
	r.MustRegister(year, 1, puzzle.Func(day01))
	r.MustRegister(year, 2, puzzle.Func(day02))
	r.MustRegister(year, 3, puzzle.Func(day03))
	r.MustRegister(year, 4, puzzle.Func(day04))
	r.MustRegister(year, 5, puzzle.Func(day05))
	r.MustRegister(year, 6, puzzle.Func(day06))
	r.MustRegister(year, 8, puzzle.Func(day08))
	r.MustRegister(year, 10, puzzle.Func(day10))
	r.MustRegister(year, 12, puzzle.Func(day12))
}

func lines(input string) []string {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
