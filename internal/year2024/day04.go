package year2024

import (
	"errors"

	"advent-solver/internal/grid"
	"advent-solver/internal/puzzle"
)

func day04(input string) (puzzle.Answers, error) {
	g := grid.Parse(input)
	if len(g) == 0 {
		return puzzle.Answers{}, errors.New("day 4: empty grid")
	}

	xmas := 0
	for _, p := range g.Positions('X') {
		for _, d := range grid.Directions8 {
			if g.Word(p, d, "XMAS") {
				xmas++
			}
		}
	}

	crosses := 0
	for _, p := range g.Positions('A') {
		if isMasCross(g, p) {
			crosses++
		}
	}
	return puzzle.Answers{Part1: xmas, Part2: crosses}, nil
}

// isMasCross reports whether both diagonals through the A at p read MAS in
// either direction.
func isMasCross(g grid.Grid, p grid.Pt) bool {
	diagonal := func(a, b grid.Pt) bool {
		x, y := g[p.Add(a)], g[p.Add(b)]
		return (x == 'M' && y == 'S') || (x == 'S' && y == 'M')
	}
	return diagonal(grid.Pt{X: -1, Y: -1}, grid.Pt{X: 1, Y: 1}) &&
		diagonal(grid.Pt{X: 1, Y: -1}, grid.Pt{X: -1, Y: 1})
}
