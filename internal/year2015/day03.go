package year2015

import (
	"fmt"
	"strings"

	"advent-solver/internal/grid"
	"advent-solver/internal/puzzle"
)

// day03 counts houses that get at least one present, first with Santa
// alone and then with Santa and Robo-Santa taking turns.
func day03(input string) (puzzle.Answers, error) {
	moves := strings.TrimSpace(input)
	for i, c := range moves {
		if !strings.ContainsRune("^v<>", c) {
			return puzzle.Answers{}, fmt.Errorf("day 3: unexpected %q at %d", c, i+1)
		}
	}
	return puzzle.Answers{Part1: deliver(moves, 1), Part2: deliver(moves, 2)}, nil
}

func deliver(moves string, santas int) int {
	pos := make([]grid.Pt, santas)
	visited := map[grid.Pt]bool{{}: true}
	for i, c := range moves {
		p := &pos[i%santas]
		switch c {
		case '^':
			*p = p.North()
		case 'v':
			*p = p.South()
		case '<':
			*p = p.West()
		case '>':
			*p = p.East()
		}
		visited[*p] = true
	}
	return len(visited)
}
