package year2015

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent-solver/internal/puzzle"
)

func day10(input string) (puzzle.Answers, error) {
	seq := strings.TrimSpace(input)
	if seq == "" {
		return puzzle.Answers{}, errors.New("day 10: empty sequence")
	}
	for i, c := range seq {
		if c < '0' || c > '9' {
			return puzzle.Answers{}, fmt.Errorf("day 10: non-digit %q at %d", c, i+1)
		}
	}
	for i := 0; i < 40; i++ {
		seq = lookAndSay(seq)
	}
	part1 := len(seq)
	for i := 0; i < 10; i++ {
		seq = lookAndSay(seq)
	}
	return puzzle.Answers{Part1: part1, Part2: len(seq)}, nil
}

func lookAndSay(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		b.WriteString(strconv.Itoa(j - i))
		b.WriteByte(s[i])
		i = j
	}
	return b.String()
}
