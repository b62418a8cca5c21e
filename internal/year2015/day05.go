package year2015

import (
	"strings"

	"advent-solver/internal/puzzle"
)

func day05(input string) (puzzle.Answers, error) {
	nice1, nice2 := 0, 0
	for _, s := range lines(input) {
		if isNice(s) {
			nice1++
		}
		if isNicer(s) {
			nice2++
		}
	}
	return puzzle.Answers{Part1: nice1, Part2: nice2}, nil
}

func isNice(s string) bool {
	for _, bad := range []string{"ab", "cd", "pq", "xy"} {
		if strings.Contains(s, bad) {
			return false
		}
	}
	vowels, double := 0, false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("aeiou", s[i]) >= 0 {
			vowels++
		}
		if i > 0 && s[i] == s[i-1] {
			double = true
		}
	}
	return vowels >= 3 && double
}

func isNicer(s string) bool {
	pair, sandwich := false, false
	for i := 0; i+1 < len(s); i++ {
		if strings.Contains(s[i+2:], s[i:i+2]) {
			pair = true
		}
		if i+2 < len(s) && s[i] == s[i+2] {
			sandwich = true
		}
	}
	return pair && sandwich
}
