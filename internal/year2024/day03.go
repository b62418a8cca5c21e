package year2024

import (
	"regexp"
	"strconv"

	"advent-solver/internal/puzzle"
)

var reInstr = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// day03 sums the valid mul(a,b) instructions in corrupted memory. Part 2
// honours do() and don't() toggles.
func day03(input string) (puzzle.Answers, error) {
	all, enabledSum := 0, 0
	enabled := true
	for _, m := range reInstr.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			all += a * b
			if enabled {
				enabledSum += a * b
			}
		}
	}
	return puzzle.Answers{Part1: all, Part2: enabledSum}, nil
}
