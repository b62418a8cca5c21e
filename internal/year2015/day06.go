package year2015

import (
	"fmt"
	"regexp"
	"strconv"

	"advent-solver/internal/puzzle"
)

const lightsSide = 1000

var reLightCmd = regexp.MustCompile(`^(turn on|turn off|toggle) (\d+),(\d+) through (\d+),(\d+)$`)

type lightCmd struct {
	op             string
	x0, y0, x1, y1 int
}

func day06(input string) (puzzle.Answers, error) {
	var cmds []lightCmd
	for n, line := range lines(input) {
		cmd, err := parseLightCmd(line)
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day 6: line %d: %w", n+1, err)
		}
		cmds = append(cmds, cmd)
	}

	lit := make([]bool, lightsSide*lightsSide)
	bright := make([]int, lightsSide*lightsSide)
	for _, c := range cmds {
		for y := c.y0; y <= c.y1; y++ {
			for x := c.x0; x <= c.x1; x++ {
				i := y*lightsSide + x
				switch c.op {
				case "turn on":
					lit[i] = true
					bright[i]++
				case "turn off":
					lit[i] = false
					if bright[i] > 0 {
						bright[i]--
					}
				case "toggle":
					lit[i] = !lit[i]
					bright[i] += 2
				}
			}
		}
	}

	on, total := 0, 0
	for i := range lit {
		if lit[i] {
			on++
		}
		total += bright[i]
	}
	return puzzle.Answers{Part1: on, Part2: total}, nil
}

func parseLightCmd(line string) (lightCmd, error) {
	m := reLightCmd.FindStringSubmatch(line)
	if m == nil {
		return lightCmd{}, fmt.Errorf("unrecognised instruction %q", line)
	}
	var coords [4]int
	for i := range coords {
		v, err := strconv.Atoi(m[i+2])
		if err != nil {
			return lightCmd{}, err
		}
		if v >= lightsSide {
			return lightCmd{}, fmt.Errorf("coordinate %d out of range", v)
		}
		coords[i] = v
	}
	c := lightCmd{op: m[1], x0: coords[0], y0: coords[1], x1: coords[2], y1: coords[3]}
	if c.x0 > c.x1 || c.y0 > c.y1 {
		return lightCmd{}, fmt.Errorf("inverted range in %q", line)
	}
	return c, nil
}
