package year2024

import (
	"fmt"
	"strconv"
	"strings"

	"advent-solver/internal/puzzle"
)

type equation struct {
	target int
	nums   []int
}

func day07(input string) (puzzle.Answers, error) {
	var eqs []equation
	for n, line := range lines(input) {
		eq, err := parseEquation(line)
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day 7: line %d: %w", n+1, err)
		}
		eqs = append(eqs, eq)
	}

	twoOps, threeOps := 0, 0
	for _, eq := range eqs {
		if eq.solvable(false) {
			twoOps += eq.target
			threeOps += eq.target
		} else if eq.solvable(true) {
			threeOps += eq.target
		}
	}
	return puzzle.Answers{Part1: twoOps, Part2: threeOps}, nil
}

func parseEquation(line string) (equation, error) {
	lhs, rhs, ok := strings.Cut(line, ":")
	if !ok {
		return equation{}, fmt.Errorf("missing ':' in %q", line)
	}
	target, err := strconv.Atoi(strings.TrimSpace(lhs))
	if err != nil {
		return equation{}, fmt.Errorf("bad target %q", lhs)
	}
	nums, err := ints(strings.Fields(rhs))
	if err != nil {
		return equation{}, err
	}
	if len(nums) == 0 {
		return equation{}, fmt.Errorf("no operands in %q", line)
	}
	for _, v := range nums {
		if v < 1 {
			return equation{}, fmt.Errorf("operand %d must be positive", v)
		}
	}
	return equation{target: target, nums: nums}, nil
}

// solvable tries every operator combination left to right. Operands are
// positive, so a running value above the target can never come back down.
func (eq equation) solvable(concat bool) bool {
	var walk func(acc, i int) bool
	walk = func(acc, i int) bool {
		if acc > eq.target {
			return false
		}
		if i == len(eq.nums) {
			return acc == eq.target
		}
		v := eq.nums[i]
		if walk(acc+v, i+1) || walk(acc*v, i+1) {
			return true
		}
		return concat && walk(joinDigits(acc, v), i+1)
	}
	return walk(eq.nums[0], 1)
}

func joinDigits(a, b int) int {
	for shift := b; shift > 0; shift /= 10 {
		a *= 10
	}
	return a + b
}
