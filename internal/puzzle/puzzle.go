// Package puzzle defines the solver capability and the static registry that
// maps a (year, day) pair to the solver for that day's puzzle.
package puzzle

import "fmt"

// Answers holds the two results of a daily puzzle. Values are printed with
// the fmt package, so any type with a sensible %v form works.
type Answers struct {
	Part1 any
	Part2 any
}

// Solver turns the raw puzzle input into both answers.
type Solver interface {
	Solve(input string) (Answers, error)
}

// Func adapts an ordinary function to the Solver interface.
type Func func(input string) (Answers, error)

// Solve calls f(input).
func (f Func) Solve(input string) (Answers, error) { return f(input) }

// Key identifies a single puzzle.
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string { return fmt.Sprintf("%d/%02d", k.Year, k.Day) }

// Less orders keys by year, then day.
func (k Key) Less(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Day < o.Day
}
