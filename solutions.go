package main

import (
	"advent-solver/internal/puzzle"
	"advent-solver/internal/year2015"
	"advent-solver/internal/year2024"
)

// solutions builds the registry of every solver this binary knows.
func solutions() *puzzle.Registry {
	r := puzzle.NewRegistry()
	year2015.Register(r)
	year2024.Register(r)
	return r
}
