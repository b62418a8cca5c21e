package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"advent-solver/internal/puzzle"
)

// inputFetcher is the part of *fetcher the dispatcher needs.
type inputFetcher interface {
	fetch(ctx context.Context, year, day int) (string, error)
}

// stage names the step of a run that failed.
type stage string

const (
	stageFetch stage = "fetch"
	stageSolve stage = "solve"
)

// dispatchError wraps a fetch or solver failure with the puzzle it belongs
// to. The component error stays reachable through errors.Is/As.
type dispatchError struct {
	Stage stage
	Year  int
	Day   int
	Err   error
}

func (e *dispatchError) Error() string {
	return fmt.Sprintf("%s %d day %d: %v", e.Stage, e.Year, e.Day, e.Err)
}

func (e *dispatchError) Unwrap() error { return e.Err }

// dispatcher runs the solver for one selected day.
type dispatcher struct {
	registry *puzzle.Registry
	fetcher  inputFetcher
	out      io.Writer
	log      *logger
	progress *spinner
}

// dispatch fetches the input for (year, day), solves it and prints both
// answers. The (0, 0) pair means the user quit and does nothing. A day with
// no solver is reported and is not an error.
func (d *dispatcher) dispatch(ctx context.Context, year, day int) error {
	if year == 0 && day == 0 {
		return nil
	}
	solver, ok := d.registry.Lookup(year, day)
	if !ok {
		d.log.warnf("no solution found for year %d day %d", year, day)
		return nil
	}

	d.progress.Start(fmt.Sprintf("fetching input for %d day %d", year, day))
	input, err := d.fetcher.fetch(ctx, year, day)
	d.progress.Stop()
	if err != nil {
		return &dispatchError{Stage: stageFetch, Year: year, Day: day, Err: err}
	}
	d.log.infof("input fetched: year=%d day=%d bytes=%d", year, day, len(input))

	start := time.Now()
	d.progress.Start(fmt.Sprintf("solving %d day %d", year, day))
	answers, err := solver.Solve(input)
	d.progress.Stop()
	if err != nil {
		return &dispatchError{Stage: stageSolve, Year: year, Day: day, Err: err}
	}
	d.log.okf("solved %d day %d (elapsed %s)", year, day, time.Since(start).Round(time.Millisecond))

	_, _ = fmt.Fprintf(d.out, "Part 1: %v\n", answers.Part1)
	_, _ = fmt.Fprintf(d.out, "Part 2: %v\n", answers.Part2)
	return nil
}
