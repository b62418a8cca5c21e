package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"advent-solver/internal/menu"
)

const cmdHelp = "help"

func main() {
	_ = godotenv.Load()
	log := newLogger()
	if err := run(context.Background(), log, os.Args[1:]); err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case cmdHelp, "-h", "--help":
			printUsage(os.Stdout)
			return nil
		default:
			printUsage(os.Stderr)
			return fmt.Errorf("unexpected argument: %s", args[0])
		}
	}

	cfg, err := loadOrCreateConfig(defaultConfigStore(log))
	if err != nil {
		return err
	}
	f, err := newFetcher(fetcherConfig{Token: cfg.Token})
	if err != nil {
		return err
	}

	registry := solutions()
	log.infof("loaded %d solvers", registry.Len())

	year, day, err := menu.Select(ctx, registry.Choices())
	if err != nil {
		return err
	}

	d := &dispatcher{
		registry: registry,
		fetcher:  f,
		out:      os.Stdout,
		log:      log,
		progress: newSpinner(os.Stderr),
	}
	return d.dispatch(ctx, year, day)
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "advent-solver: fetch and solve Advent of Code puzzles")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  advent-solver")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Keys:")
	_, _ = fmt.Fprintln(w, "  ←/→ h/l   previous/next year, or jump 10 days")
	_, _ = fmt.Fprintln(w, "  ↑/↓ k/j   previous/next year, or step 1 day")
	_, _ = fmt.Fprintln(w, "  enter     choose   esc  back   q  quit")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  AOC_TOKEN  session cookie value (overrides the config file)")
	_, _ = fmt.Fprintln(w, "  NO_COLOR   Disable colored output")
}
