// Package menu implements the interactive year/day picker.
//
// The picker is a bubbletea program wrapped around a pure state machine
// (State.Apply) and a pure renderer (Render). bubbletea owns the terminal:
// it enters raw mode and hides the cursor when the program starts and
// restores both on every way out of Run, including errors and panics.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"advent-solver/internal/puzzle"
)

// ErrNoChoices is returned when there is nothing to pick from.
var ErrNoChoices = errors.New("menu: no puzzles available")

// Option customizes Select, mostly so tests can supply their own streams.
type Option func(*options)

type options struct {
	input  io.Reader
	output io.Writer
}

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

// WithOutput draws frames to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

type model struct {
	choices puzzle.Choices
	state   State
	keys    keyMap
	help    help.Model
}

func newModel(c puzzle.Choices) model {
	return model{
		choices: c,
		state:   NewState(c),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		m.state = m.state.Apply(m.keys.action(msg), m.choices)
		if m.state.Finished() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.state.Finished() {
		return ""
	}
	return Render(m.state, m.choices) + "\n" + m.help.View(m.keys)
}

// Select runs the picker until the user confirms a day or quits. Quitting
// returns (0, 0) and a nil error.
func Select(ctx context.Context, c puzzle.Choices, opts ...Option) (year, day int, err error) {
	if len(c) == 0 {
		return 0, 0, ErrNoChoices
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.input != nil {
		progOpts = append(progOpts, tea.WithInput(o.input))
	}
	if o.output != nil {
		progOpts = append(progOpts, tea.WithOutput(o.output))
	} else {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newModel(c), progOpts...).Run()
	if err != nil {
		return 0, 0, fmt.Errorf("menu: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return 0, 0, fmt.Errorf("menu: unexpected model type %T", final)
	}
	year, day = m.state.Result()
	return year, day, nil
}
