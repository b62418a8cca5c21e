package menu

import "advent-solver/internal/puzzle"

// Phase tells which list has focus, or how the selection ended.
type Phase int

const (
	PhaseYear      Phase = iota // moving through years
	PhaseDay                    // moving through the days of the chosen year
	PhaseDone                   // a day was confirmed
	PhaseCancelled              // the user quit
)

func (p Phase) String() string {
	switch p {
	case PhaseYear:
		return "year"
	case PhaseDay:
		return "day"
	case PhaseDone:
		return "done"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Action is a key press after it has been mapped through the key bindings.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionQuit
)

// State is the whole selector state. It is a value: Apply returns the next
// state and never mutates the receiver.
type State struct {
	Year  int
	Day   int
	Phase Phase
}

// NewState starts on the latest year with its latest day preselected.
func NewState(c puzzle.Choices) State {
	year := c.MaxYear()
	return State{Year: year, Day: c.MaxDay(year), Phase: PhaseYear}
}

// Finished reports whether the selection is over.
func (s State) Finished() bool {
	return s.Phase == PhaseDone || s.Phase == PhaseCancelled
}

// Result returns the confirmed pair, or (0, 0) unless the state is PhaseDone.
func (s State) Result() (year, day int) {
	if s.Phase != PhaseDone {
		return 0, 0
	}
	return s.Year, s.Day
}

// Apply runs one transition. After every transition the selected day is
// guaranteed to be one of the current year's days.
func (s State) Apply(a Action, c puzzle.Choices) State {
	if s.Finished() {
		return s
	}
	if a == ActionQuit {
		s.Phase = PhaseCancelled
		return s
	}

	switch s.Phase {
	case PhaseYear:
		s = s.applyYear(a, c)
	case PhaseDay:
		s = s.applyDay(a, c)
	}
	return s.normalize(c)
}

func (s State) applyYear(a Action, c puzzle.Choices) State {
	switch a {
	case ActionLeft, ActionUp:
		if y, ok := c.PrevYear(s.Year); ok {
			s.Year = y
		}
	case ActionRight, ActionDown:
		if y, ok := c.NextYear(s.Year); ok {
			s.Year = y
		}
	case ActionConfirm:
		if len(c[s.Year]) > 0 {
			s.Phase = PhaseDay
			s.Day = c.MaxDay(s.Year)
		}
	}
	return s
}

func (s State) applyDay(a Action, c puzzle.Choices) State {
	switch a {
	case ActionLeft:
		if c.Has(s.Year, s.Day-10) {
			s.Day -= 10
		} else {
			s.Day = c.MinDay(s.Year)
		}
	case ActionRight:
		if c.Has(s.Year, s.Day+10) {
			s.Day += 10
		} else {
			s.Day = c.MaxDay(s.Year)
		}
	case ActionUp:
		if c.Has(s.Year, s.Day-1) {
			s.Day--
		}
	case ActionDown:
		if c.Has(s.Year, s.Day+1) {
			s.Day++
		}
	case ActionConfirm:
		s.Phase = PhaseDone
	case ActionBack:
		s.Phase = PhaseYear
	}
	return s
}

func (s State) normalize(c puzzle.Choices) State {
	if !c.Has(s.Year, s.Day) {
		s.Day = c.MaxDay(s.Year)
	}
	return s
}
