package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"advent-solver/internal/puzzle"
)

const (
	gridRows    = 10
	yearColumn  = 7
	titleWidth  = 20
	lastDayCell = 25
)

var (
	titleStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Width(titleWidth).
			Align(lipgloss.Center)
	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7"))
	selectedStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	unavailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render draws the selector for s. The output depends on nothing but its
// arguments.
func Render(s State, c puzzle.Choices) string {
	var b strings.Builder

	title := "Choose Year"
	if s.Phase == PhaseDay || s.Phase == PhaseDone {
		title = "Choose Day"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')

	years := c.Years()
	rows := max(len(years), gridRows)
	for i := 1; i <= rows; i++ {
		if i <= len(years) {
			b.WriteString(yearCell(years[i-1], s))
		} else {
			b.WriteString(strings.Repeat(" ", yearColumn))
		}
		b.WriteString("┃")
		if i <= gridRows {
			for _, offset := range []int{0, 10, 20} {
				day := i + offset
				if day > lastDayCell {
					break
				}
				b.WriteString(dayCell(day, s, c))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cells carry bracket markers as well as colour so the focus survives a
// terminal without colour support: [x] is focused, (x) is selected but out of
// focus.
func yearCell(year int, s State) string {
	if year != s.Year {
		return fmt.Sprintf("  %d ", year)
	}
	if s.Phase == PhaseYear {
		return " " + focusedStyle.Render(fmt.Sprintf("[%d]", year))
	}
	return " " + selectedStyle.Render(fmt.Sprintf("(%d)", year))
}

func dayCell(day int, s State, c puzzle.Choices) string {
	switch {
	case day == s.Day && s.Phase != PhaseYear:
		return focusedStyle.Render(fmt.Sprintf("[%02d]", day))
	case day == s.Day:
		return selectedStyle.Render(fmt.Sprintf("(%02d)", day))
	case c.Has(s.Year, day):
		return fmt.Sprintf(" %02d ", day)
	default:
		return unavailableStyle.Render(fmt.Sprintf(" %02d ", day))
	}
}
