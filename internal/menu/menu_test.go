package menu

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent-solver/internal/puzzle"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok, "unexpected model type: %T", next)
	}
	return m, cmd
}

func TestKeyBindings(t *testing.T) {
	keys := defaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{keyRunes("h"), ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{keyRunes("l"), ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{keyRunes("k"), ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, ActionDown},
		{keyRunes("j"), ActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionBack},
		{keyRunes("q"), ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{keyRunes("x"), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys.action(tt.msg))
		})
	}
}

func TestModelQuitsOnConfirm(t *testing.T) {
	m := newModel(scenario)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, PhaseDay, m.state.Phase)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	y, d := m.state.Result()
	assert.Equal(t, 2024, y)
	assert.Equal(t, 1, d)
	assert.Empty(t, m.View())
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := newModel(scenario)
	next, cmd := press(t, m, keyRunes("x"), tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m.state, next.state)
	assert.Contains(t, next.View(), "Choose Year")
}

func TestSelectNoChoices(t *testing.T) {
	_, _, err := Select(context.Background(), puzzle.Choices{})
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestSelectRunsProgram(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantYear int
		wantDay  int
	}{
		{"quit", "q", 0, 0},
		{"confirm twice", "\r\r", 2024, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var out bytes.Buffer
			year, day, err := Select(ctx, scenario,
				WithInput(strings.NewReader(tt.input)),
				WithOutput(&out),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}

func TestRenderLayout(t *testing.T) {
	s := NewState(scenario)
	out := Render(s, scenario)

	assert.Contains(t, out, "Choose Year")
	assert.Contains(t, out, " 2015 ")
	assert.Contains(t, out, "2024")
	for _, day := range []string{" 01 ", " 10 ", " 11 ", " 20 ", " 21 ", " 25 "} {
		assert.Contains(t, out, day)
	}
	assert.NotContains(t, out, " 26 ")
	assert.Equal(t, out, Render(s, scenario), "render must be deterministic")

	day := Render(s.Apply(ActionConfirm, scenario), scenario)
	assert.Contains(t, day, "Choose Day")
}

func TestRenderFocusWithoutColour(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	s := NewState(scenario)
	y, d := s.Year, s.Day
	yearPhase := Render(s, scenario)
	dayPhase := Render(s.Apply(ActionConfirm, scenario), scenario)

	assert.NotContains(t, yearPhase, "\033[")
	assert.NotContains(t, dayPhase, "\033[")
	assert.NotEqual(t, yearPhase, dayPhase)

	assert.Contains(t, yearPhase, fmt.Sprintf("[%d]", y))
	assert.Contains(t, yearPhase, fmt.Sprintf("(%02d)", d))
	assert.NotContains(t, yearPhase, fmt.Sprintf("[%02d]", d))

	assert.Contains(t, dayPhase, fmt.Sprintf("(%d)", y))
	assert.Contains(t, dayPhase, fmt.Sprintf("[%02d]", d))
	assert.NotContains(t, dayPhase, fmt.Sprintf("[%d]", y))
}

func TestRenderRowsGrowWithYears(t *testing.T) {
	c := puzzle.Choices{}
	for y := 2010; y < 2022; y++ {
		c[y] = []int{1}
	}
	out := Render(NewState(c), c)
	for y := 2010; y < 2022; y++ {
		assert.Contains(t, out, strconv.Itoa(y))
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// three lines of title box, then one row per year
	assert.Len(t, lines, 3+12)
}
