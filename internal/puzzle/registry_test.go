package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(a, b any) Solver {
	return Func(func(string) (Answers, error) { return Answers{Part1: a, Part2: b}, nil })
}

func sampleRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(2024, 2, constant(3, 4)))
	require.NoError(t, r.Register(2015, 3, constant(5, 6)))
	require.NoError(t, r.Register(2015, 1, constant(1, 2)))
	require.NoError(t, r.Register(2024, 1, constant(7, 8)))
	require.NoError(t, r.Register(2015, 2, constant(9, 10)))
	return r
}

func TestRegisterRejectsDuplicatesAndInvalidKeys(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(2015, 1, constant(0, 0)))

	assert.Error(t, r.Register(2015, 1, constant(0, 0)))
	assert.Error(t, r.Register(0, 1, constant(0, 0)))
	assert.Error(t, r.Register(2015, 0, constant(0, 0)))
	assert.Error(t, r.Register(2015, 2, nil))
	assert.Panics(t, func() { r.MustRegister(2015, 1, constant(0, 0)) })
	assert.Equal(t, 1, r.Len())
}

func TestKeysAreAscending(t *testing.T) {
	r := sampleRegistry(t)
	assert.Equal(t, []Key{
		{2015, 1}, {2015, 2}, {2015, 3},
		{2024, 1}, {2024, 2},
	}, r.Keys())
}

func TestChoicesMatchRegistry(t *testing.T) {
	r := sampleRegistry(t)
	c := r.Choices()
	assert.Equal(t, Choices{2015: {1, 2, 3}, 2024: {1, 2}}, c)

	for year, days := range c {
		for _, day := range days {
			s, ok := r.Lookup(year, day)
			require.True(t, ok, "missing solver for %d/%d", year, day)
			require.NotNil(t, s)
		}
	}
	for _, k := range r.Keys() {
		assert.True(t, c.Has(k.Year, k.Day), "choice set lacks %s", k)
	}
}

func TestLookupMissReturnsAbsent(t *testing.T) {
	r := sampleRegistry(t)
	for _, k := range []Key{{2015, 99}, {2016, 1}, {2024, 3}, {0, 0}} {
		s, ok := r.Lookup(k.Year, k.Day)
		assert.False(t, ok, k.String())
		assert.Nil(t, s, k.String())
	}
}

func TestFuncSolve(t *testing.T) {
	boom := errors.New("boom")
	f := Func(func(in string) (Answers, error) {
		if in == "" {
			return Answers{}, boom
		}
		return Answers{Part1: len(in), Part2: in}, nil
	})

	got, err := f.Solve("abc")
	require.NoError(t, err)
	assert.Equal(t, Answers{Part1: 3, Part2: "abc"}, got)

	_, err = f.Solve("")
	assert.ErrorIs(t, err, boom)
}

func TestChoicesNavigation(t *testing.T) {
	c := Choices{2015: {1, 2, 3}, 2020: {5}, 2024: {1, 2}}

	assert.Equal(t, []int{2015, 2020, 2024}, c.Years())
	assert.Equal(t, 2024, c.MaxYear())
	assert.Equal(t, 1, c.MinDay(2015))
	assert.Equal(t, 3, c.MaxDay(2015))
	assert.Equal(t, 0, c.MaxDay(1999))

	y, ok := c.PrevYear(2024)
	assert.True(t, ok)
	assert.Equal(t, 2020, y)
	_, ok = c.PrevYear(2015)
	assert.False(t, ok)

	y, ok = c.NextYear(2015)
	assert.True(t, ok)
	assert.Equal(t, 2020, y)
	_, ok = c.NextYear(2024)
	assert.False(t, ok)

	assert.True(t, c.Has(2020, 5))
	assert.False(t, c.Has(2020, 4))
	assert.Equal(t, 0, Choices{}.MaxYear())
}
