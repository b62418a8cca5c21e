package puzzle

import (
	"maps"
	"slices"
)

// Choices maps a year to the ascending list of days that have a solver.
// Built from Registry.Choices; a year is never present with an empty list.
type Choices map[int][]int

// Years returns the available years in ascending order.
func (c Choices) Years() []int {
	return slices.Sorted(maps.Keys(c))
}

// Has reports whether day is available in year.
func (c Choices) Has(year, day int) bool {
	_, found := slices.BinarySearch(c[year], day)
	return found
}

// MaxYear returns the latest year, or 0 for an empty set.
func (c Choices) MaxYear() int {
	years := c.Years()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

// MinDay returns the earliest day of year, or 0 if the year is absent.
func (c Choices) MinDay(year int) int {
	days := c[year]
	if len(days) == 0 {
		return 0
	}
	return days[0]
}

// MaxDay returns the latest day of year, or 0 if the year is absent.
func (c Choices) MaxDay(year int) int {
	days := c[year]
	if len(days) == 0 {
		return 0
	}
	return days[len(days)-1]
}

// PrevYear returns the closest available year before year.
func (c Choices) PrevYear(year int) (int, bool) {
	prev, ok := 0, false
	for _, y := range c.Years() {
		if y >= year {
			break
		}
		prev, ok = y, true
	}
	return prev, ok
}

// NextYear returns the closest available year after year.
func (c Choices) NextYear(year int) (int, bool) {
	for _, y := range c.Years() {
		if y > year {
			return y, true
		}
	}
	return 0, false
}
