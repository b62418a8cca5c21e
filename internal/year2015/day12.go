package year2015

import (
	"errors"

	"github.com/tidwall/gjson"

	"advent-solver/internal/puzzle"
)

func day12(input string) (puzzle.Answers, error) {
	if !gjson.Valid(input) {
		return puzzle.Answers{}, errors.New("day 12: input is not valid JSON")
	}
	doc := gjson.Parse(input)
	return puzzle.Answers{
		Part1: int(sumNumbers(doc, false)),
		Part2: int(sumNumbers(doc, true)),
	}, nil
}

// sumNumbers adds every number in v. With skipRed, any object holding the
// string value "red" contributes nothing, children included.
func sumNumbers(v gjson.Result, skipRed bool) float64 {
	switch {
	case v.IsObject():
		total, red := 0.0, false
		v.ForEach(func(_, val gjson.Result) bool {
			if skipRed && val.Type == gjson.String && val.Str == "red" {
				red = true
				return false
			}
			total += sumNumbers(val, skipRed)
			return true
		})
		if red {
			return 0
		}
		return total
	case v.IsArray():
		total := 0.0
		v.ForEach(func(_, val gjson.Result) bool {
			total += sumNumbers(val, skipRed)
			return true
		})
		return total
	case v.Type == gjson.Number:
		return v.Num
	}
	return 0
}
