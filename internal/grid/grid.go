// Package grid has small point and character-grid helpers shared by the
// grid-shaped puzzles.
package grid

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Pt2 is a point on a 2D lattice. Y grows downward.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the common int point.
type Pt = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] { return Pt2[T]{p.X + d.X, p.Y + d.Y} }

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// Directions8 lists the offsets to all eight neighbours.
var Directions8 = []Pt{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a sparse character grid keyed by position.
type Grid map[Pt]rune

// Parse reads s line by line into a Grid, skipping whitespace.
func Parse(s string) Grid {
	g := Grid{}
	for y, line := range strings.Split(s, "\n") {
		for x, r := range strings.TrimRight(line, "\r") {
			if r == ' ' || r == '\t' {
				continue
			}
			g[Pt{x, y}] = r
		}
	}
	return g
}

// Positions returns every position holding v.
func (g Grid) Positions(v rune) []Pt {
	var out []Pt
	for p, r := range g {
		if r == v {
			out = append(out, p)
		}
	}
	return out
}

// Word reports whether reading len(word) cells from p in direction d spells
// word.
func (g Grid) Word(p, d Pt, word string) bool {
	for _, want := range word {
		if g[p] != want {
			return false
		}
		p = p.Add(d)
	}
	return true
}
