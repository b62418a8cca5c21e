package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndWord(t *testing.T) {
	g := Parse("ab\ncd\n")
	assert.Len(t, g, 4)
	assert.Equal(t, 'd', g[Pt{1, 1}])
	assert.True(t, g.Word(Pt{0, 0}, Pt{1, 1}, "ad"))
	assert.False(t, g.Word(Pt{0, 0}, Pt{1, 0}, "abc"))
	assert.Equal(t, []Pt{{1, 0}}, g.Positions('b'))
}

func TestPointMoves(t *testing.T) {
	p := Pt{2, 3}
	assert.Equal(t, Pt{2, 2}, p.North())
	assert.Equal(t, Pt{2, 4}, p.South())
	assert.Equal(t, Pt{1, 3}, p.West())
	assert.Equal(t, Pt{3, 3}, p.East())

	q := Pt2[int64]{-1, 1}
	assert.Equal(t, Pt2[int64]{0, 2}, q.Add(Pt2[int64]{1, 1}))
}
