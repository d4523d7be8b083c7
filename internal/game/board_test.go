package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// boardFrom builds a board from rows given top row first, matching the text
// rendering. '.' is free, digits are owners.
func boardFrom(rows ...string) Board {
	h := len(rows)
	b := NewBoard(len(rows[0]), h)
	for i, row := range rows {
		y := h - 1 - i
		for x, c := range row {
			if c != '.' {
				b.set(Pos{X: x, Y: y}, int(c-'0'))
			}
		}
	}
	return b
}

func TestConnected(t *testing.T) {
	b := boardFrom(
		"111.",
		"..1.",
		"1.11",
	)

	assert.True(t, Connected(&b, Pos{0, 2}, Pos{3, 0}))
	assert.True(t, Connected(&b, Pos{2, 1}, Pos{2, 1}))
	assert.False(t, Connected(&b, Pos{0, 0}, Pos{0, 2}))
	assert.False(t, Connected(&b, Pos{0, 0}, Pos{4, 0}))
	assert.False(t, Connected(&b, Pos{-1, 0}, Pos{0, 0}))
}

func TestConnectedIgnoresOtherOwners(t *testing.T) {
	b := boardFrom(
		"121",
		"121",
		"121",
	)
	assert.False(t, Connected(&b, Pos{0, 0}, Pos{2, 2}))
	assert.True(t, Connected(&b, Pos{1, 0}, Pos{1, 2}))
}

func TestCountAdjacentAreas(t *testing.T) {
	b := boardFrom(
		".1.",
		"1.1",
		"111",
	)

	// left, right and bottom meet through the bottom row; top is separate
	assert.Equal(t, 2, CountAdjacentAreas(&b, Pos{1, 1}, 1))
	assert.Equal(t, 0, CountAdjacentAreas(&b, Pos{1, 1}, 2))
	assert.Equal(t, 0, CountAdjacentAreas(&b, Pos{3, 3}, 1))
}

func TestCountAreasSkipsInactive(t *testing.T) {
	b := boardFrom(
		"1.1",
		"...",
		"1.1",
	)
	cells := [4]Pos{{0, 0}, {2, 0}, {0, 2}, {2, 2}}

	assert.Equal(t, 0, CountAreas(&b, cells, [4]bool{}))
	assert.Equal(t, 2, CountAreas(&b, cells, [4]bool{true, false, false, true}))
	assert.Equal(t, 4, CountAreas(&b, cells, [4]bool{true, true, true, true}))
}

func TestNeighborQueries(t *testing.T) {
	b := boardFrom(
		"...",
		"...",
		"1..",
	)

	assert.True(t, HasSameOwnerNeighbor(&b, Pos{0, 1}, 1))
	assert.False(t, HasSameOwnerNeighbor(&b, Pos{1, 1}, 1))
	assert.False(t, HasSameOwnerNeighbor(&b, Pos{0, 3}, 1))

	// (0,1) and (1,0) already border player 1
	assert.Equal(t, 2, NewAdjacentFree(&b, Pos{1, 1}, 1))
	assert.Equal(t, 4, NewAdjacentFree(&b, Pos{1, 1}, 2))
	assert.Equal(t, 0, NewAdjacentFree(&b, Pos{5, 5}, 1))

	cells, active := CollectSameOwnerNeighbors(&b, Pos{1, 0}, 1)
	assert.Equal(t, [4]bool{true, false, false, false}, active)
	assert.Equal(t, Pos{0, 0}, cells[0])
}

func TestNeighborOwnersAreDistinct(t *testing.T) {
	b := boardFrom(
		".3.",
		"2.2",
		"...",
	)
	assert.Equal(t, []int{2, 3}, neighborOwners(&b, Pos{1, 1}))
	assert.Empty(t, neighborOwners(&b, Pos{1, 0}))
}
