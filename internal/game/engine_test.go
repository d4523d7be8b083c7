package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneGame(g *Game) *Game {
	c := *g
	c.board.Cells = append([]uint32(nil), g.board.Cells...)
	c.players = append([]player(nil), g.players...)
	return &c
}

func mustNew(t *testing.T, w, h, players, areas int) *Game {
	t.Helper()
	g, err := New(w, h, players, areas)
	require.NoError(t, err)
	return g
}

func TestNewRejectsZeroParams(t *testing.T) {
	cases := []struct{ w, h, p, a int }{
		{0, 5, 2, 1},
		{5, 0, 2, 1},
		{5, 5, 0, 1},
		{5, 5, 2, 0},
	}
	for _, c := range cases {
		g, err := New(c.w, c.h, c.p, c.a)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidParams)
	}
}

func TestNewRejectsOversizedGame(t *testing.T) {
	cases := []struct{ w, h, p int }{
		{MaxCells, 2, 1},
		{1, 1, MaxCells - 1},
		{1, 1, MaxPlayers + 1},
	}
	for _, c := range cases {
		g, err := New(c.w, c.h, c.p, 1)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrBoardTooLarge)
	}

	g, err := New(1, 1, MaxPlayers, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxPlayers, g.Players())
}

func TestNewGameIsEmpty(t *testing.T) {
	g := mustNew(t, 4, 3, 2, 2)

	assert.Equal(t, 12, g.FreeCells())
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 2, g.Players())
	for p := 1; p <= 2; p++ {
		assert.Equal(t, 0, g.BusyFields(p))
		assert.Equal(t, 12, g.FreeFields(p))
		assert.False(t, g.GoldenPossible(p))
	}
	require.NoError(t, g.Verify())
}

func TestCornerThenNeighbour(t *testing.T) {
	g := mustNew(t, 5, 5, 2, 1)

	require.True(t, g.Move(1, 0, 0))
	assert.Equal(t, 2, g.FreeFields(1))
	assert.Equal(t, 24, g.FreeFields(2))

	require.True(t, g.Move(1, 0, 1))
	st, ok := g.Stats(1)
	require.True(t, ok)
	assert.Equal(t, 1, st.Areas)
	assert.Equal(t, 3, st.AdjacentFree)
	assert.Equal(t, 2, g.BusyFields(1))
	require.NoError(t, g.Verify())
}

func TestDiagonalPlacementExceedsAreaLimit(t *testing.T) {
	g := mustNew(t, 5, 5, 2, 1)
	require.NoError(t, g.Play(1, 0, 0))

	before := cloneGame(g)
	assert.ErrorIs(t, g.Play(1, 1, 1), ErrAreaLimit)
	assert.Equal(t, before, g)
}

func TestRejectedMovesLeaveStateUnchanged(t *testing.T) {
	g := mustNew(t, 5, 5, 2, 2)
	require.NoError(t, g.Play(1, 2, 2))
	require.NoError(t, g.Play(2, 0, 0))
	require.NoError(t, g.Play(1, 4, 4))

	cases := []struct {
		name      string
		player    int
		x, y      int
		wantError error
	}{
		{"player zero", 0, 1, 1, ErrInvalidPlayer},
		{"unknown player", 3, 1, 1, ErrInvalidPlayer},
		{"negative x", 1, -1, 0, ErrOutOfBounds},
		{"x past width", 1, 5, 0, ErrOutOfBounds},
		{"y past height", 1, 0, 5, ErrOutOfBounds},
		{"own cell", 1, 2, 2, ErrCellOccupied},
		{"opponent cell", 1, 0, 0, ErrCellOccupied},
		{"third area", 1, 0, 4, ErrAreaLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := cloneGame(g)
			err := g.Play(tc.player, tc.x, tc.y)
			assert.ErrorIs(t, err, tc.wantError)
			assert.Equal(t, before, g)
		})
	}
}

func TestMergingAreas(t *testing.T) {
	g := mustNew(t, 3, 1, 1, 2)
	require.True(t, g.Move(1, 0, 0))
	require.True(t, g.Move(1, 2, 0))

	st, _ := g.Stats(1)
	require.Equal(t, 2, st.Areas)
	assert.Equal(t, 1, g.FreeFields(1))

	require.True(t, g.Move(1, 1, 0))
	st, _ = g.Stats(1)
	assert.Equal(t, 1, st.Areas)
	assert.Equal(t, 0, st.AdjacentFree)
	assert.Equal(t, 0, g.FreeFields(1))
	require.NoError(t, g.Verify())
}

func TestOpponentLosesOneAdjacentCellPerMove(t *testing.T) {
	g := mustNew(t, 3, 3, 2, 2)
	require.NoError(t, g.Play(2, 0, 1))
	require.NoError(t, g.Play(2, 1, 2))
	st, _ := g.Stats(2)
	require.Equal(t, 4, st.AdjacentFree)

	// (1,1) touches both of player 2's cells
	require.NoError(t, g.Play(1, 1, 1))
	st, _ = g.Stats(2)
	assert.Equal(t, 3, st.AdjacentFree)
	require.NoError(t, g.Verify())
}

func TestGoldenMoveRejectedWhenVictimWouldSplit(t *testing.T) {
	g := mustNew(t, 5, 5, 2, 1)
	for y := 0; y < 3; y++ {
		require.NoError(t, g.Play(2, 1, y))
	}
	require.True(t, g.GoldenPossible(1))

	before := cloneGame(g)
	assert.ErrorIs(t, g.PlayGolden(1, 1, 1), ErrAreaLimit)
	assert.Equal(t, before, g)
	assert.Equal(t, 2, g.Owner(1, 1))

	st, _ := g.Stats(1)
	assert.False(t, st.GoldenUsed)
	assert.True(t, g.GoldenPossible(1))
}

func TestGoldenMoveRejectedWhenTakerWouldExceedLimit(t *testing.T) {
	g := mustNew(t, 5, 5, 2, 1)
	require.NoError(t, g.Play(1, 0, 0))
	require.NoError(t, g.Play(2, 4, 4))

	before := cloneGame(g)
	assert.ErrorIs(t, g.PlayGolden(1, 4, 4), ErrAreaLimit)
	assert.Equal(t, before, g)
}

func TestGoldenMoveCommits(t *testing.T) {
	g := mustNew(t, 5, 5, 2, 1)
	for y := 0; y < 3; y++ {
		require.NoError(t, g.Play(2, 1, y))
	}

	require.NoError(t, g.PlayGolden(1, 1, 2))
	assert.Equal(t, 1, g.Owner(1, 2))
	assert.Equal(t, 1, g.BusyFields(1))
	assert.Equal(t, 2, g.BusyFields(2))
	assert.False(t, g.GoldenPossible(1))
	assert.True(t, g.GoldenPossible(2))

	st, _ := g.Stats(1)
	assert.True(t, st.GoldenUsed)
	assert.Equal(t, 1, st.Areas)
	require.NoError(t, g.Verify())

	assert.ErrorIs(t, g.PlayGolden(1, 1, 0), ErrGoldenUsed)
}

func TestGoldenMoveTakingLastCellClearsAreas(t *testing.T) {
	g := mustNew(t, 3, 3, 2, 1)
	require.NoError(t, g.Play(2, 1, 1))
	require.NoError(t, g.PlayGolden(1, 1, 1))

	st, _ := g.Stats(2)
	assert.Equal(t, 0, st.Areas)
	assert.Equal(t, 0, st.Occupied)
	assert.Equal(t, 0, st.AdjacentFree)
	assert.Equal(t, 8, g.FreeFields(2))
	require.NoError(t, g.Verify())
}

func TestGoldenMoveRejections(t *testing.T) {
	g := mustNew(t, 4, 4, 3, 2)
	require.NoError(t, g.Play(1, 0, 0))
	require.NoError(t, g.Play(2, 3, 3))

	cases := []struct {
		name   string
		player int
		x, y   int
		want   error
	}{
		{"invalid player", 4, 3, 3, ErrInvalidPlayer},
		{"out of bounds", 1, 4, 3, ErrOutOfBounds},
		{"free target", 1, 1, 1, ErrCellFree},
		{"own target", 1, 0, 0, ErrOwnCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := cloneGame(g)
			assert.ErrorIs(t, g.PlayGolden(tc.player, tc.x, tc.y), tc.want)
			assert.Equal(t, before, g)
		})
	}
}

func TestQueriesOnInvalidPlayer(t *testing.T) {
	g := mustNew(t, 2, 2, 1, 1)
	assert.Equal(t, 0, g.BusyFields(0))
	assert.Equal(t, 0, g.BusyFields(2))
	assert.Equal(t, 0, g.FreeFields(-1))
	assert.False(t, g.GoldenPossible(2))
	_, ok := g.Stats(0)
	assert.False(t, ok)
}

func TestGoldenPossibleNeedsOpponentCell(t *testing.T) {
	g := mustNew(t, 3, 3, 2, 2)
	require.NoError(t, g.Play(1, 0, 0))
	assert.False(t, g.GoldenPossible(1))
	assert.True(t, g.GoldenPossible(2))
}

func TestPlanDoesNotMutate(t *testing.T) {
	g := mustNew(t, 4, 4, 2, 2)
	require.NoError(t, g.Play(1, 0, 0))
	require.NoError(t, g.Play(2, 1, 0))

	before := cloneGame(g)
	pv, err := g.Plan(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, pv.Joined)
	assert.Equal(t, 1, pv.Areas)
	assert.Empty(t, pv.Denied)

	pv, err = g.Plan(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, pv.Joined)
	assert.Equal(t, 2, pv.Areas)
	assert.Equal(t, []int{2}, pv.Denied)

	gpv, err := g.PlanGolden(1, 1, 0)
	require.NoError(t, err)
	assert.True(t, gpv.Golden)
	assert.Equal(t, []int{2}, gpv.Denied)
	assert.Equal(t, before, g)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 40; round++ {
		w, h := 1+rng.Intn(7), 1+rng.Intn(7)
		players := 1 + rng.Intn(4)
		g := mustNew(t, w, h, players, 1+rng.Intn(3))

		for step := 0; step < 6*w*h; step++ {
			pl := rng.Intn(players + 2)
			x, y := rng.Intn(w+2)-1, rng.Intn(h+2)-1
			before := cloneGame(g)

			var err error
			if rng.Intn(8) == 0 {
				err = g.PlayGolden(pl, x, y)
			} else {
				err = g.Play(pl, x, y)
			}
			if err != nil {
				require.Equal(t, before, g, "rejected move changed state: %v", err)
				continue
			}

			require.NoError(t, g.Verify())
			total := g.FreeCells()
			for p := 1; p <= players; p++ {
				total += g.BusyFields(p)
				st, _ := g.Stats(p)
				if st.Occupied > 0 {
					require.GreaterOrEqual(t, st.Areas, 1)
					require.LessOrEqual(t, st.Areas, g.MaxAreas())
				} else {
					require.Zero(t, st.Areas)
				}
			}
			require.Equal(t, w*h, total)
		}
	}
}
