package interactive

import (
	"testing"

	"gamma/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, w, h, players, areas int) *game.Game {
	t.Helper()
	g, err := game.New(w, h, players, areas)
	require.NoError(t, err)
	return g
}

func TestCursorStaysOnBoard(t *testing.T) {
	s := NewSession(newGame(t, 2, 2, 1, 1))
	assert.Equal(t, game.Pos{X: 1, Y: 1}, s.Cursor())

	s.Handle(KeyUp)
	s.Handle(KeyRight)
	assert.Equal(t, game.Pos{X: 1, Y: 1}, s.Cursor())

	s.Handle(KeyDown)
	s.Handle(KeyLeft)
	s.Handle(KeyLeft)
	assert.Equal(t, game.Pos{X: 0, Y: 0}, s.Cursor())
}

func TestTurnsRotateAndSkipStuckPlayers(t *testing.T) {
	g := newGame(t, 3, 1, 3, 1)
	s := NewSession(g)
	require.Equal(t, 1, s.Current())
	assert.Equal(t, "PLAYER 1 busy 0 free 3", s.Status())

	s.Handle(KeyLeft)
	s.Handle(KeyPlace)
	assert.Equal(t, 1, g.Owner(0, 0))
	assert.Equal(t, 2, s.Current())

	// occupied cell: the turn stays
	s.Handle(KeyPlace)
	assert.Equal(t, 2, s.Current())
	assert.NotEmpty(t, s.Message())

	s.Handle(KeySkip)
	assert.Equal(t, 3, s.Current())
	assert.Empty(t, s.Message())
}

func TestGoldenKeyAndGameOver(t *testing.T) {
	g := newGame(t, 1, 1, 2, 1)
	s := NewSession(g)

	s.Handle(KeyPlace)
	require.Equal(t, 2, s.Current())
	assert.Equal(t, "PLAYER 2 busy 0 free 0 G", s.Status())

	s.Handle(KeyGolden)
	assert.Equal(t, 2, g.Owner(0, 0))
	// player 1 still holds a golden move
	require.Equal(t, 1, s.Current())

	s.Handle(KeyGolden)
	assert.True(t, s.Over())
	assert.Equal(t, "game over", s.Status())
	assert.Equal(t, 0, s.Current())
}

func TestQuit(t *testing.T) {
	s := NewSession(newGame(t, 2, 2, 2, 1))
	s.Handle(KeyQuit)
	assert.True(t, s.Over())

	s.Handle(KeyPlace)
	assert.Equal(t, 0, s.Game().BusyFields(1))
}

func TestRunOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 6)

	g := newGame(t, 2, 1, 2, 1)
	s := NewSession(g)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlD, 0, tcell.ModNone)

	require.NoError(t, Run(screen, s))
	assert.Equal(t, 1, g.Owner(0, 0))
	assert.True(t, s.Over())
}
