package interactive

import (
	"errors"
	"fmt"
	"io"

	"gamma/internal/game"
	"gamma/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/logrusorgru/aurora"
)

var playerColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorPurple,
	tcell.ColorTeal,
}

// ErrScreenClosed is returned when the screen stops delivering events
// before the game ends.
var ErrScreenClosed = errors.New("screen closed")

func keyOf(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlD:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return KeyPlace
		case 'g', 'G':
			return KeyGolden
		case 'c', 'C':
			return KeySkip
		}
	}
	return KeyNone
}

// Play runs an interactive game on the process terminal and prints the final
// board and standings to out once the screen is released.
func Play(g *game.Game, out io.Writer, color bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	s := NewSession(g)
	runErr := Run(screen, s)
	screen.Fini()
	if runErr != nil {
		return runErr
	}

	au := aurora.NewAurora(color)
	_, err = fmt.Fprint(out, render.Board(au, g), render.Standings(au, g))
	return err
}

// Run drives s from the events of an initialised screen until the game ends.
func Run(screen tcell.Screen, s *Session) error {
	screen.HideCursor()
	for {
		draw(screen, s)
		if s.Over() {
			return nil
		}

		switch ev := screen.PollEvent().(type) {
		case nil:
			return ErrScreenClosed
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			s.Handle(keyOf(ev))
		}
	}
}

func putString(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func draw(screen tcell.Screen, s *Session) {
	screen.Clear()
	g := s.Game()

	putString(screen, 0, 0, s.Status(), tcell.StyleDefault.Bold(true))
	if msg := s.Message(); msg != "" {
		putString(screen, 0, 1, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	cur := s.Cursor()
	for y := g.Height() - 1; y >= 0; y-- {
		row := 2 + g.Height() - 1 - y
		col := 0
		for x := 0; x < g.Width(); x++ {
			owner := g.Owner(x, y)
			style := tcell.StyleDefault
			if owner > 0 {
				style = style.Foreground(playerColors[(owner-1)%len(playerColors)])
			}
			if x == cur.X && y == cur.Y && !s.Over() {
				style = style.Reverse(true)
			}
			col = putString(screen, col, row, game.CellText(owner), style)
		}
	}
	screen.Show()
}
