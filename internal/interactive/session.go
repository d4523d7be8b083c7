// Package interactive lets players share one terminal and take turns with the keyboard.
package interactive

import (
	"fmt"

	"gamma/internal/game"
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPlace
	KeyGolden
	KeySkip
	KeyQuit
)

// Session is the turn and cursor state of an interactive game. It has no
// terminal dependency so it can be driven by tests.
type Session struct {
	g       *game.Game
	cursor  game.Pos
	current int
	over    bool
	msg     string
}

func NewSession(g *game.Game) *Session {
	s := &Session{
		g:      g,
		cursor: game.Pos{X: g.Width() / 2, Y: g.Height() / 2},
	}
	s.current = s.nextFrom(0)
	s.over = s.current == 0
	return s
}

// nextFrom returns the first player after p, wrapping around, who can still
// move, or 0 when nobody can.
func (s *Session) nextFrom(p int) int {
	n := s.g.Players()
	for i := 1; i <= n; i++ {
		cand := (p+i-1)%n + 1
		if game.CanMove(s.g, cand) {
			return cand
		}
	}
	return 0
}

func (s *Session) pass() {
	s.current = s.nextFrom(s.current)
	if s.current == 0 {
		s.over = true
	}
}

func (s *Session) moveCursor(dx, dy int) {
	next := game.Pos{X: s.cursor.X + dx, Y: s.cursor.Y + dy}
	if next.X >= 0 && next.X < s.g.Width() && next.Y >= 0 && next.Y < s.g.Height() {
		s.cursor = next
	}
}

// Handle applies one key press.
func (s *Session) Handle(k Key) {
	if s.over {
		return
	}
	s.msg = ""

	switch k {
	case KeyUp:
		s.moveCursor(0, 1)
	case KeyDown:
		s.moveCursor(0, -1)
	case KeyLeft:
		s.moveCursor(-1, 0)
	case KeyRight:
		s.moveCursor(1, 0)
	case KeyPlace:
		if err := s.g.Play(s.current, s.cursor.X, s.cursor.Y); err != nil {
			s.msg = err.Error()
			return
		}
		s.pass()
	case KeyGolden:
		if err := s.g.PlayGolden(s.current, s.cursor.X, s.cursor.Y); err != nil {
			s.msg = err.Error()
			return
		}
		s.pass()
	case KeySkip:
		s.pass()
	case KeyQuit:
		s.over = true
	}
}

func (s *Session) Game() *game.Game { return s.g }
func (s *Session) Cursor() game.Pos { return s.cursor }
func (s *Session) Current() int { return s.current }
func (s *Session) Over() bool { return s.over }
func (s *Session) Message() string { return s.msg }

// Status describes the player whose turn it is.
func (s *Session) Status() string {
	if s.over {
		return "game over"
	}
	line := fmt.Sprintf("PLAYER %d busy %d free %d", s.current, s.g.BusyFields(s.current), s.g.FreeFields(s.current))
	if s.g.GoldenPossible(s.current) {
		line += " G"
	}
	return line
}
