package room

import (
	"sync"
	"time"

	"gamma/internal/config"
	"gamma/internal/game"
)

type Seat struct {
	ID     string `json:"id,omitempty"`
	Player int    `json:"player"`
	Name   string `json:"name"`
	IsBot  bool   `json:"isBot"`
}

// Room is one hosted game. All access to the engine goes through mu.
type Room struct {
	mu sync.Mutex

	ID        string
	Code      string
	Seats     []Seat
	TurnIdx   int
	Finished  bool
	CreatedAt time.Time

	game    *game.Game
	weights config.Weights
	// skips counts turns passed since the last applied move
	skips int
}

// View is a read-only copy of a room safe to hand to clients.
type View struct {
	Code     string        `json:"code"`
	Seats    []Seat        `json:"seats"`
	Turn     int           `json:"turn"`
	Finished bool          `json:"finished"`
	Golden   []bool        `json:"goldenPossible"`
	Game     game.Snapshot `json:"game"`
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	ListRooms() []*Room
}

// View copies the room state. Seat ids are left out.
func (r *Room) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view()
}

func (r *Room) view() View {
	seats := make([]Seat, len(r.Seats))
	golden := make([]bool, len(r.Seats))
	for i, s := range r.Seats {
		s.ID = ""
		seats[i] = s
		golden[i] = r.game.GoldenPossible(s.Player)
	}

	turn := 0
	if !r.Finished {
		turn = r.Seats[r.TurnIdx].Player
	}
	return View{
		Code:     r.Code,
		Seats:    seats,
		Turn:     turn,
		Finished: r.Finished,
		Golden:   golden,
		Game:     r.game.Snapshot(),
	}
}

// Board returns the text rendering of the room's board.
func (r *Room) Board() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Board()
}

func (r *Room) seat(id string) (Seat, bool) {
	for _, s := range r.Seats {
		if s.ID == id {
			return s, true
		}
	}
	return Seat{}, false
}

func (r *Room) current() Seat {
	return r.Seats[r.TurnIdx]
}

// advance moves the turn to the next seat whose player can still move and
// reports false when nobody can.
func (r *Room) advance() bool {
	n := len(r.Seats)
	for i := 1; i <= n; i++ {
		idx := (r.TurnIdx + i) % n
		if game.CanMove(r.game, r.Seats[idx].Player) {
			r.TurnIdx = idx
			return true
		}
	}
	return false
}

// Moves lists the normal and golden moves player could make right now.
func (r *Room) Moves(player int) (normal, golden []game.Preview) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return game.LegalMoves(r.game, player), game.LegalGoldenMoves(r.game, player)
}
