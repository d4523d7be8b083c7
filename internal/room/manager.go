package room

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gamma/internal/bot"
	"gamma/internal/config"
	"gamma/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// Options describe a new room. Zero sizes fall back to the configured game.
type Options struct {
	Width   int
	Height  int
	Players int
	Areas   int
	Names   []string
	// Bots marks the last Bots seats as computer players.
	Bots int
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{store: s, cfg: cfg, hub: hub}
}

func (m *Manager) withDefaults(o Options) Options {
	if o.Width == 0 {
		o.Width = m.cfg.Game.Width
	}
	if o.Height == 0 {
		o.Height = m.cfg.Game.Height
	}
	if o.Players == 0 {
		o.Players = m.cfg.Game.Players
	}
	if o.Areas == 0 {
		o.Areas = m.cfg.Game.Areas
	}
	return o
}

// checkLimits applies the configured caps. A non-positive cap disables it.
func (m *Manager) checkLimits(o Options) error {
	if side := m.cfg.MaxSide; side > 0 && (o.Width > side || o.Height > side) {
		return fmt.Errorf("%w: board %dx%d, max side %d", ErrRoomTooLarge, o.Width, o.Height, side)
	}
	if n := m.cfg.MaxPlayers; n > 0 && o.Players > n {
		return fmt.Errorf("%w: %d players, max %d", ErrRoomTooLarge, o.Players, n)
	}
	return nil
}

func (m *Manager) CreateRoom(ctx context.Context, o Options) (*Room, error) {
	o = m.withDefaults(o)
	if len(o.Names) > o.Players {
		return nil, ErrTooManyNames
	}
	if err := m.checkLimits(o); err != nil {
		return nil, err
	}

	g, err := game.New(o.Width, o.Height, o.Players, o.Areas)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	n := m.cfg.RoomCodeLen
	if n <= 0 {
		n = 6
	}
	code := randCode(n)
	for _, taken := m.store.GetRoom(code); taken; _, taken = m.store.GetRoom(code) {
		code = randCode(n)
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      code,
		CreatedAt: time.Now(),
		game:      g,
		weights:   m.cfg.Weights,
	}
	for p := 1; p <= o.Players; p++ {
		s := Seat{
			ID:     uuid.NewString(),
			Player: p,
			Name:   fmt.Sprintf("Player %d", p),
			IsBot:  p > o.Players-o.Bots,
		}
		if p <= len(o.Names) && o.Names[p-1] != "" {
			s.Name = o.Names[p-1]
		}
		if s.IsBot {
			s.ID = "bot-" + s.ID
		}
		r.Seats = append(r.Seats, s)
	}

	m.store.SaveRoom(r)
	logx.WithContext(ctx).Infow("room created",
		logx.Field("room", r.Code),
		logx.Field("width", o.Width),
		logx.Field("height", o.Height),
		logx.Field("players", o.Players),
		logx.Field("areas", o.Areas),
		logx.Field("bots", o.Bots))

	r.mu.Lock()
	m.runBots(ctx, r)
	r.mu.Unlock()
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// List returns every hosted room, oldest first.
func (m *Manager) List() []*Room {
	return m.store.ListRooms()
}

// Weights returns the weights bots use in new rooms.
func (m *Manager) Weights() config.Weights {
	return m.cfg.Weights
}

func (m *Manager) lookup(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// checkTurn must be called with r.mu held.
func checkTurn(r *Room, seatID string) (Seat, error) {
	if r.Finished {
		return Seat{}, ErrGameFinished
	}
	s, ok := r.seat(seatID)
	if !ok {
		return Seat{}, ErrSeatNotFound
	}
	if r.current().ID != s.ID {
		return Seat{}, ErrNotYourTurn
	}
	return s, nil
}

// ApplyMove plays a normal or golden move for the seat whose turn it is and
// then lets any bots that follow take their turns.
func (m *Manager) ApplyMove(ctx context.Context, code, seatID string, x, y int, golden bool) (game.Preview, error) {
	r, err := m.lookup(code)
	if err != nil {
		return game.Preview{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := checkTurn(r, seatID)
	if err != nil {
		return game.Preview{}, err
	}

	var pv game.Preview
	if golden {
		pv, err = r.game.PlanGolden(s.Player, x, y)
		if err == nil {
			err = r.game.PlayGolden(s.Player, x, y)
		}
	} else {
		pv, err = r.game.Plan(s.Player, x, y)
		if err == nil {
			err = r.game.Play(s.Player, x, y)
		}
	}
	if err != nil {
		logx.WithContext(ctx).Infof("room %s: player %d move (%d,%d) golden=%v rejected: %v",
			r.Code, s.Player, x, y, golden, err)
		return game.Preview{}, fmt.Errorf("room %s: %w", r.Code, err)
	}

	m.afterMove(ctx, r, s, pv)
	m.runBots(ctx, r)
	m.store.SaveRoom(r)
	return pv, nil
}

// Skip passes the turn of the seat whose turn it is.
func (m *Manager) Skip(ctx context.Context, code, seatID string) error {
	r, err := m.lookup(code)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := checkTurn(r, seatID)
	if err != nil {
		return err
	}

	m.afterSkip(ctx, r, s)
	m.runBots(ctx, r)
	m.store.SaveRoom(r)
	return nil
}

func (m *Manager) afterMove(ctx context.Context, r *Room, s Seat, pv game.Preview) {
	r.skips = 0
	logx.WithContext(ctx).Infow("move applied",
		logx.Field("room", r.Code),
		logx.Field("player", s.Player),
		logx.Field("x", pv.Pos.X),
		logx.Field("y", pv.Pos.Y),
		logx.Field("golden", pv.Golden))

	m.hub.Broadcast(r.Code, EventMoveApplied, gin.H{
		"player": s.Player,
		"x":      pv.Pos.X,
		"y":      pv.Pos.Y,
		"golden": pv.Golden,
		"board":  r.game.Board(),
	})
	m.nextTurn(ctx, r)
}

func (m *Manager) afterSkip(ctx context.Context, r *Room, s Seat) {
	r.skips++
	m.hub.Broadcast(r.Code, EventTurnSkipped, gin.H{"player": s.Player})

	// a full round of passes ends the game
	if r.skips >= len(r.Seats) {
		m.finish(ctx, r)
		return
	}
	m.nextTurn(ctx, r)
}

func (m *Manager) nextTurn(ctx context.Context, r *Room) {
	if !r.advance() {
		m.finish(ctx, r)
		return
	}
	m.store.SaveRoom(r)
}

func (m *Manager) finish(ctx context.Context, r *Room) {
	r.Finished = true
	rank := rankRows(r)
	logx.WithContext(ctx).Infow("game over",
		logx.Field("room", r.Code),
		logx.Field("winner", rank[0].Player))
	m.hub.Broadcast(r.Code, EventGameOver, gin.H{
		"rank":  rank,
		"board": r.game.Board(),
	})
}

// runBots plays consecutive bot turns. Must be called with r.mu held.
func (m *Manager) runBots(ctx context.Context, r *Room) {
	for !r.Finished && r.current().IsBot {
		s := r.current()
		if pv, ok := bot.Play(r.game, s.Player, r.weights); ok {
			m.afterMove(ctx, r, s, pv)
		} else {
			m.afterSkip(ctx, r, s)
		}
	}
}

type RankRow struct {
	Player     int    `json:"player"`
	Name       string `json:"name"`
	Busy       int    `json:"busyFields"`
	Areas      int    `json:"areas"`
	GoldenUsed bool   `json:"goldenUsed"`
}

func (m *Manager) Rank(code string) ([]RankRow, error) {
	r, err := m.lookup(code)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return rankRows(r), nil
}

func rankRows(r *Room) []RankRow {
	standing := game.Standing(r.game)
	out := make([]RankRow, 0, len(standing))
	for _, st := range standing {
		out = append(out, RankRow{
			Player:     st.Player,
			Name:       r.Seats[st.Player-1].Name,
			Busy:       st.Occupied,
			Areas:      st.Areas,
			GoldenUsed: st.GoldenUsed,
		})
	}
	return out
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
