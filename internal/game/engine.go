package game

// Limits on New. A full board costs four bytes per cell and every player
// record about thirty, so the largest game stays within a few GiB.
const (
	MaxCells   = 1 << 30
	MaxPlayers = 1 << 20
)

type player struct {
	areas        int
	occupied     int
	adjacentFree int
	goldenUsed   bool
}

// Game holds the board and the per-player counters. It is not safe for
// concurrent use; callers serialise access.
type Game struct {
	board    Board
	maxAreas int
	players  []player // index 0 unused
	free     int
}

// New creates an empty width x height game for the given number of players,
// each allowed at most maxAreas areas.
func New(width, height, players, maxAreas int) (*Game, error) {
	if width <= 0 || height <= 0 || players <= 0 || maxAreas <= 0 {
		return nil, ErrInvalidParams
	}
	if width > MaxCells/height || players > MaxPlayers {
		return nil, ErrBoardTooLarge
	}

	return &Game{
		board:    NewBoard(width, height),
		maxAreas: maxAreas,
		players:  make([]player, players+1),
		free:     width * height,
	}, nil
}

func (g *Game) Width() int    { return g.board.Width }
func (g *Game) Height() int   { return g.board.Height }
func (g *Game) Players() int  { return len(g.players) - 1 }
func (g *Game) MaxAreas() int { return g.maxAreas }
func (g *Game) FreeCells() int {
	return g.free
}

// Owner returns the owner of (x, y), or 0 when the cell is free or off the board.
func (g *Game) Owner(x, y int) int {
	p := Pos{X: x, Y: y}
	if !g.board.In(p) {
		return 0
	}
	return g.board.At(p)
}

func (g *Game) validPlayer(p int) bool {
	return p > 0 && p < len(g.players)
}

// Plan validates a normal move of player to (x, y) and reports its effect.
// The game is left untouched.
func (g *Game) Plan(player, x, y int) (Preview, error) {
	if !g.validPlayer(player) {
		return Preview{}, ErrInvalidPlayer
	}
	p := Pos{X: x, Y: y}
	if !g.board.In(p) {
		return Preview{}, ErrOutOfBounds
	}
	if g.board.At(p) != 0 {
		return Preview{}, ErrCellOccupied
	}

	joined := CountAdjacentAreas(&g.board, p, player)
	areas := g.players[player].areas - joined + 1
	if areas > g.maxAreas {
		return Preview{}, ErrAreaLimit
	}

	gain := NewAdjacentFree(&g.board, p, player)
	if HasSameOwnerNeighbor(&g.board, p, player) {
		// p itself stops being an adjacent free cell
		gain--
	}

	var denied []int
	for _, o := range neighborOwners(&g.board, p) {
		if o != player {
			denied = append(denied, o)
		}
	}

	return Preview{
		Pos:          p,
		Areas:        areas,
		Joined:       joined,
		FrontierGain: gain,
		Denied:       denied,
	}, nil
}

// Play places a token of player on (x, y). On error nothing changes.
func (g *Game) Play(player, x, y int) error {
	pv, err := g.Plan(player, x, y)
	if err != nil {
		return err
	}

	st := &g.players[player]
	st.areas = pv.Areas
	st.adjacentFree += pv.FrontierGain
	for _, o := range pv.Denied {
		g.players[o].adjacentFree--
	}
	st.occupied++
	g.free--
	g.board.set(pv.Pos, player)
	return nil
}

// Move is Play reporting only whether the move was applied.
func (g *Game) Move(player, x, y int) bool {
	return g.Play(player, x, y) == nil
}

type goldenPlan struct {
	Preview
	former      int
	formerAreas int
	formerLoss  int
}

func (g *Game) planGolden(player int, p Pos) (goldenPlan, error) {
	if !g.validPlayer(player) {
		return goldenPlan{}, ErrInvalidPlayer
	}
	if g.players[player].goldenUsed {
		return goldenPlan{}, ErrGoldenUsed
	}
	if !g.board.In(p) {
		return goldenPlan{}, ErrOutOfBounds
	}
	former := g.board.At(p)
	if former == 0 {
		return goldenPlan{}, ErrCellFree
	}
	if former == player {
		return goldenPlan{}, ErrOwnCell
	}

	// Both area predictions need the cell vacated; the owner is put back
	// before returning on every path.
	g.board.set(p, 0)
	defer g.board.set(p, former)

	joined := CountAdjacentAreas(&g.board, p, player)
	areas := g.players[player].areas - joined + 1
	split := CountAdjacentAreas(&g.board, p, former)
	formerAreas := g.players[former].areas + split - 1
	if areas > g.maxAreas || formerAreas > g.maxAreas {
		return goldenPlan{}, ErrAreaLimit
	}

	return goldenPlan{
		Preview: Preview{
			Pos:          p,
			Golden:       true,
			Areas:        areas,
			Joined:       joined,
			FrontierGain: NewAdjacentFree(&g.board, p, player),
			Denied:       []int{former},
		},
		former:      former,
		formerAreas: formerAreas,
		formerLoss:  NewAdjacentFree(&g.board, p, former),
	}, nil
}

// PlanGolden validates a golden move of player on (x, y) without applying it.
func (g *Game) PlanGolden(player, x, y int) (Preview, error) {
	plan, err := g.planGolden(player, Pos{X: x, Y: y})
	if err != nil {
		return Preview{}, err
	}
	return plan.Preview, nil
}

// PlayGolden takes the opponent cell (x, y) for player using the player's
// single golden move. On error nothing changes.
func (g *Game) PlayGolden(player, x, y int) error {
	plan, err := g.planGolden(player, Pos{X: x, Y: y})
	if err != nil {
		return err
	}

	st := &g.players[player]
	lost := &g.players[plan.former]

	st.areas = plan.Areas
	lost.areas = plan.formerAreas
	st.adjacentFree += plan.FrontierGain
	lost.adjacentFree -= plan.formerLoss
	st.occupied++
	lost.occupied--
	st.goldenUsed = true
	g.board.set(plan.Pos, player)
	return nil
}

// GoldenMove is PlayGolden reporting only whether the move was applied.
func (g *Game) GoldenMove(player, x, y int) bool {
	return g.PlayGolden(player, x, y) == nil
}

// BusyFields returns the number of cells owned by player.
func (g *Game) BusyFields(player int) int {
	if !g.validPlayer(player) {
		return 0
	}
	return g.players[player].occupied
}

// FreeFields returns how many cells player could still take with a normal move.
// A player at the area limit may only grow existing areas.
func (g *Game) FreeFields(player int) int {
	if !g.validPlayer(player) {
		return 0
	}
	st := g.players[player]
	if st.areas == g.maxAreas {
		return st.adjacentFree
	}
	return g.free
}

// GoldenPossible reports whether player still holds a golden move and some
// opponent owns at least one cell.
func (g *Game) GoldenPossible(player int) bool {
	if !g.validPlayer(player) {
		return false
	}
	st := g.players[player]
	if st.goldenUsed {
		return false
	}
	return len(g.board.Cells)-g.free-st.occupied > 0
}

// Stats returns the counters of player.
func (g *Game) Stats(player int) (PlayerStats, bool) {
	if !g.validPlayer(player) {
		return PlayerStats{}, false
	}
	st := g.players[player]
	return PlayerStats{
		Player:       player,
		Areas:        st.areas,
		Occupied:     st.occupied,
		AdjacentFree: st.adjacentFree,
		GoldenUsed:   st.goldenUsed,
	}, true
}

func (g *Game) Snapshot() Snapshot {
	rows := make([][]int, g.board.Height)
	for y := range rows {
		row := make([]int, g.board.Width)
		for x := range row {
			row[x] = g.board.At(Pos{X: x, Y: y})
		}
		rows[y] = row
	}

	stats := make([]PlayerStats, 0, g.Players())
	for p := 1; p < len(g.players); p++ {
		st, _ := g.Stats(p)
		stats = append(stats, st)
	}

	return Snapshot{
		Width:     g.board.Width,
		Height:    g.board.Height,
		MaxAreas:  g.maxAreas,
		FreeCells: g.free,
		Rows:      rows,
		Players:   stats,
	}
}
