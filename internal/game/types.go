package game

// Pos addresses a board cell. X is the column, Y is the row.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// orthogonal neighbour offsets: left, right, down, up
var orthogonal = [4]Pos{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

func (p Pos) add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// Board is a fixed width x height grid of owner ids stored row by row.
// Owner 0 marks a free cell.
type Board struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  []uint32 `json:"cells"`
}

func NewBoard(width, height int) Board {
	return Board{
		Width:  width,
		Height: height,
		Cells:  make([]uint32, width*height),
	}
}

// In reports whether p lies on the board.
func (b *Board) In(p Pos) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

func (b *Board) index(p Pos) int {
	return p.Y*b.Width + p.X
}

// At returns the owner of p. p must be on the board.
func (b *Board) At(p Pos) int {
	return int(b.Cells[b.index(p)])
}

func (b *Board) set(p Pos, owner int) {
	b.Cells[b.index(p)] = uint32(owner)
}

// PlayerStats is the per-player bookkeeping exposed to callers.
type PlayerStats struct {
	Player       int  `json:"player"`
	Areas        int  `json:"areas"`
	Occupied     int  `json:"occupied"`
	AdjacentFree int  `json:"adjacentFree"`
	GoldenUsed   bool `json:"goldenUsed"`
}

// Snapshot is a read-only copy of a game. Rows[y][x] holds the owner of (x, y).
type Snapshot struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	MaxAreas  int           `json:"maxAreas"`
	FreeCells int           `json:"freeCells"`
	Rows      [][]int       `json:"rows"`
	Players   []PlayerStats `json:"players"`
}

// Preview describes what a legal move would do, computed without touching the board.
type Preview struct {
	Pos    Pos  `json:"pos"`
	Golden bool `json:"golden"`
	// Areas is the mover's area count after the move.
	Areas int `json:"areas"`
	// Joined is the number of the mover's regions touching the target.
	Joined int `json:"joined"`
	// FrontierGain is the net change of the mover's adjacent free cells.
	FrontierGain int `json:"frontierGain"`
	// Denied lists opponents that lose an adjacent free cell (normal moves)
	// or the dispossessed player (golden moves).
	Denied []int `json:"denied"`
}
