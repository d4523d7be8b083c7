package http

import (
	"errors"
	"net/http"
	"strconv"

	"gamma/internal/game"
	"gamma/internal/room"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, room.ErrSeatNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidParams),
		errors.Is(err, game.ErrBoardTooLarge),
		errors.Is(err, room.ErrTooManyNames),
		errors.Is(err, room.ErrRoomTooLarge):
		return http.StatusBadRequest
	default:
		// turn order and rule violations
		return http.StatusConflict
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create a room
// @Description Create a game room; zero sizes use the server defaults and the last `bots` seats are computer players
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Room parameters"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if req.Bots < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bots must not be negative"})
			return
		}

		r, err := rm.CreateRoom(c.Request.Context(), room.Options{
			Width:   req.Width,
			Height:  req.Height,
			Players: req.Players,
			Areas:   req.Areas,
			Names:   req.Names,
			Bots:    req.Bots,
		})
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"roomCode": r.Code,
			"seats":    r.Seats,
			"room":     r.View(),
		})
	}
}

// ListRoomsHandler summarises every hosted room.
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms := rm.List()
		out := make([]RoomSummary, 0, len(rooms))
		for _, r := range rooms {
			v := r.View()
			out = append(out, RoomSummary{
				Code:     v.Code,
				Players:  len(v.Seats),
				Turn:     v.Turn,
				Finished: v.Finished,
			})
		}
		c.JSON(http.StatusOK, gin.H{"rooms": out})
	}
}

// GetRoomHandler returns the public view of a room; seat ids are hidden.
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			abortWith(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r.View()})
	}
}

// BoardHandler writes the board as plain text, top row first.
func BoardHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			abortWith(c, room.ErrRoomNotFound)
			return
		}
		c.String(http.StatusOK, r.Board())
	}
}

// PossibleMovesHandler lists the cells a player may take, split by move kind.
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			abortWith(c, room.ErrRoomNotFound)
			return
		}
		player, err := strconv.Atoi(c.Query("player"))
		if err != nil || player < 1 || player > len(r.Seats) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player required"})
			return
		}

		normal, golden := r.Moves(player)
		if normal == nil {
			normal = []game.Preview{}
		}
		if golden == nil {
			golden = []game.Preview{}
		}
		c.JSON(http.StatusOK, gin.H{"normal": normal, "golden": golden})
	}
}

// @Summary Play a move
// @Description Play a normal or golden move for the seat whose turn it is
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body http.MoveRequest true "Move"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /rooms/{code}/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		code := c.Param("code")
		pv, err := rm.ApplyMove(c.Request.Context(), code, req.Seat, *req.X, *req.Y, req.Golden)
		if err != nil {
			abortWith(c, err)
			return
		}
		r, _ := rm.Get(code)
		c.JSON(http.StatusOK, gin.H{
			"ok":   true,
			"move": pv,
			"room": r.View(),
		})
	}
}

// SkipHandler passes the turn of the requesting seat.
func SkipHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SkipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		code := c.Param("code")
		if err := rm.Skip(c.Request.Context(), code, req.Seat); err != nil {
			abortWith(c, err)
			return
		}
		r, _ := rm.Get(code)
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": r.View()})
	}
}

// RankHandler returns the standings, best player first.
func RankHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rank, err := rm.Rank(c.Param("code"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rank": rank})
	}
}
