package http

import (
	"time"

	"gamma/internal/api/ws"
	"gamma/internal/config"
	"gamma/internal/room"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// requestLogger logs every request through logx.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.WithContext(c.Request.Context()).WithDuration(time.Since(start)).Infow("request",
			logx.Field("method", c.Request.Method),
			logx.Field("path", c.FullPath()),
			logx.Field("status", c.Writer.Status()),
			logx.Field("client", c.ClientIP()))
	}
}

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	if cfg.Pprof {
		pprof.Register(r)
	}

	// WebSocket for live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms", ListRoomsHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.GET("/rooms/:code/board", BoardHandler(rm))
	r.GET("/rooms/:code/rank", RankHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/rooms/:code/moves", PossibleMovesHandler(rm))
	r.POST("/rooms/:code/move", MoveHandler(rm))
	r.POST("/rooms/:code/skip", SkipHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/weights", GetWeightsHandler(rm))

	return r
}
