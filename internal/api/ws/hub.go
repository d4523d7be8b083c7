package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

// Hub fans room events out to the websocket clients watching each room.
// Clients only listen; moves go through the HTTP API.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]struct{}
	// writeWait bounds every write so a stalled client is dropped instead of
	// holding up the broadcast.
	writeWait time.Duration
}

const defaultWriteWait = 5 * time.Second

func NewHub() *Hub {
	return &Hub{
		rooms:     make(map[string]map[*websocket.Conn]struct{}),
		writeWait: defaultWriteWait,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logx.WithContext(c.Request.Context()).Errorf("websocket upgrade: %v", err)
		return
	}
	logx.Infof("websocket client joined room %s", roomCode)

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer h.remove(roomCode, conn)

	// drain until the client goes away; control frames are handled by the reader
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(roomCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[roomCode]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.rooms, roomCode)
		}
	}
	_ = conn.Close()
}

// Clients returns the number of connections watching roomCode.
func (h *Hub) Clients(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	payload, err := sonic.Marshal(message{Action: action, Data: data})
	if err != nil {
		logx.Errorf("encode %s event for room %s: %v", action, roomCode, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.rooms[roomCode] {
		_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logx.Infof("drop websocket client of room %s: %v", roomCode, err)
			_ = conn.Close()
			delete(h.rooms[roomCode], conn)
		}
	}
}
