package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/RitheshHB23/cafeteriaa/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub fans new order notifications out to connected staff screens.
// There is one counter, so there is one room.
type NotifyHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Notification
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Notification, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *NotifyHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push queues a notification for broadcast. Safe to call from request
// handlers; drops nothing while the buffer has room.
func (h *NotifyHub) Push(n *entity.Notification) {
	h.broadcast <- n
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /api/ws/notifications
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// Staff clients only listen; the read loop just detects disconnects.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
