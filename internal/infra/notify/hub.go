package notify

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	clientBacklog  = 32
	maxMessageSize = 512
)

// Hub fans auction events out to websocket subscribers. Delivery is
// fire-and-forget: a subscriber that cannot keep up is dropped.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *slog.Logger
}

type client struct {
	account uuid.UUID
	send    chan []byte
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Broadcast(event string, fields map[string]string) {
	h.dispatch(Envelope{Event: event, Fields: fields, At: time.Now()}, nil)
}

func (h *Hub) SendToAccount(account uuid.UUID, event string, fields map[string]string) {
	h.dispatch(Envelope{Event: event, Account: &account, Fields: fields, At: time.Now()}, &account)
}

func (h *Hub) dispatch(env Envelope, only *uuid.UUID) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Warn("failed to encode event", "event", env.Event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if only != nil && c.account != *only {
			continue
		}
		select {
		case c.send <- data:
		default:
			// Slow subscriber; the reader pump will clean it up on close.
		}
	}
}

// Serve upgrades the connection and pumps events until the peer goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, account uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{account: account, send: make(chan []byte, clientBacklog)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		conn.Close()
	}()

	done := make(chan struct{})
	go h.writePump(conn, c, done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	close(done)
}

func (h *Hub) writePump(conn *websocket.Conn, c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
