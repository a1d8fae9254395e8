package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
	"github.com/vango-dev/reactkit/pkg/reactive"
)

const writeWait = 5 * time.Second

// client serializes writes to one connection. Changes are broadcast from
// whichever goroutine mutated the tree.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// hub fans tree changes out to WebSocket clients.
type hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger

	onConnect    func()
	onDisconnect func()
}

func newHub(logger *slog.Logger, allowOrigins []string) *hub {
	h := &hub{
		clients: make(map[*client]bool),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowOrigins) > 0 {
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowOrigins, "*") || slices.Contains(allowOrigins, origin)
		}
	}
	return h
}

// handleWebSocket upgrades the request and keeps the connection registered
// until the client goes away.
func (h *hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", rkerrors.New("P002").Wrap(err))
		return
	}

	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	if h.onConnect != nil {
		h.onConnect()
	}
	h.logger.Debug("stream client connected", "remote", r.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.drop(c)
}

func (h *hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if !ok {
		return
	}
	c.conn.Close()
	if h.onDisconnect != nil {
		h.onDisconnect()
	}
	h.logger.Debug("stream client disconnected", "remote", c.conn.RemoteAddr())
}

// broadcast sends a change to all connected clients.
func (h *hub) broadcast(change reactive.Change) {
	data, err := json.Marshal(change)
	if err != nil {
		h.logger.Error("encode change", "key", change.Key, "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.drop(c)
		}
	}
}

// clientCount returns the number of connected clients.
func (h *hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// close closes all client connections.
func (h *hub) close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.drop(c)
	}
}
