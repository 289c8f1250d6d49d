package notify

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds a single websocket write; a browser that stops reading
// is dropped instead of holding up the request that pushed.
const writeWait = 5 * time.Second

// client is one websocket connection. gorilla connections allow a single
// concurrent writer, so every write goes through mu.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	// ids already sent as backlog
	sent map[string]struct{}
}

func (cl *client) write(n Notification) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.writeLocked(n)
}

func (cl *client) writeLocked(n Notification) error {
	if _, dup := cl.sent[n.ID]; dup {
		return nil
	}
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(n)
}

// Hub tracks websocket connections per client scope. One client may have
// several tabs open, each with its own connection.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]map[*websocket.Conn]*client
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]map[*websocket.Conn]*client),
	}
}

// Register adds conn to scope and then writes backlog() to it. Pushes that
// race the registration wait for the backlog and are not sent twice.
func (h *Hub) Register(scope string, conn *websocket.Conn, backlog func() []Notification) error {
	cl := &client{conn: conn, sent: make(map[string]struct{})}
	cl.mu.Lock()
	defer cl.mu.Unlock()

	h.mu.Lock()
	conns, ok := h.connections[scope]
	if !ok {
		conns = make(map[*websocket.Conn]*client)
		h.connections[scope] = conns
	}
	conns[conn] = cl
	h.mu.Unlock()

	if backlog == nil {
		return nil
	}
	for _, n := range backlog() {
		if err := cl.writeLocked(n); err != nil {
			return err
		}
		cl.sent[n.ID] = struct{}{}
	}
	return nil
}

func (h *Hub) Unregister(scope string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.connections[scope]; ok {
		if _, exists := conns[conn]; exists {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.connections, scope)
		}
	}
}

// Send writes n to every connection of scope and reports how many
// received it. Broken or stalled connections are dropped.
func (h *Hub) Send(scope string, n Notification) int {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.connections[scope]))
	for _, cl := range h.connections[scope] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, cl := range clients {
		if err := cl.write(n); err != nil {
			h.Unregister(scope, cl.conn)
			continue
		}
		delivered++
	}
	return delivered
}

func (h *Hub) OnlineCount(scope string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.connections[scope])
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for scope, conns := range h.connections {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.connections, scope)
	}
}
