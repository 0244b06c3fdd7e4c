package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// DocRole names a subscribable document role. Weekly roles key their
// subscription by week identifier; collection roles use an empty key.
type DocRole string

const (
	RoleWellness    DocRole = "wellness"
	RoleMealPlan    DocRole = "mealplan"
	RoleTodos       DocRole = "todos"
	RoleWishes      DocRole = "wishes"
	RoleReflections DocRole = "reflections"
)

// DocEvent is one change notification for a subscribed document.
type DocEvent struct {
	Role    DocRole `json:"role"`
	Key     string  `json:"key,omitempty"`
	Payload any     `json:"payload"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu   sync.Mutex
	subs map[DocRole]string
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{UserID: userID, Conn: conn, subs: make(map[DocRole]string)}
}

// Subscribe points the client's subscription for a role at a document key,
// replacing any previous key for that role. At most one live subscription
// per role exists by construction.
func (c *WSClient) Subscribe(role DocRole, key string) {
	c.mu.Lock()
	c.subs[role] = key
	c.mu.Unlock()
}

func (c *WSClient) Unsubscribe(role DocRole) {
	c.mu.Lock()
	delete(c.subs, role)
	c.mu.Unlock()
}

func (c *WSClient) wants(role DocRole, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub, ok := c.subs[role]
	return ok && sub == key
}

func (c *WSClient) send(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// Ping writes a keepalive control frame. All writes to the connection go
// through c.mu; gorilla/websocket allows only one concurrent writer.
func (c *WSClient) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.PingMessage, nil)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastDoc delivers a change notification to the user's clients whose
// subscription for the event's role matches its key.
func (h *RealtimeHub) BroadcastDoc(userID uint, ev DocEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		if c.wants(ev.Role, ev.Key) {
			_ = c.send(msg)
		}
	}
}
