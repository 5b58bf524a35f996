package ws

import (
	"sync"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
)

// Hub is the process-wide registry of authenticated live sessions, keyed by
// user id. One active connection per user: a new authentication for the
// same user replaces the previous entry. The hub is injectable state owned
// by the server process, never mutated as a package global.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*Client
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*Client),
	}
}

// Register installs the client as the live session for userID. A previously
// registered client for the same user is displaced and its send channel
// closed, which shuts down its write pump.
func (h *Hub) Register(userID uuid.UUID, c *Client) {
	h.mu.Lock()
	old, ok := h.clients[userID]
	h.clients[userID] = c
	h.mu.Unlock()

	if ok && old != c {
		close(old.send)
		logger.Log.Infow("live session replaced", "user_id", userID)
	} else {
		logger.Log.Infow("live session registered", "user_id", userID)
	}
}

// Unregister removes the client's entry. A no-op when another client has
// since taken over the user's slot.
func (h *Hub) Unregister(userID uuid.UUID, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[userID]; ok && current == c {
		delete(h.clients, userID)
		close(c.send)
		logger.Log.Infow("live session unregistered", "user_id", userID)
	}
}

// SendIfPresent delivers payload to the user's live session if one is
// registered. Delivery is best-effort and never blocks: a client whose send
// buffer is full is dropped from the registry. Reports whether the payload
// was handed to a session.
func (h *Hub) SendIfPresent(userID uuid.UUID, payload []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[userID]
	if !ok {
		return false
	}

	select {
	case c.send <- payload:
		return true
	default:
		delete(h.clients, userID)
		close(c.send)
		logger.Log.Warnw("live session dropped, send buffer full", "user_id", userID)
		return false
	}
}

// Connected reports whether the user has a registered live session.
func (h *Hub) Connected(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}
