package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/d-savelyev/pairstatus/internal/logger"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// inboundMessage is the only client-to-server message shape. Anything with
// an unrecognized type is ignored.
type inboundMessage struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// Client is a middleman between a websocket connection and the hub. It
// starts unauthenticated; a valid auth message registers it in the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	// Buffered channel of outbound messages. Closed by the hub.
	send chan []byte

	// Set once the client has authenticated.
	userID uuid.UUID
	authed bool
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 16),
	}
}

// readPump pumps messages from the websocket connection to the hub.
//
// The application runs readPump in a per-connection goroutine. All reads
// happen from this goroutine, so there is at most one reader per
// connection.
func (c *Client) readPump() {
	defer func() {
		if c.authed {
			c.hub.Unregister(c.userID, c)
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnw("websocket read error", "err", err)
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			// Malformed messages are logged and ignored, never fatal.
			logger.Log.Warnw("malformed websocket message", "err", err)
			continue
		}

		if msg.Type != "auth" {
			continue
		}
		c.handleAuth(msg.UserID)
	}
}

func (c *Client) handleAuth(rawUserID string) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		logger.Log.Warnw("websocket auth with invalid user id", "user_id", rawUserID)
		return
	}

	if c.authed {
		// Already authenticated; repeated auth messages are ignored.
		return
	}

	c.userID = userID
	c.authed = true
	c.hub.Register(userID, c)
}

// writePump pumps messages from the hub to the websocket connection.
//
// A goroutine running writePump is started for each connection. All writes
// happen from this goroutine, so there is at most one writer per
// connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
