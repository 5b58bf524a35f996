package ws

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/d-savelyev/pairstatus/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser and mobile clients connect cross-origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewHandler returns the HTTP handler for the live channel endpoint. Each
// accepted connection runs its own read and write pumps and stays out of
// the hub until it authenticates.
func NewHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Errorw("websocket upgrade failed", "err", err)
			return
		}

		client := newClient(hub, conn)
		go client.writePump()
		go client.readPump()
	}
}
