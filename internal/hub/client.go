package hub

import (
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// Client is the intermediary between one websocket connection and the Hub.
// Identity is bound before the connection reaches the hub; a Client never
// exists without a verified user behind it.
type Client struct {
	UserID   string
	Username string
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte // outbound frames, drained by writePump
}

// readPump reads event envelopes from the websocket and forwards them to
// the hub loop. It owns the unregister on the way out, so cleanup runs no
// matter why the connection died.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		var event domain.Event
		if err := c.Conn.ReadJSON(&event); err != nil {
			slog.Debug("readPump closed", "user_id", c.UserID, "error", err)
			break
		}
		c.Hub.inbound <- &clientEvent{client: c, event: event}
	}
}

// writePump forwards frames from the Send channel to the websocket.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			slog.Debug("writePump closed", "user_id", c.UserID, "error", err)
			return
		}
	}
}
