package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait = 10 * time.Second

	// clients must answer a ping within this window
	pongWait = 60 * time.Second

	// must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512 * 1024 // 512KB
)

// NewClient wraps an upgraded connection for the hub
func NewClient(hub *Hub, conn *websocket.Conn, info ClientInfo) *Client {
	return &Client{
		info: info,
		hub:  hub,
		send: make(chan Message, 256),
		ctx:  context.Background(),
		done: make(chan struct{}),
		conn: conn,
	}
}

// ReadPump reads messages from the WebSocket until the connection drops
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.done:
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).
					Int64("user_id", c.info.UserID).
					Str("client_type", string(c.info.ClientType)).
					Msg("WebSocket read error")
			}
			break
		}

		c.handleMessage(msg)
	}
}

// WritePump writes queued messages and keepalive pings to the WebSocket
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			err := c.conn.WriteJSON(message)
			if err != nil {
				log.Error().Err(err).
					Int64("user_id", c.info.UserID).
					Str("client_type", string(c.info.ClientType)).
					Msg("WebSocket write error")
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

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "pong":
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

	case "ack":
		var ackData struct {
			MessageID string `json:"message_id"`
		}
		if err := json.Unmarshal(msg.Data, &ackData); err == nil {
			log.Debug().
				Str("message_id", ackData.MessageID).
				Int64("user_id", c.info.UserID).
				Msg("message acknowledged")
		}

	default:
		log.Warn().
			Str("type", msg.Type).
			Int64("user_id", c.info.UserID).
			Msg("unknown message type from client")
	}
}
