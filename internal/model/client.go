package model

import "sync"

// Conn is the part of a WebSocket connection the game needs.
// *websocket.Conn from gofiber/websocket satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client is a browser tab watching the board. In hot-seat play both players share one.
type Client struct {
	ID   string
	Conn Conn

	// writes come from request handlers and the turn-over timer
	mu sync.Mutex
}

func NewClient(id string, conn Conn) *Client {
	return &Client{ID: id, Conn: conn}
}

// Send writes v as one JSON frame. Concurrent calls are serialized.
func (c *Client) Send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(v)
}
