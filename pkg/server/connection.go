package server

import (
	"log"
	"sync"
	"time"

	"slingshot-server/pkg/server/types"

	"github.com/gorilla/websocket"
)

// Connection represents a WebSocket connection. All writes go through the
// send channel so a single goroutine owns the socket's write side.
type Connection struct {
	ID         string
	connection *websocket.Conn
	SessionID  string

	send      chan types.Message
	closed    chan struct{}
	closeOnce sync.Once
}

func newConnection(id string, ws *websocket.Conn) *Connection {
	return &Connection{
		ID:         id,
		connection: ws,
		send:       make(chan types.Message, connectionSendBuffer),
		closed:     make(chan struct{}),
	}
}

// enqueue queues a message without blocking. Returns false when the
// connection is closed or its buffer is full.
func (c *Connection) enqueue(msg types.Message) bool {
	select {
	case <-c.closed:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.connection.Close()
	})
}

// writePump writes queued messages and keeps the connection alive with pings
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			c.connection.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.connection.WriteJSON(msg); err != nil {
				log.Printf("writePump: Error sending %s to connection %s: %v", msg.Type, c.ID, err)
				c.close()
				return
			}
		case <-ticker.C:
			c.connection.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.closed:
			return
		}
	}
}
