package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jomboydon/landing_backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// ActivityEvent is pushed to connected admin dashboards.
type ActivityEvent struct {
	Type     string          `json:"type"`
	Activity models.Activity `json:"activity"`
}

// ActivityHub fans activity events out to admin websocket clients.
type ActivityHub struct {
	register   chan *activityClient
	unregister chan *activityClient
	broadcast  chan []byte
	done       chan struct{}
	clients    map[*activityClient]struct{}
}

func NewActivityHub() *ActivityHub {
	return &ActivityHub{
		register:   make(chan *activityClient),
		unregister: make(chan *activityClient),
		broadcast:  make(chan []byte, sendBufferSize),
		done:       make(chan struct{}),
		clients:    make(map[*activityClient]struct{}),
	}
}

func (h *ActivityHub) Run() {
	for {
		select {
		case <-h.done:
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					h.drop(client)
				}
			}
		}
	}
}

// Stop ends Run and disconnects all clients. It must be called at most once.
func (h *ActivityHub) Stop() {
	close(h.done)
}

func (h *ActivityHub) drop(client *activityClient) {
	delete(h.clients, client)
	close(client.send)
	client.conn.Close()
}

// Publish implements activity.Publisher. Events are dropped when the
// broadcast queue is full so that writers never block on slow dashboards.
func (h *ActivityHub) Publish(a models.Activity) {
	if h == nil {
		return
	}
	data, err := json.Marshal(ActivityEvent{Type: "activity", Activity: a})
	if err != nil {
		log.Printf("ws: failed to marshal activity: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Printf("ws: activity queue full, dropping event %d", a.ID)
	}
}

type activityClient struct {
	hub  *ActivityHub
	conn *websocket.Conn
	send chan []byte
}

func newActivityClient(hub *ActivityHub, conn *websocket.Conn) *activityClient {
	return &activityClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *activityClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *activityClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
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
