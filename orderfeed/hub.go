// Package orderfeed pushes order lifecycle events to connected admin
// dashboards over websockets.
package orderfeed

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event is what the feed broadcasts.
type Event struct {
	Action    string `json:"action"` // "order_created" or "status_changed"
	OrderID   string `json:"orderId"`
	UserID    int    `json:"userId,omitempty"`
	Status    string `json:"status"`
	Total     int64  `json:"total,omitempty"`
	Timestamp int64  `json:"timestamp"` // unix seconds
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop closes every client channel and ends the Run loop.
func (h *Hub) Stop() {
	close(h.stop)
}

// Publish is nil-safe so callers can run without a feed wired in (tests,
// memory mode without admin dashboards).
func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().Unix()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("orderfeed: marshal event: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		// feed congested or stopped; events are advisory, drop it
	}
}
