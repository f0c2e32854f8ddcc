package chatbot

import (
	"sync"

	"github.com/gorilla/websocket"
)

// The assistant widget keeps one WebSocket per browser tab; the hub
// tracks them so shutdown can close every connection, and fans replies
// out without letting one slow reader block the rest.

type Client struct {
	Conn  *websocket.Conn
	Send  chan []byte
	Token string
}

type clientMsg struct {
	client *Client
	data   []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	outbound   chan clientMsg
	stop       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   make(chan clientMsg),
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

		case m := <-h.outbound:
			h.mu.Lock()
			if h.clients[m.client] {
				select {
				case m.client.Send <- m.data:
				default:
					close(m.client.Send)
					delete(h.clients, m.client)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				if c.Conn != nil {
					c.Conn.Close()
				}
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister drops a connection; its Send channel is closed by Run.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Deliver queues one payload for one client. A client that cannot keep
// up is dropped rather than blocking the hub.
func (h *Hub) Deliver(c *Client, data []byte) {
	h.outbound <- clientMsg{client: c, data: data}
}

// Stop closes all connections and ends Run.
func (h *Hub) Stop() {
	close(h.stop)
}
