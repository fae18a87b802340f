package events

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Event adalah notifikasi perubahan resource yang dikirim ke semua
// klien WebSocket yang terhubung.
type Event struct {
	Resource string `json:"resource"` // "list" atau "task"
	Action   string `json:"action"`   // "created", "updated", "deleted"
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
}

// Client merepresentasikan klien WebSocket.
type Client struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// Hub mengelola koneksi WebSocket dan broadcast event.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Publish mengirim event perubahan resource ke hub.
// Non-blocking: kalau buffer penuh event dibuang, notifikasi ini
// best-effort dan bukan sumber kebenaran.
func (h *Hub) Publish(resource, action string, id, userID int) {
	payload, err := json.Marshal(Event{
		Resource: resource,
		Action:   action,
		ID:       id,
		UserID:   userID,
	})
	if err != nil {
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
	}
}

// Run menjalankan loop Hub untuk mengelola register, unregister, dan broadcast.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, message)
				client.Mu.Unlock()
				if err != nil {
					// lepas langsung di sini, kirim ke h.Unregister dari
					// loop ini sendiri akan deadlock
					delete(h.Clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}
