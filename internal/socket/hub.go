// server/internal/socket/hub.go
package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// client gói một kết nối kèm write lock riêng, vì watcher và session
// cùng ghi lên một conn từ các goroutine khác nhau.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub quản lý tất cả các client WebSocket, key là session id.
type Hub struct {
	clients map[string]*client
	mu      sync.RWMutex
}

// NewHub tạo một Hub mới.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Register thêm một client mới vào Hub.
func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[sessionID] = &client{conn: conn}
	log.Printf("WebSocket client registered: %s", sessionID)
}

// Unregister xóa một client khỏi Hub.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[sessionID]; ok {
		delete(h.clients, sessionID)
		log.Printf("WebSocket client unregistered: %s", sessionID)
	}
}

// Send gửi một tin nhắn đến một client cụ thể.
func (h *Hub) Send(sessionID string, message []byte) error {
	h.mu.RLock()
	c, ok := h.clients[sessionID]
	h.mu.RUnlock()

	if !ok {
		// Client có thể đã offline, không coi đây là lỗi nghiêm trọng.
		log.Printf("WebSocket client not found, could not send message: %s", sessionID)
		return nil
	}

	return c.write(message)
}

// Broadcast gửi một tin nhắn đến tất cả client đang kết nối.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(message); err != nil {
			log.Printf("WebSocket broadcast write failed: %v", err)
		}
	}
}
