// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"cityhub-marketplace-api-server/internal/auth"
	"cityhub-marketplace-api-server/internal/metrics"
	"cityhub-marketplace-api-server/internal/socket"
	"cityhub-marketplace-api-server/internal/viewstate"
	"cityhub-marketplace-api-server/internal/watch"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Thời gian chờ tối đa cho một tin nhắn từ client.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub     *socket.Hub
	Watcher *watch.Watcher
}

// stateMessage là payload gửi lại client mỗi khi view-state thay đổi.
type stateMessage struct {
	Type  string          `json:"type"` // luôn là "state"
	State viewstate.State `json:"state"`
}

// ServeWs xử lý một phiên WebSocket: đăng ký client vào hub để nhận
// snapshot các collection, đồng thời chạy state machine UI của phiên —
// client gửi event, server reduce và đẩy state mới về.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := auth.ParseJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	// Một user có thể mở nhiều tab, mỗi kết nối là một session riêng
	sessionID := fmt.Sprintf("%s-%s", claims.UID, uuid.New().String()[:8])
	h.Hub.Register(sessionID, conn)
	metrics.WSSessions.Inc()

	defer func() {
		h.Hub.Unregister(sessionID)
		metrics.WSSessions.Dec()
		conn.Close()
	}()

	// Gửi snapshot ban đầu của các collection công khai
	for _, name := range watch.InitialCollections() {
		message, err := h.Watcher.SnapshotFor(context.Background(), name)
		if err != nil {
			log.Printf("Failed to build initial snapshot for %s: %v", name, err)
			continue
		}
		if err := h.Hub.Send(sessionID, message); err != nil {
			log.Printf("Failed to send initial snapshot: %v", err)
			return
		}
	}

	// State machine của phiên: bắt đầu ở home sau khi bootstrap xong
	var stateMu sync.Mutex
	state := viewstate.Initial()
	var toastTimer *time.Timer

	sendState := func() {
		message, err := json.Marshal(stateMessage{Type: "state", State: state})
		if err != nil {
			return
		}
		if err := h.Hub.Send(sessionID, message); err != nil {
			log.Printf("Failed to send state to %s: %v", sessionID, err)
		}
	}
	sendState()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	// Khi nhận được PING từ client, reset lại deadline.
	// Thư viện gorilla/websocket sẽ tự động gửi lại PONG.
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Vòng lặp đọc: mỗi tin nhắn là một viewstate.Event
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		var event viewstate.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Printf("Ignoring malformed event from %s: %v", sessionID, err)
			continue
		}

		stateMu.Lock()
		state = viewstate.ExpireToast(state, time.Now())
		state = viewstate.Reduce(state, event, time.Now())
		if event.Type == viewstate.EventShowToast && state.Toast != nil {
			// Toast tự tắt sau đúng ToastTTL
			if toastTimer != nil {
				toastTimer.Stop()
			}
			toastTimer = time.AfterFunc(viewstate.ToastTTL, func() {
				stateMu.Lock()
				state = viewstate.Reduce(state, viewstate.Event{Type: viewstate.EventClearToast}, time.Now())
				sendState()
				stateMu.Unlock()
			})
		}
		sendState()
		stateMu.Unlock()
	}

	if toastTimer != nil {
		toastTimer.Stop()
	}
}
