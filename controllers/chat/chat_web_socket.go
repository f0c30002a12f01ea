package chatControllers

import (
	"net/http"
	"sync"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans chat messages out to every connection joined to a room.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*websocket.Conn]bool)}
}

func (h *Hub) join(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true
}

func (h *Hub) leave(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for roomID, conns := range h.rooms {
		if conns[conn] {
			delete(conns, conn)
			if len(conns) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

func (h *Hub) broadcast(roomID string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[roomID] {
		if err := conn.WriteJSON(payload); err != nil {
			logrus.Warnf("chat broadcast: %v", err)
		}
	}
}

type chatEvent struct {
	Event      string `json:"event"` // join_room | send_message | mark_read
	RoomID     string `json:"roomId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	SenderRole string `json:"senderRole"`
	Message    string `json:"message"`
}

// ChatWebSocketHandler serves the live chat channel. Clients send JSON
// events; message sends are persisted before fan-out so history survives
// reconnects.
func ChatWebSocketHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer func() {
			hub.leave(conn)
			conn.Close()
		}()

		for {
			var ev chatEvent
			if err := conn.ReadJSON(&ev); err != nil {
				break
			}

			switch ev.Event {
			case "join_room":
				room, err := services.GetOrCreateChatRoom(db, ev.UserID, ev.UserName)
				if err != nil {
					_ = conn.WriteJSON(gin.H{"event": "error", "message": "Failed to join room"})
					continue
				}
				hub.join(room.RoomID, conn)
				if ev.SenderRole == models.RoleAdmin {
					_ = services.MarkChatRoomRead(db, room.RoomID)
				}
				messages, err := services.ListChatMessages(db, room.RoomID)
				if err != nil {
					_ = conn.WriteJSON(gin.H{"event": "error", "message": "Failed to load messages"})
					continue
				}
				_ = conn.WriteJSON(gin.H{
					"event":    "room_joined",
					"roomId":   room.RoomID,
					"messages": messages,
				})

			case "send_message":
				msg, err := services.AppendChatMessage(db, ev.RoomID, ev.UserID, ev.UserName, ev.SenderRole, ev.Message)
				if err != nil {
					_ = conn.WriteJSON(gin.H{"event": "error", "message": "Failed to send message"})
					continue
				}
				hub.broadcast(ev.RoomID, gin.H{"event": "new_message", "message": msg})

			case "mark_read":
				if err := services.MarkChatRoomRead(db, ev.RoomID); err != nil {
					_ = conn.WriteJSON(gin.H{"event": "error", "message": "Failed to mark read"})
				}

			default:
				_ = conn.WriteJSON(gin.H{"event": "error", "message": "Unknown event"})
			}
		}
	}
}
