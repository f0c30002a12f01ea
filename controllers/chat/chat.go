package chatControllers

import (
	"net/http"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /chats/room
func GetOrCreateRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		user, err := services.GetUserByID(db, userID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		room, err := services.GetOrCreateChatRoom(db, user.ID, user.FullName)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// GET /chats/:roomID/messages
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("roomID")
		if _, err := services.GetChatRoomByRoomID(db, roomID); err != nil {
			utils.RespondError(c, err)
			return
		}
		messages, err := services.ListChatMessages(db, roomID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// PUT /admin/chats/:roomID/read
func MarkRoomRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.MarkChatRoomRead(db, c.Param("roomID")); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
	}
}

// GET /admin/chats
func ListActiveRooms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := services.ListActiveChatRooms(db)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}
