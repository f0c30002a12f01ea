package routes

import (
	chatControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/chat"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupChatRoutes(r *gin.Engine, deps Dependencies) {
	chats := r.Group("/v1/chats")
	chats.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		chats.POST("/rooms", chatControllers.GetOrCreateRoom(deps.DB))
		chats.GET("/rooms/:roomID/messages", chatControllers.GetMessages(deps.DB))
		chats.PUT("/rooms/:roomID/read", chatControllers.MarkRoomRead(deps.DB))
	}

	r.GET("/v1/chats/ws", chatControllers.ChatWebSocketHandler(deps.DB, deps.ChatHub))
}
