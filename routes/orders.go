package routes

import (
	orderControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/order"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, deps Dependencies) {
	orders := r.Group("/v1/orders")
	orders.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		// Checkout
		orders.POST("", orderControllers.CreateOrderHandler(deps.DB, deps.Metrics))

		// Orders for a specific user
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(deps.DB))

		// Single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.DB))
	}

	// websocket endpoint for real-time order updates
	r.GET("/v1/orders/ws", orderControllers.OrderWebSocketHandler)
}
