package routes

import (
	cartControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/cart"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(r *gin.Engine, deps Dependencies) {
	carts := r.Group("/v1/carts")
	carts.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		carts.GET("", cartControllers.GetUserCart(deps.DB))
		carts.POST("/items", cartControllers.AddToCart(deps.DB))
		carts.PUT("/items/:cosmeticID", cartControllers.UpdateCartItem(deps.DB))
		carts.DELETE("/items/:cosmeticID", cartControllers.DeleteCartItem(deps.DB))
		carts.DELETE("", cartControllers.ClearUserCart(deps.DB))
	}
}
