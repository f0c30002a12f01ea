package routes

import (
	addressControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/address"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAddressRoutes(r *gin.Engine, deps Dependencies) {
	addresses := r.Group("/v1/addresses")
	addresses.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		addresses.POST("", addressControllers.CreateAddress(deps.DB))
		addresses.GET("", addressControllers.ListAddresses(deps.DB))
		addresses.PUT("/:addressID", addressControllers.UpdateAddress(deps.DB))
		addresses.DELETE("/:addressID", addressControllers.DeleteAddress(deps.DB))
		addresses.PUT("/:addressID/default", addressControllers.SetDefaultAddress(deps.DB))
	}
}
