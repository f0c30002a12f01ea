package routes

import (
	cosmeticControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/cosmetic"
	"github.com/gin-gonic/gin"
)

func SetupCosmeticRoutes(r *gin.Engine, deps Dependencies) {
	cosmetics := r.Group("/v1/cosmetics")
	{
		cosmetics.GET("", cosmeticControllers.GetCosmetics(deps.DB))
		cosmetics.GET("/:id", cosmeticControllers.GetCosmeticByID(deps.DB))
		cosmetics.GET("/slug/:slug", cosmeticControllers.GetCosmeticBySlug(deps.DB))
	}
}
