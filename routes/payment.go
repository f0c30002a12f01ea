package routes

import (
	paymentControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/payment"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(r *gin.Engine, deps Dependencies) {
	payments := r.Group("/v1/payments")
	payments.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		payments.POST("/qr", paymentControllers.GenerateQR(deps.VietQR))
	}
}
