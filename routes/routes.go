package routes

import (
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/config"
	chatControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/chat"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/metrics"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/providers"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies carries every handle the route groups need. Everything is
// constructed once in main; no package-level singletons.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Mailer  services.Mailer
	VietQR  *providers.VietQRClient
	Metrics *metrics.OrderMetrics
	ChatHub *chatControllers.Hub
}

// SetupRoutes is the single entry point wiring every route group.
func SetupRoutes(r *gin.Engine, deps Dependencies) {
	SetupUserRoutes(r, deps)
	SetupCosmeticRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupAddressRoutes(r, deps)
	SetupChatRoutes(r, deps)
	SetupPaymentRoutes(r, deps)
	SetupAdminRoutes(r, deps)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
