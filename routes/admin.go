package routes

import (
	adminControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/admin"
	cartControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/cart"
	chatControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/chat"
	cosmeticControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/cosmetic"
	dashboardControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/dashboard"
	orderControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/order"
	userControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/user"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires the back-office surface: the admin account
// lifecycle plus the API-key-guarded data endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Dependencies) {
	// Account lifecycle stays outside the API-key guard: registration is
	// gated by the creation secret instead, and verify/login precede any
	// credential an admin could hold.
	auth := r.Group("/v1/admin")
	{
		auth.POST("/register", adminControllers.Register(deps.DB, deps.Mailer, deps.Config.WebsiteDomain, deps.Config.AdminCreationSecret))
		auth.PUT("/verify", adminControllers.VerifyEmail(deps.DB))
		auth.POST("/login", adminControllers.Login(deps.DB, deps.Config.JWTSecret))
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.ValidateAPIKey(deps.Config.AdminAPIKey))
	{
		// Catalog management
		admin.POST("/cosmetics", cosmeticControllers.CreateCosmetic(deps.DB))
		admin.PUT("/cosmetics/:id", cosmeticControllers.UpdateCosmetic(deps.DB))
		admin.DELETE("/cosmetics/:id", cosmeticControllers.DeleteCosmetic(deps.DB))
		admin.GET("/cosmetics/export-excel", cosmeticControllers.ExportCosmeticsToExcel(deps.DB))

		// Customers
		admin.GET("/users", userControllers.GetAllUsers(deps.DB))
		admin.DELETE("/users/:userID", userControllers.DeleteUser(deps.DB))
		admin.GET("/users/:userID/cart", cartControllers.GetAdminUserCart(deps.DB))

		// Order management
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(deps.DB))
		admin.PUT("/orders/:orderID", orderControllers.UpdateOrderHandler(deps.DB, deps.Metrics))
		admin.DELETE("/orders/:orderID", orderControllers.DeleteOrderHandler(deps.DB, deps.Metrics))

		// Dashboard
		admin.GET("/dashboard/summary", dashboardControllers.GetSummary(deps.DB))
		admin.GET("/dashboard/revenue", dashboardControllers.GetRevenue(deps.DB))
		admin.GET("/dashboard/order-count", dashboardControllers.GetOrderCountByMonth(deps.DB))

		// Support chat
		admin.GET("/chats/rooms", chatControllers.ListActiveRooms(deps.DB))
	}
}
