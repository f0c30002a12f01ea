package routes

import (
	userControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/user"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(r *gin.Engine, deps Dependencies) {
	users := r.Group("/v1/users")
	{
		// Public account endpoints
		users.POST("/register", userControllers.Register(deps.DB, deps.Mailer, deps.Config.WebsiteDomain))
		users.PUT("/verify", userControllers.VerifyEmail(deps.DB))
		users.POST("/login", userControllers.Login(deps.DB, deps.Config.JWTSecret))

		// Profile (JWT-protected)
		me := users.Group("/me")
		me.Use(middleware.ValidateToken(deps.Config.JWTSecret))
		{
			me.GET("", userControllers.GetProfile(deps.DB))
			me.PUT("", userControllers.UpdateProfile(deps.DB))
		}
	}
}
