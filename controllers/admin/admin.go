package adminControllers

import (
	"net/http"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/middleware"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VerifyAdminInput struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/register
func Register(db *gorm.DB, mailer services.Mailer, websiteDomain, creationSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		admin, err := services.RegisterAdmin(db, mailer, websiteDomain, creationSecret, input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, admin)
	}
}

// PUT /admin/verify
func VerifyEmail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		admin, err := services.VerifyAdminEmail(db, input.Email, input.Token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

// POST /admin/login
func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		admin, err := services.AdminLogin(db, input.Email, input.Password)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		token, err := middleware.IssueToken(jwtSecret, admin.ID, admin.Email, admin.Role)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
	}
}
