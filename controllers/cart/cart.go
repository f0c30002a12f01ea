package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	CosmeticID uint `json:"cosmeticId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /carts
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		cart, err := services.GetCartByUser(db, userID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /carts/items
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := services.AddToCart(db, userID, input.CosmeticID, input.Quantity)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /carts/items/:cosmeticID
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cosmeticID, err := strconv.ParseUint(c.Param("cosmeticID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cosmetic ID"})
			return
		}

		var input struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := services.UpdateQuantity(db, userID, uint(cosmeticID), input.Quantity)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /carts/items/:cosmeticID
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cosmeticID, err := strconv.ParseUint(c.Param("cosmeticID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cosmetic ID"})
			return
		}

		cart, err := services.RemoveFromCart(db, userID, uint(cosmeticID))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /carts
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		if err := services.ClearCart(db, userID); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:userID
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		cart, err := services.GetCartByUser(db, userID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
