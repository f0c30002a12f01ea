package addressControllers

import (
	"net/http"
	"strconv"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func addressIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("addressID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
		return 0, false
	}
	return uint(id), true
}

// POST /addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input services.AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address, err := services.CreateAddress(db, userID, input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// GET /addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		addresses, err := services.ListAddresses(db, c.GetString("user_id"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// PUT /addresses/:addressID
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := addressIDParam(c)
		if !ok {
			return
		}

		var input services.UpdateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address, err := services.UpdateAddress(db, c.GetString("user_id"), id, input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /addresses/:addressID
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := addressIDParam(c)
		if !ok {
			return
		}
		if err := services.DeleteAddress(db, c.GetString("user_id"), id); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}

// PUT /addresses/:addressID/default
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := addressIDParam(c)
		if !ok {
			return
		}
		address, err := services.SetDefaultAddress(db, c.GetString("user_id"), id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, address)
	}
}
