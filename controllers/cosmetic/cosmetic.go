package cosmeticControllers

import (
	"net/http"
	"strconv"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseFilter(c *gin.Context) services.CosmeticFilter {
	f := services.CosmeticFilter{
		Search:    c.Query("search"),
		Brand:     c.Query("brand"),
		Classify:  c.Query("classify"),
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("order", "desc"),
	}
	if v := c.Query("min_price"); v != "" {
		if mp, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &mp
		}
	}
	if v := c.Query("max_price"); v != "" {
		if mp, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &mp
		}
	}
	return f
}

// GET /cosmetics
func GetCosmetics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseFilter(c)

		if c.Query("page") != "" {
			page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
			limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
			cosmetics, pagination, err := services.GetCosmeticsPaginated(db, filter, page, limit)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"data": cosmetics, "pagination": pagination})
			return
		}

		cosmetics, err := services.GetAllCosmetics(db, filter)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cosmetics)
	}
}

// GET /cosmetics/:id
func GetCosmeticByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cosmetic ID"})
			return
		}
		cosmetic, err := services.GetCosmeticByID(db, uint(id))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cosmetic)
	}
}

// GET /cosmetics/slug/:slug
func GetCosmeticBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cosmetic, err := services.GetCosmeticBySlug(db, c.Param("slug"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cosmetic)
	}
}

// POST /admin/cosmetics
func CreateCosmetic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CosmeticInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cosmetic, err := services.CreateCosmetic(db, input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cosmetic)
	}
}

// PUT /admin/cosmetics/:id
func UpdateCosmetic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cosmetic ID"})
			return
		}
		var input services.UpdateCosmeticInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cosmetic, err := services.UpdateCosmetic(db, uint(id), input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cosmetic)
	}
}

// DELETE /admin/cosmetics/:id
func DeleteCosmetic(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cosmetic ID"})
			return
		}
		if err := services.DeleteCosmetic(db, uint(id)); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cosmetic deleted successfully"})
	}
}
