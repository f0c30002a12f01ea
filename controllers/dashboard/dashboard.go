package dashboardControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/dashboard
func GetSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := services.GetDashboardSummary(db)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func yearMonthParams(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(time.Now().Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// GET /admin/dashboard/revenue?year=&month=
func GetRevenue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, month, ok := yearMonthParams(c)
		if !ok {
			return
		}

		if c.Query("month") == "" {
			revenue, err := services.GetRevenueByYear(db, year)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"year": year, "revenue": revenue})
			return
		}

		revenue, err := services.GetRevenueByMonth(db, year, month)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"year": year, "month": int(month), "revenue": revenue})
	}
}

// GET /admin/dashboard/orders-by-month?year=&month=
func GetOrderCountByMonth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, month, ok := yearMonthParams(c)
		if !ok {
			return
		}
		count, err := services.GetOrderCountByMonth(db, year, month)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"year": year, "month": int(month), "count": count})
	}
}
