package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/metrics"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/services"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

// POST /orders
func CreateOrderHandler(db *gorm.DB, m *metrics.OrderMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input services.CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := services.CreateOrder(db, userID, input)
		if err != nil {
			if apperr.StatusOf(err) == http.StatusBadRequest {
				m.InsufficientStock.Inc()
			}
			utils.RespondError(c, err)
			return
		}

		m.OrdersCreated.Inc()
		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/user/:userID
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		if userID != c.GetString("user_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "7"))

		orders, pagination, err := services.GetOrdersPaginated(db, userID, page, limit)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": orders, "pagination": pagination})
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := services.GetOrderByID(db, id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if order.UserID != c.GetString("user_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		orders, pagination, err := services.GetOrdersPaginated(db, "", page, limit)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": orders, "pagination": pagination})
	}
}

// PUT /admin/orders/:orderID
func UpdateOrderHandler(db *gorm.DB, m *metrics.OrderMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}

		var input services.UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := services.UpdateOrder(db, id, input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		if order.Status == models.OrderStatusCancelled {
			m.OrdersCancelled.Inc()
			m.CosmeticsRestocked.Inc()
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB, m *metrics.OrderMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		if err := services.DeleteOrder(db, id); err != nil {
			utils.RespondError(c, err)
			return
		}
		m.OrdersCancelled.Inc()
		m.CosmeticsRestocked.Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
