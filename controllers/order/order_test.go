package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/metrics"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The default prometheus registry rejects duplicate registration, so the
// counters are built once for the whole test binary.
var testMetrics = metrics.NewOrderMetrics()

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Cosmetic{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func orderRouterAs(db *gorm.DB, userID string) *gin.Engine {
	r := gin.New()
	r.POST("/orders", asUser(userID), CreateOrderHandler(db, testMetrics))
	r.GET("/orders/user/:userID", asUser(userID), GetUserOrdersHandler(db))
	r.GET("/orders/:orderID", asUser(userID), GetOrderByIDHandler(db))
	r.PUT("/orders/:orderID", UpdateOrderHandler(db, testMetrics))
	r.DELETE("/orders/:orderID", DeleteOrderHandler(db, testMetrics))
	return r
}

func orderRouter(db *gorm.DB) *gin.Engine {
	return orderRouterAs(db, "user-1")
}

func seedSerum(t *testing.T, db *gorm.DB, quantity int) *models.Cosmetic {
	t.Helper()
	cosmetic := models.Cosmetic{
		Name:          "Vitamin C Serum",
		Slug:          "vitamin-c-serum",
		Brand:         "Beautify",
		Quantity:      quantity,
		OriginalPrice: 60,
		DiscountPrice: 50,
	}
	require.NoError(t, db.Create(&cosmetic).Error)
	return &cosmetic
}

func TestCreateOrderEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedSerum(t, db, 10)

	body := `{
		"receiverName": "Linh Tran",
		"receiverPhone": "0901234567",
		"receiverAddress": "12 Nguyen Hue",
		"items": [{"cosmeticId": 1, "quantity": 2, "price": 50}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"totalAmount":100`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	var cosmetic models.Cosmetic
	require.NoError(t, db.First(&cosmetic, "id = ?", 1).Error)
	assert.Equal(t, 8, cosmetic.Quantity)
}

func TestCreateOrderEndpointRejectsEmptyItems(t *testing.T) {
	db := setupTestDB(t)

	body := `{
		"receiverName": "Linh Tran",
		"receiverPhone": "0901234567",
		"receiverAddress": "12 Nguyen Hue",
		"items": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpointInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	seedSerum(t, db, 1)

	body := `{
		"receiverName": "Linh Tran",
		"receiverPhone": "0901234567",
		"receiverAddress": "12 Nguyen Hue",
		"items": [{"cosmeticId": 1, "quantity": 5, "price": 50}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
}

func TestUpdateOrderEndpointInvalidID(t *testing.T) {
	db := setupTestDB(t)

	req := httptest.NewRequest(http.MethodPut, "/orders/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderEndpointForbidsOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	seedSerum(t, db, 10)

	body := `{
		"receiverName": "Linh Tran",
		"receiverPhone": "0901234567",
		"receiverAddress": "12 Nguyen Hue",
		"items": [{"cosmeticId": 1, "quantity": 1, "price": 50}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// The owner can read it.
	req = httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	w = httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Another authenticated user cannot.
	req = httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	w = httptest.NewRecorder()
	orderRouterAs(db, "user-2").ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUserOrdersEndpointForbidsOtherUsers(t *testing.T) {
	db := setupTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/user/user-1", nil)
	w := httptest.NewRecorder()
	orderRouterAs(db, "user-2").ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/orders/user/user-1", nil)
	w = httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteOrderEndpointNotFound(t *testing.T) {
	db := setupTestDB(t)

	req := httptest.NewRequest(http.MethodDelete, "/orders/99", nil)
	w := httptest.NewRecorder()
	orderRouter(db).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
