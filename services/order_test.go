package services

import (
	"net/http"
	"testing"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderInput(lines ...OrderLineInput) CreateOrderInput {
	return CreateOrderInput{
		ReceiverName:    "Linh Tran",
		ReceiverPhone:   "0901234567",
		ReceiverAddress: "12 Nguyen Hue, District 1",
		Items:           lines,
	}
}

func strPtr(s string) *string { return &s }

func TestCreateOrderComputesTotalsAndDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)
	mask := seedCosmetic(t, db, "Clay Mask", 5, 30)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 3, Price: 50},
		OrderLineInput{CosmeticID: mask.ID, Quantity: 1, Price: 30},
	))
	require.NoError(t, err)

	assert.Equal(t, 180.0, order.TotalAmount)
	assert.Equal(t, 4, order.TotalItems)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.StockApplied)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 150.0, order.Items[0].Subtotal)
	assert.Equal(t, "Vitamin C Serum", order.Items[0].CosmeticName)

	assert.Equal(t, 7, stockOf(t, db, serum.ID))
	assert.Equal(t, 4, stockOf(t, db, mask.ID))
}

func TestCreateOrderDefaultsToCODUnpaid(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)

	assert.Equal(t, models.PaymentMethodCOD, order.Payment.Method)
	assert.Equal(t, models.PaymentStatusUnpaid, order.Payment.Status)
	assert.Nil(t, order.Payment.PaidAt)
	assert.Equal(t, 50.0, order.Payment.Amount)
}

func TestCreateOrderBankTransferIsPaidImmediately(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	in := orderInput(OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50})
	in.PaymentMethod = models.PaymentMethodBank

	order, err := CreateOrder(db, "user-1", in)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, order.Payment.Status)
	require.NotNil(t, order.Payment.PaidAt)
}

func TestCreateOrderUnknownCosmeticFailsWithoutSideEffects(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	_, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50},
		OrderLineInput{CosmeticID: 999, Quantity: 1, Price: 10},
	))
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	assert.Equal(t, 10, stockOf(t, db, serum.ID))
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderInsufficientStockAbortsWholeOrder(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)
	mask := seedCosmetic(t, db, "Clay Mask", 2, 30)

	_, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50},
		OrderLineInput{CosmeticID: mask.ID, Quantity: 5, Price: 30},
	))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Contains(t, err.Error(), "Clay Mask")

	// The first line's decrement rolled back with the transaction.
	assert.Equal(t, 10, stockOf(t, db, serum.ID))
	assert.Equal(t, 2, stockOf(t, db, mask.ID))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderPrunesPurchasedCartLines(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)
	mask := seedCosmetic(t, db, "Clay Mask", 5, 30)

	_, err := AddToCart(db, "user-1", serum.ID, 2)
	require.NoError(t, err)
	_, err = AddToCart(db, "user-1", mask.ID, 1)
	require.NoError(t, err)

	_, err = CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50},
	))
	require.NoError(t, err)

	cart, err := GetCartByUser(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, mask.ID, cart.Items[0].CosmeticID)
	assert.Equal(t, 30.0, cart.TotalAmount)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestCreateOrderWithoutCartSucceeds(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	_, err := CreateOrder(db, "user-no-cart", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)
}

func TestUpdateOrderStatusAdvanceNeverDecrementsTwice(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 3, Price: 50},
	))
	require.NoError(t, err)
	require.Equal(t, 7, stockOf(t, db, serum.ID))

	updated, err := UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("processing")})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	// Stock was already taken at checkout.
	assert.Equal(t, 7, stockOf(t, db, serum.ID))
}

func TestUpdateOrderCompletionSettlesPayment(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusUnpaid, order.Payment.Status)

	updated, err := UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("completed")})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.Equal(t, models.PaymentStatusPaid, updated.Payment.Status)
	require.NotNil(t, updated.Payment.PaidAt)
}

func TestUpdateOrderCancellationRestocksOnce(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 4, Price: 50},
	))
	require.NoError(t, err)
	require.Equal(t, 6, stockOf(t, db, serum.ID))

	updated, err := UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
	assert.Equal(t, models.PaymentStatusFailed, updated.Payment.Status)
	assert.False(t, updated.StockApplied)
	assert.Equal(t, 10, stockOf(t, db, serum.ID))

	// Cancelling again must not restock again.
	_, err = UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, 10, stockOf(t, db, serum.ID))
}

func TestUpdateOrderAppliesReceiverAndPaymentFields(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)

	updated, err := UpdateOrder(db, order.ID, UpdateOrderInput{
		ReceiverPhone: strPtr("0987654321"),
		Payment:       &PaymentUpdateInput{Status: strPtr("paid")},
	})
	require.NoError(t, err)

	assert.Equal(t, "0987654321", updated.ReceiverPhone)
	assert.Equal(t, models.PaymentStatusPaid, updated.Payment.Status)

	reloaded, err := GetOrderByID(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0987654321", reloaded.ReceiverPhone)
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)

	_, err = UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("shipped")})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateOrder(db, 42, UpdateOrderInput{Status: strPtr("processing")})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateOrderDoesNotRewriteItemSnapshots(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50},
	))
	require.NoError(t, err)

	// Rename the cosmetic after purchase; the snapshot must keep the
	// name at purchase time.
	_, err = UpdateCosmetic(db, serum.ID, UpdateCosmeticInput{Name: strPtr("Vitamin C Serum 2.0")})
	require.NoError(t, err)

	_, err = UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("processing")})
	require.NoError(t, err)

	reloaded, err := GetOrderByID(db, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Vitamin C Serum", reloaded.Items[0].CosmeticName)
	assert.Equal(t, 50.0, reloaded.Items[0].Price)
}

func TestDeleteOrderCancelsRestocksAndSoftDeletes(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 3, Price: 50},
	))
	require.NoError(t, err)
	require.Equal(t, 7, stockOf(t, db, serum.ID))

	require.NoError(t, DeleteOrder(db, order.ID))

	assert.Equal(t, 10, stockOf(t, db, serum.ID))

	_, err = GetOrderByID(db, order.ID)
	assert.True(t, apperr.IsNotFound(err))

	// The row survives for auditing.
	var archived models.Order
	require.NoError(t, db.Unscoped().First(&archived, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, archived.Status)
	assert.True(t, archived.DeletedAt.Valid)
}

func TestDeleteOrderAlreadyCancelledFailsPaymentInstead(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 10, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50},
	))
	require.NoError(t, err)

	_, err = UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("cancelled")})
	require.NoError(t, err)
	require.Equal(t, 10, stockOf(t, db, serum.ID))

	require.NoError(t, DeleteOrder(db, order.ID))

	var archived models.Order
	require.NoError(t, db.Unscoped().First(&archived, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, archived.Status)
	assert.Equal(t, models.PaymentStatusFailed, archived.Payment.Status)

	// Deletion restocks regardless of the earlier cancellation restock.
	assert.Equal(t, 12, stockOf(t, db, serum.ID))
}

func TestGetOrdersByUserAndPagination(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 100, 50)

	for i := 0; i < 3; i++ {
		_, err := CreateOrder(db, "user-1", orderInput(
			OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
		))
		require.NoError(t, err)
	}
	_, err := CreateOrder(db, "user-2", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)

	mine, err := GetOrdersByUser(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	page, pagination, err := GetOrdersPaginated(db, "user-1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(3), pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.True(t, pagination.HasNextPage)

	all, err := GetAllOrders(db)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
