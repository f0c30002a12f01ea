package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryCountsAndRevenue(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 100, 50)
	seedUser(t, db, "user-1", "a@example.com")

	completed, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 2, Price: 50},
	))
	require.NoError(t, err)
	_, err = UpdateOrder(db, completed.ID, UpdateOrderInput{Status: strPtr("completed")})
	require.NoError(t, err)

	_, err = CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)

	summary, err := GetDashboardSummary(db)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TotalCosmetics)
	assert.Equal(t, int64(1), summary.TotalUsers)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, int64(1), summary.OrdersPending)
	assert.Equal(t, int64(1), summary.OrdersCompleted)
	assert.Equal(t, 100.0, summary.RevenueThisYear)
}

func TestRevenueCountsOnlyCompletedOrders(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 100, 50)

	order, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 3, Price: 50},
	))
	require.NoError(t, err)

	now := time.Now()
	revenue, err := GetRevenueByMonth(db, now.Year(), now.Month())
	require.NoError(t, err)
	assert.Zero(t, revenue)

	_, err = UpdateOrder(db, order.ID, UpdateOrderInput{Status: strPtr("completed")})
	require.NoError(t, err)

	revenue, err = GetRevenueByMonth(db, now.Year(), now.Month())
	require.NoError(t, err)
	assert.Equal(t, 150.0, revenue)

	revenue, err = GetRevenueByYear(db, now.Year()+1)
	require.NoError(t, err)
	assert.Zero(t, revenue)
}

func TestOrderCountByMonth(t *testing.T) {
	db := setupTestDB(t)
	serum := seedCosmetic(t, db, "Vitamin C Serum", 100, 50)

	_, err := CreateOrder(db, "user-1", orderInput(
		OrderLineInput{CosmeticID: serum.ID, Quantity: 1, Price: 50},
	))
	require.NoError(t, err)

	now := time.Now()
	n, err := GetOrderCountByMonth(db, now.Year(), now.Month())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = GetOrderCountByMonth(db, now.Year()-1, now.Month())
	require.NoError(t, err)
	assert.Zero(t, n)
}
