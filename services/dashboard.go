package services

import (
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DashboardSummary is the admin landing rollup.
type DashboardSummary struct {
	TotalCosmetics   int64   `json:"totalCosmetics"`
	TotalUsers       int64   `json:"totalUsers"`
	TotalOrders      int64   `json:"totalOrders"`
	OrdersPending    int64   `json:"ordersPending"`
	OrdersProcessing int64   `json:"ordersProcessing"`
	OrdersCompleted  int64   `json:"ordersCompleted"`
	OrdersCancelled  int64   `json:"ordersCancelled"`
	RevenueThisYear  float64 `json:"revenueThisYear"`
}

func countOrdersByStatus(db *gorm.DB, status models.OrderStatus) (int64, error) {
	var n int64
	err := db.Model(&models.Order{}).Where("status = ?", status).Count(&n).Error
	return n, errors.Wrap(err, "count orders by status")
}

func GetDashboardSummary(db *gorm.DB) (*DashboardSummary, error) {
	var s DashboardSummary

	if err := db.Model(&models.Cosmetic{}).Count(&s.TotalCosmetics).Error; err != nil {
		return nil, errors.Wrap(err, "count cosmetics")
	}
	if err := db.Model(&models.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, errors.Wrap(err, "count users")
	}
	if err := db.Model(&models.Order{}).Count(&s.TotalOrders).Error; err != nil {
		return nil, errors.Wrap(err, "count orders")
	}

	var err error
	if s.OrdersPending, err = countOrdersByStatus(db, models.OrderStatusPending); err != nil {
		return nil, err
	}
	if s.OrdersProcessing, err = countOrdersByStatus(db, models.OrderStatusProcessing); err != nil {
		return nil, err
	}
	if s.OrdersCompleted, err = countOrdersByStatus(db, models.OrderStatusCompleted); err != nil {
		return nil, err
	}
	if s.OrdersCancelled, err = countOrdersByStatus(db, models.OrderStatusCancelled); err != nil {
		return nil, err
	}

	if s.RevenueThisYear, err = GetRevenueByYear(db, time.Now().Year()); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetRevenueByYear sums the total amount of completed orders created in
// the given calendar year.
func GetRevenueByYear(db *gorm.DB, year int) (float64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return sumCompletedRevenue(db, start, end)
}

func GetRevenueByMonth(db *gorm.DB, year int, month time.Month) (float64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return sumCompletedRevenue(db, start, end)
}

func sumCompletedRevenue(db *gorm.DB, start, end time.Time) (float64, error) {
	var revenue *float64
	err := db.Model(&models.Order{}).
		Select("SUM(total_amount)").
		Where("status = ? AND created_at >= ? AND created_at < ?",
			models.OrderStatusCompleted, start, end).
		Scan(&revenue).Error
	if err != nil {
		return 0, errors.Wrap(err, "sum revenue")
	}
	if revenue == nil {
		return 0, nil
	}
	return *revenue, nil
}

func GetOrderCountByMonth(db *gorm.DB, year int, month time.Month) (int64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var n int64
	err := db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&n).Error
	if err != nil {
		return 0, errors.Wrap(err, "count orders by month")
	}
	return n, nil
}
