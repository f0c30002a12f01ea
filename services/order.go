package services

import (
	"strings"
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Inputs --------

type OrderLineInput struct {
	CosmeticID uint    `json:"cosmeticId" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Price      float64 `json:"price" binding:"required,min=0"`
}

type CreateOrderInput struct {
	ReceiverName    string           `json:"receiverName" binding:"required"`
	ReceiverPhone   string           `json:"receiverPhone" binding:"required"`
	ReceiverAddress string           `json:"receiverAddress" binding:"required"`
	OrderNotes      string           `json:"orderNotes"`
	Items           []OrderLineInput `json:"items" binding:"required,min=1"`
	PaymentMethod   string           `json:"paymentMethod"`
}

type PaymentUpdateInput struct {
	Status *string  `json:"status"`
	Method *string  `json:"method"`
	Amount *float64 `json:"amount"`
}

type UpdateOrderInput struct {
	ReceiverName    *string             `json:"receiverName"`
	ReceiverPhone   *string             `json:"receiverPhone"`
	ReceiverAddress *string             `json:"receiverAddress"`
	OrderNotes      *string             `json:"orderNotes"`
	Status          *string             `json:"status"`
	Payment         *PaymentUpdateInput `json:"payment"`
}

// -------- Helpers --------

func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusCompleted:
		return models.OrderStatusCompleted, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", apperr.BadRequest("invalid order status: %s", status)
	}
}

func parsePaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusUnpaid:
		return models.PaymentStatusUnpaid, nil
	case models.PaymentStatusPaid:
		return models.PaymentStatusPaid, nil
	case models.PaymentStatusFailed:
		return models.PaymentStatusFailed, nil
	default:
		return "", apperr.BadRequest("invalid payment status: %s", status)
	}
}

// decrementStock subtracts qty from a cosmetic's stock in a single
// conditional write, so two concurrent checkouts can never drive the
// quantity negative. Zero rows affected means the stock ran out between
// the availability check and this write.
func decrementStock(tx *gorm.DB, cosmeticID uint, qty int, name string) error {
	res := tx.Model(&models.Cosmetic{}).
		Where("id = ? AND quantity >= ?", cosmeticID, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return errors.Wrap(res.Error, "decrement stock")
	}
	if res.RowsAffected == 0 {
		return apperr.InsufficientStock(name)
	}
	return nil
}

// restock adds a purchased quantity back. A cosmetic removed from the
// catalog since purchase is skipped, matching the lookup-then-update
// behavior on cancellation.
func restock(tx *gorm.DB, cosmeticID uint, qty int) error {
	res := tx.Model(&models.Cosmetic{}).
		Where("id = ?", cosmeticID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return errors.Wrap(res.Error, "restock")
	}
	return nil
}

// -------- Core workflow --------

// CreateOrder validates every requested line against the catalog, persists
// the order with a frozen item snapshot, decrements stock, and prunes the
// purchased lines from the user's cart. The whole sequence runs in one
// transaction: a failure at any step leaves no partial effect.
func CreateOrder(db *gorm.DB, userID string, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.BadRequest("order must contain at least one item")
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var totalAmount float64
		var totalItems int
		orderItems := make([]models.OrderItem, 0, len(in.Items))

		for _, line := range in.Items {
			var cosmetic models.Cosmetic
			if err := tx.First(&cosmetic, "id = ?", line.CosmeticID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("cosmetic with id %d not found", line.CosmeticID)
				}
				return errors.Wrap(err, "fetch cosmetic")
			}

			if cosmetic.Quantity < line.Quantity {
				return apperr.InsufficientStock(cosmetic.Name)
			}

			// Price comes from the request payload, not the catalog;
			// the validation layer is expected to have vetted it.
			subtotal := line.Price * float64(line.Quantity)
			totalAmount += subtotal
			totalItems += line.Quantity

			orderItems = append(orderItems, models.OrderItem{
				CosmeticID:    line.CosmeticID,
				Quantity:      line.Quantity,
				Price:         line.Price,
				Subtotal:      subtotal,
				CosmeticName:  cosmetic.Name,
				CosmeticImage: cosmetic.Image,
			})
		}

		method := in.PaymentMethod
		if method == "" {
			method = models.PaymentMethodCOD
		}
		payment := models.OrderPayment{
			Status: models.PaymentStatusUnpaid,
			Method: method,
			Amount: totalAmount,
		}
		if method == models.PaymentMethodBank {
			now := time.Now()
			payment.Status = models.PaymentStatusPaid
			payment.PaidAt = &now
		}

		order = models.Order{
			UserID:          userID,
			ReceiverName:    in.ReceiverName,
			ReceiverPhone:   in.ReceiverPhone,
			ReceiverAddress: in.ReceiverAddress,
			OrderNotes:      in.OrderNotes,
			Items:           orderItems,
			TotalAmount:     totalAmount,
			TotalItems:      totalItems,
			Status:          models.OrderStatusPending,
			Payment:         payment,
			StockApplied:    true,
		}
		if err := tx.Create(&order).Error; err != nil {
			return errors.Wrap(err, "create order")
		}

		for _, line := range in.Items {
			name := ""
			for _, it := range orderItems {
				if it.CosmeticID == line.CosmeticID {
					name = it.CosmeticName
					break
				}
			}
			if err := decrementStock(tx, line.CosmeticID, line.Quantity, name); err != nil {
				return err
			}
		}

		purchased := make([]uint, 0, len(in.Items))
		for _, line := range in.Items {
			purchased = append(purchased, line.CosmeticID)
		}
		return pruneCartAfterCheckout(tx, userID, purchased)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder applies receiver/status/payment changes with the business
// rules tied to status transitions.
func UpdateOrder(db *gorm.DB, orderID uint, in UpdateOrderInput) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order with id %d not found", orderID)
			}
			return errors.Wrap(err, "fetch order")
		}

		var target models.OrderStatus
		if in.Status != nil {
			parsed, err := parseOrderStatus(*in.Status)
			if err != nil {
				return err
			}
			target = parsed
		}

		// First status advance away from pending used to re-run the
		// creation-time decrement. StockApplied is set at creation, so
		// this pass only fires for orders whose stock was never taken.
		if in.Status != nil && order.Status == models.OrderStatusPending && !order.StockApplied {
			for _, item := range order.Items {
				if err := decrementStock(tx, item.CosmeticID, item.Quantity, item.CosmeticName); err != nil {
					return err
				}
			}
			order.StockApplied = true
		}

		switch {
		case in.Status != nil && target == models.OrderStatusCompleted:
			// Completion always settles the payment, overwriting any
			// payment fields in the request.
			now := time.Now()
			order.Payment.Status = models.PaymentStatusPaid
			order.Payment.PaidAt = &now
		case in.Status != nil && target == models.OrderStatusCancelled:
			if order.StockApplied {
				for _, item := range order.Items {
					if err := restock(tx, item.CosmeticID, item.Quantity); err != nil {
						return err
					}
				}
				order.StockApplied = false
			}
			if order.Payment.Status != models.PaymentStatusFailed {
				order.Payment.Status = models.PaymentStatusFailed
			}
		default:
			if in.Payment != nil {
				if in.Payment.Status != nil {
					parsed, err := parsePaymentStatus(*in.Payment.Status)
					if err != nil {
						return err
					}
					order.Payment.Status = parsed
				}
				if in.Payment.Method != nil {
					order.Payment.Method = *in.Payment.Method
				}
				if in.Payment.Amount != nil {
					order.Payment.Amount = *in.Payment.Amount
				}
			}
		}

		if in.Status != nil {
			order.Status = target
		}
		if in.ReceiverName != nil {
			order.ReceiverName = *in.ReceiverName
		}
		if in.ReceiverPhone != nil {
			order.ReceiverPhone = *in.ReceiverPhone
		}
		if in.ReceiverAddress != nil {
			order.ReceiverAddress = *in.ReceiverAddress
		}
		if in.OrderNotes != nil {
			order.OrderNotes = *in.OrderNotes
		}

		// Items are a frozen snapshot; only the order row is written.
		if err := tx.Omit(clause.Associations).Save(&order).Error; err != nil {
			return errors.Wrap(err, "save order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder soft-deletes an order for auditability: the record stays,
// the status is forced to cancelled, and every line's stock is restored.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order with id %d not found", orderID)
			}
			return errors.Wrap(err, "fetch order")
		}

		// Only one of these fires; cancellation takes priority even when
		// both conditions hold.
		if order.Status != models.OrderStatusCancelled {
			order.Status = models.OrderStatusCancelled
		} else if order.Payment.Status != models.PaymentStatusFailed {
			order.Payment.Status = models.PaymentStatusFailed
		}

		for _, item := range order.Items {
			if err := restock(tx, item.CosmeticID, item.Quantity); err != nil {
				return err
			}
		}
		order.StockApplied = false

		if err := tx.Omit(clause.Associations).Save(&order).Error; err != nil {
			return errors.Wrap(err, "save order")
		}
		if err := tx.Delete(&order).Error; err != nil {
			return errors.Wrap(err, "soft delete order")
		}
		return nil
	})
}

// -------- Queries --------

func GetOrderByID(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order with id %d not found", orderID)
		}
		return nil, errors.Wrap(err, "fetch order")
	}
	return &order, nil
}

func GetOrdersByUser(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "list user orders")
	}
	return orders, nil
}

func GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

func GetOrdersPaginated(db *gorm.DB, userID string, page, limit int) ([]models.Order, utils.Pagination, error) {
	countQuery := db.Model(&models.Order{})
	if userID != "" {
		countQuery = countQuery.Where("user_id = ?", userID)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, errors.Wrap(err, "count orders")
	}

	listQuery := db.Preload("Items").
		Order("created_at DESC").
		Offset(utils.Offset(page, limit)).
		Limit(limit)
	if userID != "" {
		listQuery = listQuery.Where("user_id = ?", userID)
	}
	var orders []models.Order
	if err := listQuery.Find(&orders).Error; err != nil {
		return nil, utils.Pagination{}, errors.Wrap(err, "list orders page")
	}
	return orders, utils.CalculatePagination(total, page, limit), nil
}
