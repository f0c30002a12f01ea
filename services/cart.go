package services

import (
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Cart totals are never adjusted incrementally. Every mutation path ends
// with recalcCartTotals folding over the rows that survived, so the cached
// totalAmount/totalItems always equal the sum over current items.

func recalcCartTotals(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return errors.Wrap(err, "load cart items")
	}

	var totalAmount float64
	var totalItems int
	for _, item := range items {
		totalAmount += item.Subtotal
		totalItems += item.Quantity
	}

	if err := tx.Model(&models.Cart{}).
		Where("cart_id = ?", cartID).
		Updates(map[string]interface{}{
			"total_amount": totalAmount,
			"total_items":  totalItems,
		}).Error; err != nil {
		return errors.Wrap(err, "update cart totals")
	}
	return nil
}

// pruneCartAfterCheckout removes the purchased lines from the user's cart
// and recomputes the remaining totals. Users without a cart are a no-op.
func pruneCartAfterCheckout(tx *gorm.DB, userID string, purchased []uint) error {
	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return errors.Wrap(err, "fetch cart")
	}

	if err := tx.Where("cart_id = ? AND cosmetic_id IN ?", cart.CartID, purchased).
		Delete(&models.CartItem{}).Error; err != nil {
		return errors.Wrap(err, "remove purchased items")
	}
	return recalcCartTotals(tx, cart.CartID)
}

// GetCartByUser returns the user's cart with each line's cosmetic record
// populated, or an empty unsaved cart shape when none exists yet (carts
// are created lazily on first add). A cosmetic removed from the catalog
// since it was added leaves its line's Cosmetic nil.
func GetCartByUser(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items.Cosmetic").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return nil, errors.Wrap(err, "fetch cart")
	}
	return &cart, nil
}

// AddToCart merges the quantity into an existing line for the same
// cosmetic, or appends a new line priced at the cosmetic's current
// discount price. Stock sufficiency is checked on every add.
func AddToCart(db *gorm.DB, userID string, cosmeticID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperr.BadRequest("quantity must be at least 1")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cosmetic models.Cosmetic
		if err := tx.First(&cosmetic, "id = ?", cosmeticID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cosmetic with id %d not found", cosmeticID)
			}
			return errors.Wrap(err, "fetch cosmetic")
		}
		if cosmetic.Quantity < quantity {
			return apperr.InsufficientStock(cosmetic.Name)
		}

		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(err, "fetch cart")
			}
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return errors.Wrap(err, "create cart")
			}
		}

		var item models.CartItem
		err := tx.Where("cart_id = ? AND cosmetic_id = ?", cart.CartID, cosmeticID).
			First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			item.Subtotal = item.Price * float64(item.Quantity)
			item.AddedAt = time.Now()
			if err := tx.Save(&item).Error; err != nil {
				return errors.Wrap(err, "update cart item")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:     cart.CartID,
				CosmeticID: cosmeticID,
				Quantity:   quantity,
				Price:      cosmetic.DiscountPrice,
				Subtotal:   cosmetic.DiscountPrice * float64(quantity),
				AddedAt:    time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return errors.Wrap(err, "add cart item")
			}
		default:
			return errors.Wrap(err, "fetch cart item")
		}

		return recalcCartTotals(tx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}
	return GetCartByUser(db, userID)
}

// UpdateQuantity sets an absolute quantity for a line. Zero or negative
// is equivalent to removing the line.
func UpdateQuantity(db *gorm.DB, userID string, cosmeticID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return RemoveFromCart(db, userID, cosmeticID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart not found")
			}
			return errors.Wrap(err, "fetch cart")
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND cosmetic_id = ?", cart.CartID, cosmeticID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cosmetic not in cart")
			}
			return errors.Wrap(err, "fetch cart item")
		}

		var cosmetic models.Cosmetic
		if err := tx.First(&cosmetic, "id = ?", cosmeticID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cosmetic with id %d not found", cosmeticID)
			}
			return errors.Wrap(err, "fetch cosmetic")
		}
		if cosmetic.Quantity < quantity {
			return apperr.InsufficientStock(cosmetic.Name)
		}

		item.Quantity = quantity
		item.Subtotal = item.Price * float64(quantity)
		if err := tx.Save(&item).Error; err != nil {
			return errors.Wrap(err, "update cart item")
		}

		return recalcCartTotals(tx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}
	return GetCartByUser(db, userID)
}

func RemoveFromCart(db *gorm.DB, userID string, cosmeticID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart not found")
			}
			return errors.Wrap(err, "fetch cart")
		}

		res := tx.Where("cart_id = ? AND cosmetic_id = ?", cart.CartID, cosmeticID).
			Delete(&models.CartItem{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete cart item")
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("cosmetic not in cart")
		}

		return recalcCartTotals(tx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}
	return GetCartByUser(db, userID)
}

func ClearCart(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart not found")
			}
			return errors.Wrap(err, "fetch cart")
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return errors.Wrap(err, "clear cart items")
		}
		return recalcCartTotals(tx, cart.CartID)
	})
}
