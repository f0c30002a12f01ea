package services

import (
	"testing"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Cosmetic{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.ChatRoom{},
		&models.ChatMessage{},
	))
	return db
}

func seedCosmetic(t *testing.T, db *gorm.DB, name string, quantity int, discountPrice float64) *models.Cosmetic {
	t.Helper()

	cosmetic, err := CreateCosmetic(db, CosmeticInput{
		Name:          name,
		Brand:         "Beautify",
		Quantity:      quantity,
		OriginalPrice: discountPrice * 1.25,
		DiscountPrice: discountPrice,
	})
	require.NoError(t, err)
	return cosmetic
}

func stockOf(t *testing.T, db *gorm.DB, cosmeticID uint) int {
	t.Helper()

	var cosmetic models.Cosmetic
	require.NoError(t, db.First(&cosmetic, "id = ?", cosmeticID).Error)
	return cosmetic.Quantity
}
