package services

import (
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AddressInput struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	AddressDetail string `json:"addressDetail" binding:"required"`
	IsDefault     bool   `json:"isDefault"`
}

type UpdateAddressInput struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	AddressDetail *string `json:"addressDetail"`
	IsDefault     *bool   `json:"isDefault"`
}

// CreateAddress adds a delivery address. The user's first address is
// always the default; a later default demotes the previous one.
func CreateAddress(db *gorm.DB, userID string, in AddressInput) (*models.Address, error) {
	if _, err := GetUserByID(db, userID); err != nil {
		return nil, err
	}

	var address models.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count addresses")
		}

		isDefault := in.IsDefault
		if count == 0 {
			isDefault = true
		} else if isDefault {
			if err := unsetDefaultAddresses(tx, userID); err != nil {
				return err
			}
		}

		address = models.Address{
			UserID:        userID,
			Name:          in.Name,
			Phone:         in.Phone,
			AddressDetail: in.AddressDetail,
			IsDefault:     isDefault,
		}
		if err := tx.Create(&address).Error; err != nil {
			return errors.Wrap(err, "create address")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func unsetDefaultAddresses(tx *gorm.DB, userID string) error {
	if err := tx.Model(&models.Address{}).
		Where("user_id = ? AND is_default", userID).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "unset default addresses")
	}
	return nil
}

func ListAddresses(db *gorm.DB, userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addresses).Error; err != nil {
		return nil, errors.Wrap(err, "list addresses")
	}
	return addresses, nil
}

func UpdateAddress(db *gorm.DB, userID string, addressID uint, in UpdateAddressInput) (*models.Address, error) {
	var address models.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("address not found")
			}
			return errors.Wrap(err, "fetch address")
		}

		updates := make(map[string]interface{})
		if in.Name != nil {
			updates["name"] = *in.Name
		}
		if in.Phone != nil {
			updates["phone"] = *in.Phone
		}
		if in.AddressDetail != nil {
			updates["address_detail"] = *in.AddressDetail
		}
		if in.IsDefault != nil && *in.IsDefault && !address.IsDefault {
			if err := unsetDefaultAddresses(tx, userID); err != nil {
				return err
			}
			updates["is_default"] = true
		}

		if len(updates) > 0 {
			if err := tx.Model(&address).Updates(updates).Error; err != nil {
				return errors.Wrap(err, "update address")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// DeleteAddress removes an address; when the default is removed, the
// oldest remaining address is promoted.
func DeleteAddress(db *gorm.DB, userID string, addressID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("address not found")
			}
			return errors.Wrap(err, "fetch address")
		}

		if err := tx.Delete(&address).Error; err != nil {
			return errors.Wrap(err, "delete address")
		}

		if address.IsDefault {
			var next models.Address
			err := tx.Where("user_id = ?", userID).Order("created_at ASC").First(&next).Error
			if err == nil {
				if err := tx.Model(&next).Update("is_default", true).Error; err != nil {
					return errors.Wrap(err, "promote default address")
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(err, "find next default")
			}
		}
		return nil
	})
}

func SetDefaultAddress(db *gorm.DB, userID string, addressID uint) (*models.Address, error) {
	isDefault := true
	return UpdateAddress(db, userID, addressID, UpdateAddressInput{IsDefault: &isDefault})
}
