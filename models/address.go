package models

import "time"

// Address is one delivery address of a user. At most one per user carries
// IsDefault; promoting another address clears the previous default.
type Address struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"index;not null" json:"userId"`
	Name          string `gorm:"not null" json:"name"`
	Phone         string `gorm:"not null" json:"phone"`
	AddressDetail string `gorm:"not null" json:"addressDetail"`
	IsDefault     bool   `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
