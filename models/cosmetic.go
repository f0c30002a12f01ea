package models

import (
	"time"

	"gorm.io/gorm"
)

type Cosmetic struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null" json:"nameCosmetic"`
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	Brand         string  `gorm:"not null" json:"brand"`
	Classify      string  `json:"classify"`
	Quantity      int     `gorm:"not null;default:0" json:"quantity"` // sellable stock, never negative
	Description   string  `json:"description"`
	OriginalPrice float64 `gorm:"not null" json:"originalPrice"`
	DiscountPrice float64 `gorm:"not null" json:"discountPrice"`
	Rating        float64 `json:"rating"`
	IsNew         bool    `gorm:"default:true" json:"isNew"`
	IsSaleOff     bool    `gorm:"default:false" json:"isSaleOff"`
	Image         string  `json:"image"`
	PublicID      string  `json:"publicId"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
