package models

import "time"

type Cart struct {
	CartID      uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"uniqueIndex"` // one cart per user
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	TotalItems  int        `json:"totalItems"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	CartID     uint      `gorm:"index" json:"-"`
	CosmeticID uint      `json:"cosmeticId"`
	Cosmetic   *Cosmetic `gorm:"foreignKey:CosmeticID" json:"cosmetic,omitempty"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"` // discount price snapshot at add time
	Subtotal   float64   `json:"subtotal"`
	AddedAt    time.Time
}
