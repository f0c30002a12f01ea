package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // confirmed, being prepared
	OrderStatusCompleted  OrderStatus = "completed"  // delivered and settled
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled, stock restored

	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"

	PaymentMethodCOD  = "COD"
	PaymentMethodBank = "BANK"
)

// OrderPayment is the settlement sub-record embedded in an order.
type OrderPayment struct {
	Status PaymentStatus `gorm:"type:VARCHAR(20);default:'unpaid'" json:"status"`
	Method string        `json:"method"`
	Amount float64       `json:"amount"`
	PaidAt *time.Time    `json:"paidAt,omitempty"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"not null;index" json:"userId"`
	ReceiverName    string      `gorm:"not null" json:"receiverName"`
	ReceiverPhone   string      `gorm:"not null" json:"receiverPhone"`
	ReceiverAddress string      `gorm:"not null" json:"receiverAddress"`
	OrderNotes      string      `json:"orderNotes,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	TotalItems      int         `json:"totalItems"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	Payment OrderPayment `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	// StockApplied records that the creation-time stock decrement has run,
	// so no later status transition may decrement again.
	StockApplied bool `json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// OrderItem is a frozen snapshot of one purchased line; later cosmetic
// edits never touch it.
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	OrderID       uint    `gorm:"index" json:"-"`
	CosmeticID    uint    `json:"cosmeticId"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Subtotal      float64 `json:"subtotal"`
	CosmeticName  string  `json:"cosmeticName,omitempty"`
	CosmeticImage string  `json:"cosmeticImage,omitempty"`
}
