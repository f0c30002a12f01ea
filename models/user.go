package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"` // bcrypt hash
	Username    string `gorm:"not null" json:"username"`
	FullName    string `json:"fullName"`
	Role        string `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	IsActive    bool   `gorm:"default:false" json:"isActive"`
	VerifyToken string `json:"-"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DOB         *time.Time `json:"dob,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
