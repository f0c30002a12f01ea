package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	AdminName string `gorm:"not null" json:"adminName"`
	FullName  string `json:"fullName"`
	Role        string `gorm:"type:VARCHAR(20);default:'admin'" json:"role"`
	IsActive    bool   `gorm:"default:false" json:"isActive"`
	VerifyToken string `json:"-"`
	Avatar      string `json:"avatar,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
