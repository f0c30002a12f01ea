package models

import "time"

const (
	ChatStatusActive = "active"
	ChatStatusClosed = "closed"
)

// ChatRoom is the single support-chat channel between one customer and
// the admin side.
type ChatRoom struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	RoomID          string `gorm:"uniqueIndex;not null" json:"roomId"`
	UserID          string `gorm:"index;not null" json:"userId"`
	UserName        string `json:"userName"`
	LastMessage     string `json:"lastMessage,omitempty"`
	LastMessageTime *time.Time `json:"lastMessageTime,omitempty"`
	UnreadCount     int        `json:"unreadCount"`
	Status          string     `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type ChatMessage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomID     string `gorm:"index;not null" json:"roomId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	SenderRole string `gorm:"type:VARCHAR(10)" json:"senderRole"` // customer or admin
	Message    string `json:"message"`
	IsRead     bool   `json:"isRead"`
	IsDeleted  bool   `json:"-"`
	CreatedAt  time.Time `json:"timestamp"`
}
