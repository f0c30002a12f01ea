package services

import (
	"fmt"
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetOrCreateChatRoom returns the user's support room, creating it lazily
// on first contact.
func GetOrCreateChatRoom(db *gorm.DB, userID, userName string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := db.Where("user_id = ?", userID).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "fetch chat room")
	}

	room = models.ChatRoom{
		RoomID:   fmt.Sprintf("room_%s_%d", userID, time.Now().UnixMilli()),
		UserID:   userID,
		UserName: userName,
		Status:   models.ChatStatusActive,
	}
	if err := db.Create(&room).Error; err != nil {
		return nil, errors.Wrap(err, "create chat room")
	}
	return &room, nil
}

func GetChatRoomByRoomID(db *gorm.DB, roomID string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := db.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("chat room not found")
		}
		return nil, errors.Wrap(err, "fetch chat room")
	}
	return &room, nil
}

// AppendChatMessage persists a message and refreshes the room's preview
// fields. Customer messages bump the unread counter for the admin side.
func AppendChatMessage(db *gorm.DB, roomID, senderID, senderName, senderRole, message string) (*models.ChatMessage, error) {
	var msg models.ChatMessage
	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.ChatRoom
		if err := tx.Where("room_id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("chat room not found")
			}
			return errors.Wrap(err, "fetch chat room")
		}

		msg = models.ChatMessage{
			RoomID:     roomID,
			SenderID:   senderID,
			SenderName: senderName,
			SenderRole: senderRole,
			Message:    message,
		}
		if err := tx.Create(&msg).Error; err != nil {
			return errors.Wrap(err, "create chat message")
		}

		now := time.Now()
		updates := map[string]interface{}{
			"last_message":      message,
			"last_message_time": now,
		}
		if senderRole == models.RoleCustomer {
			updates["unread_count"] = gorm.Expr("unread_count + 1")
		}
		if err := tx.Model(&room).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update chat room preview")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkChatRoomRead marks every message read and clears the unread counter.
func MarkChatRoomRead(db *gorm.DB, roomID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ChatMessage{}).
			Where("room_id = ? AND NOT is_read", roomID).
			Update("is_read", true).Error; err != nil {
			return errors.Wrap(err, "mark messages read")
		}
		if err := tx.Model(&models.ChatRoom{}).
			Where("room_id = ?", roomID).
			Update("unread_count", 0).Error; err != nil {
			return errors.Wrap(err, "clear unread count")
		}
		return nil
	})
}

func ListChatMessages(db *gorm.DB, roomID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := db.Where("room_id = ? AND NOT is_deleted", roomID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, errors.Wrap(err, "list chat messages")
	}
	return messages, nil
}

func ListActiveChatRooms(db *gorm.DB) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	if err := db.Where("status = ?", models.ChatStatusActive).
		Order("last_message_time DESC NULLS LAST").
		Find(&rooms).Error; err != nil {
		return nil, errors.Wrap(err, "list chat rooms")
	}
	return rooms, nil
}
