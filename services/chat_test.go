package services

import (
	"testing"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateChatRoomIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	room, err := GetOrCreateChatRoom(db, "user-1", "Linh")
	require.NoError(t, err)
	assert.NotEmpty(t, room.RoomID)
	assert.Equal(t, models.ChatStatusActive, room.Status)

	again, err := GetOrCreateChatRoom(db, "user-1", "Linh")
	require.NoError(t, err)
	assert.Equal(t, room.RoomID, again.RoomID)

	var count int64
	require.NoError(t, db.Model(&models.ChatRoom{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAppendChatMessageUpdatesPreviewAndUnread(t *testing.T) {
	db := setupTestDB(t)

	room, err := GetOrCreateChatRoom(db, "user-1", "Linh")
	require.NoError(t, err)

	_, err = AppendChatMessage(db, room.RoomID, "user-1", "Linh", models.RoleCustomer, "hello")
	require.NoError(t, err)
	_, err = AppendChatMessage(db, room.RoomID, "user-1", "Linh", models.RoleCustomer, "anyone there?")
	require.NoError(t, err)

	reloaded, err := GetChatRoomByRoomID(db, room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "anyone there?", reloaded.LastMessage)
	assert.Equal(t, 2, reloaded.UnreadCount)
	require.NotNil(t, reloaded.LastMessageTime)

	// Admin replies do not bump the unread counter.
	_, err = AppendChatMessage(db, room.RoomID, "admin-1", "Support", models.RoleAdmin, "hi!")
	require.NoError(t, err)

	reloaded, err = GetChatRoomByRoomID(db, room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.UnreadCount)

	messages, err := ListChatMessages(db, room.RoomID)
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}

func TestMarkChatRoomRead(t *testing.T) {
	db := setupTestDB(t)

	room, err := GetOrCreateChatRoom(db, "user-1", "Linh")
	require.NoError(t, err)
	_, err = AppendChatMessage(db, room.RoomID, "user-1", "Linh", models.RoleCustomer, "hello")
	require.NoError(t, err)

	require.NoError(t, MarkChatRoomRead(db, room.RoomID))

	reloaded, err := GetChatRoomByRoomID(db, room.RoomID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.UnreadCount)

	messages, err := ListChatMessages(db, room.RoomID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsRead)
}

func TestAppendChatMessageUnknownRoom(t *testing.T) {
	db := setupTestDB(t)

	_, err := AppendChatMessage(db, "room_missing", "user-1", "Linh", models.RoleCustomer, "hello")
	require.Error(t, err)
}
