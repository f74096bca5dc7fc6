package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")

	t.Run("persists unread message", func(t *testing.T) {
		msg, err := svc.SendMessage(alice.ID, &dto.SendMessageRequest{
			ReceiverID: bob.ID,
			Content:    "hey, still up for the swap?",
		})
		require.NoError(t, err)
		assert.False(t, msg.Read)
		assert.Equal(t, alice.ID, msg.SenderID)
		assert.Equal(t, bob.ID, msg.ReceiverID)
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := svc.SendMessage(alice.ID, &dto.SendMessageRequest{ReceiverID: bob.ID})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("missing receiver", func(t *testing.T) {
		_, err := svc.SendMessage(alice.ID, &dto.SendMessageRequest{Content: "hi"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown receiver", func(t *testing.T) {
		_, err := svc.SendMessage(alice.ID, &dto.SendMessageRequest{
			ReceiverID: uuid.New(),
			Content:    "hi",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestListConversations(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)

	me := createUser(t, db, "me", "")
	u1 := createUser(t, db, "ursula", "")
	u2 := createUser(t, db, "viktor", "")

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

	createMessage(t, db, me, u1, "hi ursula", true, t1.Add(-time.Minute))
	createMessage(t, db, u1, me, "hello back", false, t1)
	createMessage(t, db, u2, me, "good morning", true, t2)

	conversations, err := svc.ListConversations(me.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// u2's conversation has the later preview, so it comes first.
	assert.Equal(t, u2.ID, conversations[0].UserID)
	assert.Equal(t, "viktor", conversations[0].UserName)
	assert.Equal(t, "good morning", conversations[0].LastMessage.Content)
	assert.Equal(t, 0, conversations[0].UnreadCount)

	assert.Equal(t, u1.ID, conversations[1].UserID)
	assert.Equal(t, "hello back", conversations[1].LastMessage.Content)
	assert.Equal(t, 1, conversations[1].UnreadCount)
}

func TestChatHistoryMarksRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)

	me := createUser(t, db, "me", "")
	u1 := createUser(t, db, "ursula", "")
	u2 := createUser(t, db, "viktor", "")

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	createMessage(t, db, me, u1, "first", true, base)
	createMessage(t, db, u1, me, "second", false, base.Add(time.Minute))
	createMessage(t, db, u1, me, "third", false, base.Add(2*time.Minute))
	// Unrelated thread must stay untouched.
	createMessage(t, db, u2, me, "other thread", false, base)

	history, err := svc.ChatHistory(me.ID, u1.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Ascending chronological order with display names attached.
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, "third", history[2].Content)
	assert.Equal(t, "me", history[0].SenderName)
	assert.Equal(t, "ursula", history[0].ReceiverName)

	// The read-marking side effect drains u1's unread count.
	conversations, err := svc.ListConversations(me.ID)
	require.NoError(t, err)
	for _, conv := range conversations {
		switch conv.UserID {
		case u1.ID:
			assert.Equal(t, 0, conv.UnreadCount)
		case u2.ID:
			assert.Equal(t, 1, conv.UnreadCount)
		}
	}
}

func TestChatHistoryIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)

	me := createUser(t, db, "me", "")
	u1 := createUser(t, db, "ursula", "")

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	createMessage(t, db, u1, me, "one", false, base)
	createMessage(t, db, me, u1, "two", false, base.Add(time.Minute))

	first, err := svc.ChatHistory(me.ID, u1.ID)
	require.NoError(t, err)
	second, err := svc.ChatHistory(me.ID, u1.ID)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Content, second[i].Content)
	}

	// All of u1's messages were marked read by the first call.
	var unread int64
	require.NoError(t, db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", me.ID, false).
		Count(&unread).Error)
	assert.Zero(t, unread)
}
