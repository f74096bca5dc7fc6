package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Content    string    `json:"content" validate:"required,max=2000"`
}

// ChatMessage is a message with both parties' display fields resolved.
type ChatMessage struct {
	ID           uuid.UUID `json:"id"`
	SenderID     uuid.UUID `json:"sender_id"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	SenderName   string    `json:"sender_name"`
	ReceiverName string    `json:"receiver_name"`
	Content      string    `json:"content"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

// Conversation is the aggregated thread view with one counterpart: the
// latest message as preview plus how many of their messages are unread.
type Conversation struct {
	UserID          uuid.UUID   `json:"user_id"`
	UserName        string      `json:"user_name"`
	UserEmail       string      `json:"user_email"`
	LastMessage     ChatMessage `json:"last_message"`
	UnreadCount     int         `json:"unread_count"`
	LastMessageTime time.Time   `json:"last_message_time"`
}
