package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message. Read flips to true when the receiver
// opens the conversation; messages are never deleted.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_sender_receiver" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_sender_receiver" json:"receiver_id"`
	Content    string    `gorm:"size:2000;not null" json:"content"`
	Read       bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"-"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"-"`
}
