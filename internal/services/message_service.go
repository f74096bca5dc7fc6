package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// MessageService handles direct messages and the derived conversation
// views.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// SendMessage persists a new unread message to the receiver.
func (s *MessageService) SendMessage(senderID uuid.UUID, req *dto.SendMessageRequest) (*models.Message, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if senderID == req.ReceiverID {
		return nil, apperr.Validation("cannot message yourself")
	}

	var receiver models.User
	if err := s.db.First(&receiver, "id = ?", req.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("receiver not found")
		}
		return nil, apperr.Store("failed to load receiver", err)
	}

	message := models.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Read:       false,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, apperr.Store("failed to create message", err)
	}
	return &message, nil
}

// ListConversations derives one entry per counterpart the user has
// exchanged messages with: the latest message as preview, the number of
// that counterpart's messages still unread, and the counterpart's display
// fields. Ordered by preview timestamp, newest first.
func (s *MessageService) ListConversations(userID uuid.UUID) ([]dto.Conversation, error) {
	var messages []models.Message
	err := s.db.
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, apperr.Store("failed to load messages", err)
	}

	byPartner := make(map[uuid.UUID]*dto.Conversation)
	for i := range messages {
		m := &messages[i]

		partner := m.Sender
		if m.SenderID == userID {
			partner = m.Receiver
		}

		conv, ok := byPartner[partner.ID]
		if !ok {
			conv = &dto.Conversation{
				UserID:    partner.ID,
				UserName:  partner.Name,
				UserEmail: partner.Email,
			}
			byPartner[partner.ID] = conv
		}

		// Messages arrive in ascending order, so the last one seen per
		// partner is the preview.
		conv.LastMessage = toChatMessage(m)
		conv.LastMessageTime = m.CreatedAt

		if m.ReceiverID == userID && !m.Read {
			conv.UnreadCount++
		}
	}

	conversations := make([]dto.Conversation, 0, len(byPartner))
	for _, conv := range byPartner {
		conversations = append(conversations, *conv)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageTime.After(conversations[j].LastMessageTime)
	})
	return conversations, nil
}

// ChatHistory returns every message between the two users in ascending
// chronological order. As a side effect it marks the counterpart's unread
// messages to the caller as read; callers should not assume this read is
// side-effect-free.
func (s *MessageService) ChatHistory(userID, otherUserID uuid.UUID) ([]dto.ChatMessage, error) {
	var messages []models.Message
	err := s.db.
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, apperr.Store("failed to load chat history", err)
	}

	history := make([]dto.ChatMessage, 0, len(messages))
	for i := range messages {
		history = append(history, toChatMessage(&messages[i]))
	}

	err = s.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", otherUserID, userID, false).
		Update("read", true).Error
	if err != nil {
		return nil, apperr.Store("failed to mark messages read", err)
	}

	return history, nil
}

func toChatMessage(m *models.Message) dto.ChatMessage {
	return dto.ChatMessage{
		ID:           m.ID,
		SenderID:     m.SenderID,
		ReceiverID:   m.ReceiverID,
		SenderName:   m.Sender.Name,
		ReceiverName: m.Receiver.Name,
		Content:      m.Content,
		Read:         m.Read,
		CreatedAt:    m.CreatedAt,
	}
}
