package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/auth"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessage handles POST /api/messages/send
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	message, err := h.messageService.SendMessage(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// Conversations handles GET /api/messages/conversations
func (h *MessageHandler) Conversations(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	conversations, err := h.messageService.ListConversations(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": conversations})
}

// ChatHistory handles GET /api/messages/:userId/chat. Fetching history
// also marks the other user's messages as read.
func (h *MessageHandler) ChatHistory(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	history, err := h.messageService.ChatHistory(userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": history})
}
