package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/auth"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/services"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// CreateMatch handles POST /api/matches/request
func (h *MatchHandler) CreateMatch(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	match, err := h.matchService.CreateMatchRequest(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

// MyMatches handles GET /api/matches/my-matches
func (h *MatchHandler) MyMatches(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matches, err := h.matchService.ListMatchesForUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": matches})
}

// UpdateStatus handles PUT /api/matches/:matchId/status
func (h *MatchHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Params("matchId"))
	if err != nil {
		return badRequest(c, "Invalid match id")
	}

	var req dto.UpdateMatchStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	match, err := h.matchService.UpdateMatchStatus(matchID, userID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(match)
}
