package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oguzsenna/skillswap-api/internal/auth"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/services"
)

type UserHandler struct {
	userService  *services.UserService
	matchService *services.MatchService
}

func NewUserHandler(userService *services.UserService, matchService *services.MatchService) *UserHandler {
	return &UserHandler{userService: userService, matchService: matchService}
}

// GetProfile handles GET /api/users/profile
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Recommendations handles GET /api/users/recommend
func (h *UserHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	results, err := h.matchService.FindCompatibleUsers(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": results})
}

// NearbyMatches handles GET /api/users/nearby
func (h *UserHandler) NearbyMatches(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	results, err := h.matchService.FindMutualMatches(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": results})
}
