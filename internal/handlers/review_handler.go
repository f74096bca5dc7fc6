package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oguzsenna/skillswap-api/internal/auth"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.CreateReview(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// ReceivedReviews handles GET /api/reviews/received
func (h *ReviewHandler) ReceivedReviews(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summary, err := h.reviewService.ReceivedReviewsSummary(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
