package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
)

// respondError maps a service failure onto an HTTP status. Store failures
// and foreign errors stay opaque to the client.
func respondError(c *fiber.Ctx, err error) error {
	var code int
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		code = fiber.StatusBadRequest
	case apperr.KindNotFound:
		code = fiber.StatusNotFound
	case apperr.KindForbidden:
		code = fiber.StatusForbidden
	case apperr.KindInvalidState:
		code = fiber.StatusUnprocessableEntity
	case apperr.KindConflict:
		code = fiber.StatusConflict
	default:
		slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
