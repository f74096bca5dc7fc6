package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/auth"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/services"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// CreateSkill handles POST /api/skills
func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	skill, err := h.skillService.CreateSkill(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// GetSkill handles GET /api/skills/:id
func (h *SkillHandler) GetSkill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid skill id")
	}

	skill, err := h.skillService.GetSkill(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skill)
}

// ListSkills handles GET /api/skills
func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	resp, err := h.skillService.ListSkills(c.Query("category"), c.Query("difficulty"), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Categories handles GET /api/skills/categories
func (h *SkillHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.skillService.Categories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// SearchSkills handles GET /api/skills/search
func (h *SkillHandler) SearchSkills(c *fiber.Ctx) error {
	skills, err := h.skillService.SearchSkills(c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skills)
}

// TrendingSkills handles GET /api/skills/trending
func (h *SkillHandler) TrendingSkills(c *fiber.Ctx) error {
	trending, err := h.skillService.TrendingSkills(0)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": trending})
}

// UpdateSkill handles PUT /api/skills/:id
func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid skill id")
	}

	var req dto.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	skill, err := h.skillService.UpdateSkill(id, userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skill)
}

// DeleteSkill handles DELETE /api/skills/:id
func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid skill id")
	}

	if err := h.skillService.DeleteSkill(id, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill deleted"})
}
