package dto

import (
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/models"
)

type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
	Category    string `json:"category" validate:"required,max=100"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

type UpdateSkillRequest struct {
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Difficulty  *string `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

type SkillListResponse struct {
	Skills      []models.Skill `json:"skills"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	TotalSkills int64          `json:"total_skills"`
}

// TrendingSkill is a catalog entry annotated with how many recently
// accepted matches referenced it.
type TrendingSkill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	MatchCount  int       `json:"match_count"`
}
