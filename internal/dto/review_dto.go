package dto

import (
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/models"
)

type CreateReviewRequest struct {
	MatchID      uuid.UUID `json:"match_id" validate:"required"`
	Rating       int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string    `json:"comment" validate:"required,min=10,max=500"`
	SkillRatedID uuid.UUID `json:"skill_rated_id" validate:"required"`
}

// SkillReviewGroup is the per-skill slice of a user's received reviews
// with its own running average.
type SkillReviewGroup struct {
	Skill         models.Skill    `json:"skill"`
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
}

type ReceivedReviewsResponse struct {
	AverageRating  float64                      `json:"average_rating"`
	TotalReviews   int                          `json:"total_reviews"`
	ReviewsBySkill map[string]*SkillReviewGroup `json:"reviews_by_skill"`
	Reviews        []models.Review              `json:"reviews"`
}
