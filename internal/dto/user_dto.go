package dto

import (
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/models"
)

// UpdateProfileRequest uses pointers so absent fields are left untouched
// instead of being overwritten with zero values.
type UpdateProfileRequest struct {
	Name          *string      `json:"name" validate:"omitempty,min=1,max=100"`
	Email         *string      `json:"email" validate:"omitempty,email"`
	Password      *string      `json:"password" validate:"omitempty,min=6"`
	Location      *string      `json:"location" validate:"omitempty,max=255"`
	SkillTags     *[]string    `json:"skill_tags"`
	Availability  *string      `json:"availability" validate:"omitempty,max=255"`
	Bio           *string      `json:"bio" validate:"omitempty,max=500"`
	SkillsOffered *[]uuid.UUID `json:"skills_offered"`
	SkillsWanted  *[]uuid.UUID `json:"skills_wanted"`
}

// CompatibleUser is one recommendation result: a candidate plus the size
// of the overlap between the caller's wanted skills and the candidate's
// offered skills.
type CompatibleUser struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Location      string         `json:"location"`
	MatchScore    int            `json:"match_score"`
	SkillsOffered []models.Skill `json:"skills_offered"`
}
