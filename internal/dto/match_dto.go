package dto

import "github.com/google/uuid"

type CreateMatchRequest struct {
	RecipientID    uuid.UUID `json:"recipient_id" validate:"required"`
	SkillOfferedID uuid.UUID `json:"skill_offered_id" validate:"required"`
	SkillWantedID  uuid.UUID `json:"skill_wanted_id" validate:"required"`
	Message        string    `json:"message" validate:"omitempty,max=500"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}
