package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Skill is a catalog entry. CreatedByID is fixed at creation and never
// reassigned.
type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Difficulty  string    `gorm:"size:20;default:'Beginner'" json:"difficulty"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   User      `gorm:"foreignKey:CreatedByID" json:"-"`
}
