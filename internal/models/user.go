package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is a marketplace member: identity plus the offered/wanted skill
// sets the match engine works over. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Email         string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string         `gorm:"not null" json:"-"`
	Location      string         `gorm:"size:255;default:''" json:"location"`
	SkillsOffered []Skill        `gorm:"many2many:user_skills_offered" json:"skills_offered"`
	SkillsWanted  []Skill        `gorm:"many2many:user_skills_wanted" json:"skills_wanted"`
	SkillTags     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"skill_tags"`
	Availability  string         `gorm:"size:255" json:"availability"`
	Bio           string         `gorm:"size:500" json:"bio"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
