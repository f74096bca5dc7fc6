package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is feedback left on a completed match. The unique index on
// (match_id, reviewer_id) enforces one review per reviewer per match at
// the store level as well.
type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MatchID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_match_reviewer" json:"match_id"`
	ReviewerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_match_reviewer" json:"reviewer_id"`
	RecipientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"size:500;not null" json:"comment"`
	SkillRatedID uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_rated_id"`
	CreatedAt    time.Time `json:"created_at"`
	Match        Match     `gorm:"foreignKey:MatchID" json:"-"`
	Reviewer     User      `gorm:"foreignKey:ReviewerID" json:"-"`
	Recipient    User      `gorm:"foreignKey:RecipientID" json:"-"`
	SkillRated   Skill     `gorm:"foreignKey:SkillRatedID" json:"-"`
}
