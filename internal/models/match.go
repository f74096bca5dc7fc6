package models

import (
	"time"

	"github.com/google/uuid"
)

// Match lifecycle states. pending may move to accepted or rejected;
// accepted may move to completed; rejected and completed are terminal.
const (
	MatchPending   = "pending"
	MatchAccepted  = "accepted"
	MatchRejected  = "rejected"
	MatchCompleted = "completed"
)

// Match is a proposed or ongoing skill swap between two users. Requester
// and recipient are always distinct.
type Match struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RequesterID    uuid.UUID `gorm:"type:uuid;not null;index" json:"requester_id"`
	RecipientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SkillOfferedID uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_offered_id"`
	SkillWantedID  uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_wanted_id"`
	Status         string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Message        string    `gorm:"size:500" json:"message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Requester      User      `gorm:"foreignKey:RequesterID" json:"-"`
	Recipient      User      `gorm:"foreignKey:RecipientID" json:"-"`
	SkillOffered   Skill     `gorm:"foreignKey:SkillOfferedID" json:"-"`
	SkillWanted    Skill     `gorm:"foreignKey:SkillWantedID" json:"-"`
}

// ValidMatchStatus reports whether s is one of the enumerated states.
func ValidMatchStatus(s string) bool {
	return s == MatchPending || s == MatchAccepted || s == MatchRejected || s == MatchCompleted
}

// CanTransition reports whether a match may move from one status to
// another. Terminal states have no outgoing transitions.
func CanTransition(from, to string) bool {
	switch from {
	case MatchPending:
		return to == MatchAccepted || to == MatchRejected
	case MatchAccepted:
		return to == MatchCompleted
	default:
		return false
	}
}

// IsParticipant reports whether userID is one of the two match parties.
func (m *Match) IsParticipant(userID uuid.UUID) bool {
	return m.RequesterID == userID || m.RecipientID == userID
}

// OtherParty returns the counterpart of userID in the match. The caller
// must already have checked IsParticipant.
func (m *Match) OtherParty(userID uuid.UUID) uuid.UUID {
	if m.RequesterID == userID {
		return m.RecipientID
	}
	return m.RequesterID
}
