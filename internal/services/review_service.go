package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// ReviewService handles review creation and the received-reviews
// aggregates.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview records feedback on a completed match. The reviewer must
// be a participant, the match completed, and the (match, reviewer) pair
// unreviewed; the recipient is always the other party.
func (s *ReviewService) CreateReview(reviewerID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var match models.Match
	if err := s.db.First(&match, "id = ?", req.MatchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("match not found")
		}
		return nil, apperr.Store("failed to load match", err)
	}

	if match.Status != models.MatchCompleted {
		return nil, apperr.InvalidState("can only review completed matches")
	}
	if !match.IsParticipant(reviewerID) {
		return nil, apperr.Forbidden("not authorized to review this match")
	}

	var skill models.Skill
	if err := s.db.First(&skill, "id = ?", req.SkillRatedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("rated skill not found")
		}
		return nil, apperr.Store("failed to load skill", err)
	}

	var existing models.Review
	err := s.db.Where("match_id = ? AND reviewer_id = ?", req.MatchID, reviewerID).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("you have already reviewed this match")
	}

	review := models.Review{
		ID:           uuid.New(),
		MatchID:      req.MatchID,
		ReviewerID:   reviewerID,
		RecipientID:  match.OtherParty(reviewerID),
		Rating:       req.Rating,
		Comment:      req.Comment,
		SkillRatedID: req.SkillRatedID,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, apperr.Store("failed to create review", err)
	}
	return &review, nil
}

// ReceivedReviewsSummary aggregates the reviews a user has received:
// overall average to one decimal place (0 when empty), plus per-skill
// groups keyed by the rated skill's ID, each folding its own average as
// reviews are added.
func (s *ReviewService) ReceivedReviewsSummary(userID uuid.UUID) (*dto.ReceivedReviewsResponse, error) {
	var reviews []models.Review
	err := s.db.
		Preload("SkillRated").
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, apperr.Store("failed to load reviews", err)
	}

	resp := &dto.ReceivedReviewsResponse{
		TotalReviews:   len(reviews),
		ReviewsBySkill: make(map[string]*dto.SkillReviewGroup),
		Reviews:        reviews,
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating

		key := r.SkillRatedID.String()
		group, ok := resp.ReviewsBySkill[key]
		if !ok {
			group = &dto.SkillReviewGroup{Skill: r.SkillRated}
			resp.ReviewsBySkill[key] = group
		}
		group.Reviews = append(group.Reviews, r)

		sum := 0
		for _, gr := range group.Reviews {
			sum += gr.Rating
		}
		group.AverageRating = round1(float64(sum) / float64(len(group.Reviews)))
	}

	if len(reviews) > 0 {
		resp.AverageRating = round1(float64(total) / float64(len(reviews)))
	}
	return resp, nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
