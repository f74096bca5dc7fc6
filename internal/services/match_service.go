package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// maxRecommendations caps skill-compatibility results.
const maxRecommendations = 10

// MatchService owns the swap-request lifecycle and the compatibility
// recommendation logic.
type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{db: db}
}

// CreateMatchRequest opens a pending swap request from requester to
// recipient. A pending request already open on the same ordered pair is
// rejected as a duplicate.
func (s *MatchService) CreateMatchRequest(requesterID uuid.UUID, req *dto.CreateMatchRequest) (*models.Match, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if requesterID == req.RecipientID {
		return nil, apperr.Validation("cannot request a match with yourself")
	}

	var recipient models.User
	if err := s.db.First(&recipient, "id = ?", req.RecipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("recipient user not found")
		}
		return nil, apperr.Store("failed to load recipient", err)
	}

	var skillCount int64
	if err := s.db.Model(&models.Skill{}).
		Where("id IN ?", []uuid.UUID{req.SkillOfferedID, req.SkillWantedID}).
		Count(&skillCount).Error; err != nil {
		return nil, apperr.Store("failed to load skills", err)
	}
	wantDistinct := int64(2)
	if req.SkillOfferedID == req.SkillWantedID {
		wantDistinct = 1
	}
	if skillCount != wantDistinct {
		return nil, apperr.NotFound("skill not found")
	}

	var existing models.Match
	err := s.db.Where("requester_id = ? AND recipient_id = ? AND status = ?",
		requesterID, req.RecipientID, models.MatchPending).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("a pending match request with this user already exists")
	}

	match := models.Match{
		ID:             uuid.New(),
		RequesterID:    requesterID,
		RecipientID:    req.RecipientID,
		SkillOfferedID: req.SkillOfferedID,
		SkillWantedID:  req.SkillWantedID,
		Status:         models.MatchPending,
		Message:        req.Message,
	}

	if err := s.db.Create(&match).Error; err != nil {
		return nil, apperr.Store("failed to create match", err)
	}

	return &match, nil
}

// ListMatchesForUser returns every match where the user is requester or
// recipient. No ordering is guaranteed.
func (s *MatchService) ListMatchesForUser(userID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.
		Where("requester_id = ? OR recipient_id = ?", userID, userID).
		Find(&matches).Error
	if err != nil {
		return nil, apperr.Store("failed to load matches", err)
	}
	return matches, nil
}

// UpdateMatchStatus transitions a match. Only a participant may do it, and
// only along the legal edges: pending to accepted or rejected, accepted to
// completed. The write carries the old status in its predicate so two
// racing updates cannot both win.
func (s *MatchService) UpdateMatchStatus(matchID, callerID uuid.UUID, newStatus string) (*models.Match, error) {
	if !models.ValidMatchStatus(newStatus) {
		return nil, apperr.Validation("unknown match status %q", newStatus)
	}

	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("match not found")
		}
		return nil, apperr.Store("failed to load match", err)
	}

	if !match.IsParticipant(callerID) {
		return nil, apperr.Forbidden("only a match participant may update its status")
	}
	if !models.CanTransition(match.Status, newStatus) {
		return nil, apperr.InvalidState("cannot move match from %s to %s", match.Status, newStatus)
	}

	res := s.db.Model(&models.Match{}).
		Where("id = ? AND status = ?", matchID, match.Status).
		Update("status", newStatus)
	if res.Error != nil {
		return nil, apperr.Store("failed to update match", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.Conflict("match was updated concurrently")
	}

	match.Status = newStatus
	return &match, nil
}

// FindCompatibleUsers recommends candidates whose offered skills overlap
// the caller's wanted skills. Score is the size of the true set
// intersection; results are descending by score with user ID as the
// deterministic tiebreak, capped at 10.
func (s *MatchService) FindCompatibleUsers(userID uuid.UUID) ([]dto.CompatibleUser, error) {
	var me models.User
	if err := s.db.Preload("SkillsWanted").First(&me, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store("failed to load user", err)
	}

	if len(me.SkillsWanted) == 0 {
		return []dto.CompatibleUser{}, nil
	}

	wanted := make(map[uuid.UUID]struct{}, len(me.SkillsWanted))
	wantedIDs := make([]uuid.UUID, 0, len(me.SkillsWanted))
	for _, sk := range me.SkillsWanted {
		wanted[sk.ID] = struct{}{}
		wantedIDs = append(wantedIDs, sk.ID)
	}

	var candidates []models.User
	err := s.db.
		Distinct("users.*").
		Joins("JOIN user_skills_offered uso ON uso.user_id = users.id").
		Where("uso.skill_id IN ?", wantedIDs).
		Where("users.id <> ?", userID).
		Preload("SkillsOffered").
		Find(&candidates).Error
	if err != nil {
		return nil, apperr.Store("failed to load candidates", err)
	}

	results := make([]dto.CompatibleUser, 0, len(candidates))
	for _, cand := range candidates {
		score := 0
		for _, sk := range cand.SkillsOffered {
			if _, ok := wanted[sk.ID]; ok {
				score++
			}
		}
		if score == 0 {
			continue
		}
		results = append(results, dto.CompatibleUser{
			ID:            cand.ID,
			Name:          cand.Name,
			Email:         cand.Email,
			Location:      cand.Location,
			MatchScore:    score,
			SkillsOffered: cand.SkillsOffered,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].ID.String() < results[j].ID.String()
	})

	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}
	return results, nil
}

// FindMutualMatches is the location-bound companion matcher: candidates in
// the same location where each side offers something the other wants.
func (s *MatchService) FindMutualMatches(userID uuid.UUID) ([]models.User, error) {
	var me models.User
	err := s.db.
		Preload("SkillsOffered").
		Preload("SkillsWanted").
		First(&me, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store("failed to load user", err)
	}

	offered := skillIDSet(me.SkillsOffered)
	wanted := skillIDSet(me.SkillsWanted)

	var candidates []models.User
	err = s.db.
		Where("location = ? AND id <> ?", me.Location, userID).
		Preload("SkillsOffered").
		Preload("SkillsWanted").
		Find(&candidates).Error
	if err != nil {
		return nil, apperr.Store("failed to load candidates", err)
	}

	matches := make([]models.User, 0, len(candidates))
	for _, cand := range candidates {
		if intersects(skillIDSet(cand.SkillsOffered), wanted) &&
			intersects(skillIDSet(cand.SkillsWanted), offered) {
			matches = append(matches, cand)
		}
	}
	return matches, nil
}

func skillIDSet(skills []models.Skill) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(skills))
	for _, sk := range skills {
		set[sk.ID] = struct{}{}
	}
	return set
}

func intersects(a, b map[uuid.UUID]struct{}) bool {
	for id := range a {
		if _, ok := b[id]; ok {
			return true
		}
	}
	return false
}
