package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// trendingWindowDays is the trailing window for trending skills.
const trendingWindowDays = 30

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// CreateSkill adds a catalog entry. The creator reference is fixed here
// and never reassigned afterwards.
func (s *SkillService) CreateSkill(creatorID uuid.UUID, req *dto.CreateSkillRequest) (*models.Skill, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	var existing models.Skill
	if err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("skill %q already exists", name)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}

	skill := models.Skill{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  difficulty,
		CreatedByID: creatorID,
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, apperr.Store("failed to create skill", err)
	}
	return &skill, nil
}

func (s *SkillService) GetSkill(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("skill not found")
		}
		return nil, apperr.Store("failed to load skill", err)
	}
	return &skill, nil
}

// ListSkills returns a page of the catalog, newest first, optionally
// filtered by category and difficulty.
func (s *SkillService) ListSkills(category, difficulty string, page, limit int) (*dto.SkillListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := s.db.Model(&models.Skill{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Store("failed to count skills", err)
	}

	var skills []models.Skill
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&skills).Error
	if err != nil {
		return nil, apperr.Store("failed to list skills", err)
	}

	return &dto.SkillListResponse{
		Skills:      skills,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalSkills: total,
	}, nil
}

// Categories returns the distinct category names in the catalog.
func (s *SkillService) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Skill{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperr.Store("failed to load categories", err)
	}
	return categories, nil
}

// SearchSkills does a case-insensitive substring search over name,
// category and description, capped at 10 results.
func (s *SkillService) SearchSkills(query string) ([]models.Skill, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var skills []models.Skill
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern).
		Limit(10).
		Find(&skills).Error
	if err != nil {
		return nil, apperr.Store("failed to search skills", err)
	}
	return skills, nil
}

// UpdateSkill changes mutable fields. Only the creator may edit; the
// creator reference itself is immutable.
func (s *SkillService) UpdateSkill(skillID, callerID uuid.UUID, req *dto.UpdateSkillRequest) (*models.Skill, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	skill, err := s.GetSkill(skillID)
	if err != nil {
		return nil, err
	}
	if skill.CreatedByID != callerID {
		return nil, apperr.Forbidden("only the creator may edit this skill")
	}

	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Difficulty != nil {
		skill.Difficulty = *req.Difficulty
	}

	if err := s.db.Save(skill).Error; err != nil {
		return nil, apperr.Store("failed to update skill", err)
	}
	return skill, nil
}

func (s *SkillService) DeleteSkill(skillID, callerID uuid.UUID) error {
	skill, err := s.GetSkill(skillID)
	if err != nil {
		return err
	}
	if skill.CreatedByID != callerID {
		return apperr.Forbidden("only the creator may delete this skill")
	}
	if err := s.db.Delete(skill).Error; err != nil {
		return apperr.Store("failed to delete skill", err)
	}
	return nil
}

// TrendingSkills counts skill occurrences among matches created in the
// trailing window that reached accepted status. Each accepted match
// contributes both its offered and its wanted skill. Top 10 descending by
// count, ties broken by name.
func (s *SkillService) TrendingSkills(windowDays int) ([]dto.TrendingSkill, error) {
	if windowDays <= 0 {
		windowDays = trendingWindowDays
	}
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	var matches []models.Match
	err := s.db.
		Where("created_at >= ? AND status = ?", cutoff, models.MatchAccepted).
		Find(&matches).Error
	if err != nil {
		return nil, apperr.Store("failed to load matches", err)
	}

	counts := make(map[uuid.UUID]int)
	for _, m := range matches {
		counts[m.SkillOfferedID]++
		counts[m.SkillWantedID]++
	}
	if len(counts) == 0 {
		return []dto.TrendingSkill{}, nil
	}

	ids := make([]uuid.UUID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	var skills []models.Skill
	if err := s.db.Where("id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, apperr.Store("failed to load skills", err)
	}

	trending := make([]dto.TrendingSkill, 0, len(skills))
	for _, sk := range skills {
		trending = append(trending, dto.TrendingSkill{
			ID:          sk.ID,
			Name:        sk.Name,
			Description: sk.Description,
			Category:    sk.Category,
			MatchCount:  counts[sk.ID],
		})
	}

	sort.Slice(trending, func(i, j int) bool {
		if trending[i].MatchCount != trending[j].MatchCount {
			return trending[i].MatchCount > trending[j].MatchCount
		}
		return trending[i].Name < trending[j].Name
	})

	if len(trending) > 10 {
		trending = trending[:10]
	}
	return trending, nil
}
