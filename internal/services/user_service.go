package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserService handles profile reads and writes against the user directory.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns a user with both skill sets resolved.
func (s *UserService) GetProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("SkillsOffered").
		Preload("SkillsWanted").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store("failed to load user", err)
	}
	return &user, nil
}

// UpdateProfile applies the fields present in req and leaves the rest
// untouched. Skill set replacements resolve every referenced skill first.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Store("failed to load user", err)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			var existing models.User
			if err := s.db.Where("email = ? AND id <> ?", email, userID).First(&existing).Error; err == nil {
				return nil, apperr.Conflict("email already registered")
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Store("failed to hash password", err)
		}
		user.Password = string(hash)
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.SkillTags != nil {
		b, err := json.Marshal(*req.SkillTags)
		if err != nil {
			return nil, apperr.Validation("invalid skill tags")
		}
		user.SkillTags = datatypes.JSON(b)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperr.Store("failed to update user", err)
	}

	if req.SkillsOffered != nil {
		if err := s.replaceSkillSet(&user, "SkillsOffered", *req.SkillsOffered); err != nil {
			return nil, err
		}
	}
	if req.SkillsWanted != nil {
		if err := s.replaceSkillSet(&user, "SkillsWanted", *req.SkillsWanted); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(userID)
}

func (s *UserService) replaceSkillSet(user *models.User, assoc string, skillIDs []uuid.UUID) error {
	skills := make([]models.Skill, 0, len(skillIDs))
	if len(skillIDs) > 0 {
		if err := s.db.Where("id IN ?", skillIDs).Find(&skills).Error; err != nil {
			return apperr.Store("failed to load skills", err)
		}
		if len(skills) != len(skillIDs) {
			return apperr.NotFound("one or more skills not found")
		}
	}
	if err := s.db.Model(user).Association(assoc).Replace(skills); err != nil {
		return apperr.Store("failed to replace skill set", err)
	}
	return nil
}
