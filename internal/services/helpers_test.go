package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/config"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh connection would mean a fresh in-memory database, so pin
	// the pool to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Skill{},
		&models.Match{},
		&models.Review{},
		&models.Message{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

var userSeq int

func createUser(t *testing.T, db *gorm.DB, name, location string) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    fmt.Sprintf("%s%d@example.com", name, userSeq),
		Password: "x",
		Location: location,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

var skillSeq int

func createSkill(t *testing.T, db *gorm.DB, name, category string, creator *models.User) *models.Skill {
	t.Helper()
	skillSeq++
	skill := &models.Skill{
		ID:          uuid.New(),
		Name:        fmt.Sprintf("%s-%d", name, skillSeq),
		Description: "a test skill",
		Category:    category,
		Difficulty:  models.DifficultyBeginner,
		CreatedByID: creator.ID,
	}
	require.NoError(t, db.Create(skill).Error)
	return skill
}

func setOffered(t *testing.T, db *gorm.DB, user *models.User, skills ...*models.Skill) {
	t.Helper()
	list := make([]models.Skill, 0, len(skills))
	for _, s := range skills {
		list = append(list, *s)
	}
	require.NoError(t, db.Model(user).Association("SkillsOffered").Replace(list))
}

func setWanted(t *testing.T, db *gorm.DB, user *models.User, skills ...*models.Skill) {
	t.Helper()
	list := make([]models.Skill, 0, len(skills))
	for _, s := range skills {
		list = append(list, *s)
	}
	require.NoError(t, db.Model(user).Association("SkillsWanted").Replace(list))
}

func createMatch(t *testing.T, db *gorm.DB, requester, recipient *models.User, offered, wanted *models.Skill, status string, createdAt time.Time) *models.Match {
	t.Helper()
	match := &models.Match{
		ID:             uuid.New(),
		RequesterID:    requester.ID,
		RecipientID:    recipient.ID,
		SkillOfferedID: offered.ID,
		SkillWantedID:  wanted.ID,
		Status:         status,
		CreatedAt:      createdAt,
	}
	require.NoError(t, db.Create(match).Error)
	return match
}

func createMessage(t *testing.T, db *gorm.DB, sender, receiver *models.User, content string, read bool, at time.Time) *models.Message {
	t.Helper()
	msg := &models.Message{
		ID:         uuid.New(),
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
		Read:       read,
		CreatedAt:  at,
	}
	require.NoError(t, db.Create(msg).Error)
	return msg
}
