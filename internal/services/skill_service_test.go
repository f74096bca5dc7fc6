package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/oguzsenna/skillswap-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSkill(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)

	alice := createUser(t, db, "alice", "")

	skill, err := svc.CreateSkill(alice.ID, &dto.CreateSkillRequest{
		Name:        "Woodworking",
		Description: "Hand tool joinery basics",
		Category:    "crafts",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyBeginner, skill.Difficulty)
	assert.Equal(t, alice.ID, skill.CreatedByID)

	t.Run("duplicate name conflicts case-insensitively", func(t *testing.T) {
		_, err := svc.CreateSkill(alice.ID, &dto.CreateSkillRequest{
			Name:        "woodworking",
			Description: "also joinery",
			Category:    "crafts",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("difficulty must be a known level", func(t *testing.T) {
		_, err := svc.CreateSkill(alice.ID, &dto.CreateSkillRequest{
			Name:        "Welding",
			Description: "MIG basics",
			Category:    "crafts",
			Difficulty:  "Expert",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestUpdateAndDeleteSkillCreatorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")
	skill := createSkill(t, db, "guitar", "music", alice)

	newDesc := "updated description"
	_, err := svc.UpdateSkill(skill.ID, bob.ID, &dto.UpdateSkillRequest{Description: &newDesc})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	updated, err := svc.UpdateSkill(skill.ID, alice.ID, &dto.UpdateSkillRequest{Description: &newDesc})
	require.NoError(t, err)
	assert.Equal(t, newDesc, updated.Description)
	// Creator never changes.
	assert.Equal(t, alice.ID, updated.CreatedByID)

	require.Error(t, svc.DeleteSkill(skill.ID, bob.ID))
	require.NoError(t, svc.DeleteSkill(skill.ID, alice.ID))

	_, err = svc.GetSkill(skill.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListSkillsFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)

	alice := createUser(t, db, "alice", "")
	for i := 0; i < 15; i++ {
		category := "music"
		if i%3 == 0 {
			category = "food"
		}
		createSkill(t, db, fmt.Sprintf("skill%d", i), category, alice)
	}

	page1, err := svc.ListSkills("", "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Skills, 10)
	assert.Equal(t, int64(15), page1.TotalSkills)
	assert.Equal(t, 2, page1.TotalPages)

	food, err := svc.ListSkills("food", "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, food.Skills, 5)
	for _, sk := range food.Skills {
		assert.Equal(t, "food", sk.Category)
	}
}

func TestCategoriesAndSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)

	alice := createUser(t, db, "alice", "")
	createSkill(t, db, "guitar", "music", alice)
	createSkill(t, db, "piano", "music", alice)
	createSkill(t, db, "cooking", "food", alice)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "music"}, categories)

	results, err := svc.SearchSkills("GUITAR")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Name, "guitar")

	_, err = svc.SearchSkills("  ")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTrendingSkills(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")
	guitar := createSkill(t, db, "guitar", "music", alice)
	piano := createSkill(t, db, "piano", "music", alice)
	cooking := createSkill(t, db, "cooking", "food", alice)

	now := time.Now()
	// guitar appears in two recent accepted matches (offered both times),
	// piano in one, cooking only in matches that must not count.
	createMatch(t, db, alice, bob, guitar, piano, models.MatchAccepted, now.Add(-24*time.Hour))
	createMatch(t, db, bob, alice, guitar, piano, models.MatchAccepted, now.Add(-48*time.Hour))
	createMatch(t, db, alice, bob, cooking, cooking, models.MatchPending, now)
	createMatch(t, db, alice, bob, cooking, cooking, models.MatchAccepted, now.AddDate(0, 0, -40))

	trending, err := svc.TrendingSkills(30)
	require.NoError(t, err)
	require.Len(t, trending, 2)

	assert.Contains(t, trending[0].Name, "guitar")
	assert.Equal(t, 2, trending[0].MatchCount)
	assert.Contains(t, trending[1].Name, "piano")
	assert.Equal(t, 2, trending[1].MatchCount)

	// Strictly non-increasing by count.
	for i := 1; i < len(trending); i++ {
		assert.GreaterOrEqual(t, trending[i-1].MatchCount, trending[i].MatchCount)
	}
}

func TestTrendingSkillsEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)

	trending, err := svc.TrendingSkills(30)
	require.NoError(t, err)
	assert.Empty(t, trending)
}
