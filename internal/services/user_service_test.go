package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/oguzsenna/skillswap-api/internal/apperr"
	"github.com/oguzsenna/skillswap-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", "Berlin")
	guitar := createSkill(t, db, "guitar", "music", alice)
	setOffered(t, db, alice, guitar)

	profile, err := svc.GetProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Name)
	require.Len(t, profile.SkillsOffered, 1)

	_, err = svc.GetProfile(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", "Berlin")
	bob := createUser(t, db, "bob", "")

	bio := "I teach guitar and want to learn sourdough."
	tags := []string{"guitar", "baking"}
	updated, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{
		Bio:       &bio,
		SkillTags: &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	// Untouched fields keep their values.
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "Berlin", updated.Location)

	var gotTags []string
	require.NoError(t, json.Unmarshal(updated.SkillTags, &gotTags))
	assert.Equal(t, tags, gotTags)

	t.Run("email collision conflicts", func(t *testing.T) {
		email := bob.Email
		_, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{Email: &email})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})
}

func TestUpdateProfileSkillSets(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", "")
	guitar := createSkill(t, db, "guitar", "music", alice)
	piano := createSkill(t, db, "piano", "music", alice)

	offered := []uuid.UUID{guitar.ID}
	wanted := []uuid.UUID{piano.ID}
	updated, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{
		SkillsOffered: &offered,
		SkillsWanted:  &wanted,
	})
	require.NoError(t, err)
	require.Len(t, updated.SkillsOffered, 1)
	require.Len(t, updated.SkillsWanted, 1)
	assert.Equal(t, guitar.ID, updated.SkillsOffered[0].ID)
	assert.Equal(t, piano.ID, updated.SkillsWanted[0].ID)

	t.Run("unknown skill reference", func(t *testing.T) {
		bad := []uuid.UUID{uuid.New()}
		_, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{SkillsOffered: &bad})
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("empty replacement clears the set", func(t *testing.T) {
		none := []uuid.UUID{}
		updated, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{SkillsWanted: &none})
		require.NoError(t, err)
		assert.Empty(t, updated.SkillsWanted)
	})
}
