package database

import (
	"testing"

	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func TestBioRepo_GetEmpty(t *testing.T) {
	repo := NewBioRepo(newTestDB(t))

	bio, err := repo.Get()
	require.NoError(t, err)
	require.Nil(t, bio)
}

func TestBioRepo_UpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewBioRepo(db)

	bio := &models.Bio{Name: "Ayaskant Dash", AboutMe: "Developer", Email: "a@example.com"}
	require.NoError(t, repo.Upsert(bio))
	require.NotZero(t, bio.ID)

	bio.Email = "b@example.com"
	require.NoError(t, repo.Upsert(bio))

	got, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "b@example.com", got.Email)

	var count int64
	require.NoError(t, db.Model(&models.Bio{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
