package database

import (
	"testing"

	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func TestLetsTalkRepo_FindActiveFiltersInactive(t *testing.T) {
	repo := NewLetsTalkRepo(newTestDB(t))

	require.NoError(t, repo.Add(&models.LetsTalk{Title: "Email", IsActive: true, DisplayOrder: 2}))
	require.NoError(t, repo.Add(&models.LetsTalk{Title: "Retired", IsActive: false, DisplayOrder: 1}))
	require.NoError(t, repo.Add(&models.LetsTalk{Title: "Phone", IsActive: true, DisplayOrder: 1}))

	active, err := repo.FindActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "Phone", active[0].Title)
	require.Equal(t, "Email", active[1].Title)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
}
