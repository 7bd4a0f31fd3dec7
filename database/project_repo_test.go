package database

import (
	"testing"

	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_AddAndFindByID(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{
		Title:       "Chat Application",
		Description: "Real-time messaging over websockets.",
		TechStack:   "Go, Postgres",
		Featured:    true,
	}
	require.NoError(t, repo.Add(project))
	require.NotZero(t, project.ID)

	got, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Chat Application", got.Title)
	require.True(t, got.Featured)
	require.False(t, got.CreatedAt.IsZero())
}

func TestProjectRepo_FindByIDMissing(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	got, err := repo.FindByID(42)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestProjectRepo_FindFeatured(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	require.NoError(t, repo.Add(&models.Project{Title: "Hidden", Description: "d"}))
	require.NoError(t, repo.Add(&models.Project{Title: "Shown", Description: "d", Featured: true}))

	featured, err := repo.FindFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	require.Equal(t, "Shown", featured[0].Title)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestProjectRepo_UpdateTogglesFeatured(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{Title: "Dashboard", Description: "d", Featured: true}
	require.NoError(t, repo.Add(project))

	project.Featured = false
	require.NoError(t, repo.Update(project))

	got, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.False(t, got.Featured)

	featured, err := repo.FindFeatured()
	require.NoError(t, err)
	require.Empty(t, featured)
}

func TestProjectRepo_Delete(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{Title: "Old", Description: "d"}
	require.NoError(t, repo.Add(project))
	require.NoError(t, repo.Delete(project.ID))

	got, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}
