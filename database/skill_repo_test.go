package database

import (
	"testing"

	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func TestSkillRepo_FindAllOrdersByDisplayOrder(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))

	require.NoError(t, repo.Add(&models.Skill{SkillName: "Docker", ProficiencyLevel: 65, DisplayOrder: 2}))
	require.NoError(t, repo.Add(&models.Skill{SkillName: "Python", ProficiencyLevel: 85, DisplayOrder: 1}))
	require.NoError(t, repo.Add(&models.Skill{SkillName: "Go", ProficiencyLevel: 75, DisplayOrder: 1}))

	skills, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, skills, 3)

	// Equal display orders keep insertion order.
	require.Equal(t, "Python", skills[0].SkillName)
	require.Equal(t, "Go", skills[1].SkillName)
	require.Equal(t, "Docker", skills[2].SkillName)
}

func TestSkillRepo_UpdatePartial(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))

	skill := &models.Skill{SkillName: "React", ProficiencyLevel: 70, Category: "Framework"}
	require.NoError(t, repo.Add(skill))

	skill.ProficiencyLevel = 80
	require.NoError(t, repo.Update(skill))

	got, err := repo.FindByID(skill.ID)
	require.NoError(t, err)
	require.Equal(t, 80, got.ProficiencyLevel)
	require.Equal(t, "Framework", got.Category)
}

func TestSkillRepo_DeleteMissingIsNoop(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))

	require.NoError(t, repo.Delete(99))

	count, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}
