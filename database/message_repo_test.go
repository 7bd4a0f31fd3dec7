package database

import (
	"testing"

	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func TestMessageRepo_MarkRead(t *testing.T) {
	repo := NewMessageRepo(newTestDB(t))

	message := &models.ContactMessage{Name: "Visitor", Email: "v@example.com", Message: "Hello"}
	require.NoError(t, repo.Add(message))
	require.False(t, message.Read)

	unread, err := repo.CountUnread()
	require.NoError(t, err)
	require.EqualValues(t, 1, unread)

	require.NoError(t, repo.MarkRead(message.ID))

	unread, err = repo.CountUnread()
	require.NoError(t, err)
	require.Zero(t, unread)

	got, err := repo.FindByID(message.ID)
	require.NoError(t, err)
	require.True(t, got.Read)
}

func TestMessageRepo_Delete(t *testing.T) {
	repo := NewMessageRepo(newTestDB(t))

	message := &models.ContactMessage{Name: "Visitor", Email: "v@example.com", Message: "Hello"}
	require.NoError(t, repo.Add(message))
	require.NoError(t, repo.Delete(message.ID))

	got, err := repo.FindByID(message.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}
