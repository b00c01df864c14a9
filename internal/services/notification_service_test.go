package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenthub_backend/internal/models"
	"agenthub_backend/pkg/apperrors"
)

func seedNotifications(t *testing.T, repo *fakeNotificationRepo, userID string, count int) []string {
	t.Helper()
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n := &models.Notification{UserID: userID, Type: "status_change", Message: "update"}
		require.NoError(t, repo.Create(n))
		ids = append(ids, n.ID)
	}
	return ids
}

func TestMarkReadOnlyByRecipient(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)
	ids := seedNotifications(t, repo, "user-a", 1)

	err := service.MarkRead("user-b", ids[0])
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, service.MarkRead("user-a", ids[0]))

	count, err := service.UnreadCount("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkReadTwiceIsNoop(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)
	ids := seedNotifications(t, repo, "user-a", 1)

	require.NoError(t, service.MarkRead("user-a", ids[0]))
	require.NoError(t, service.MarkRead("user-a", ids[0]))
}

func TestMarkReadUnknownNotification(t *testing.T) {
	service := NewNotificationService(newFakeNotificationRepo())

	err := service.MarkRead("user-a", "missing")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestMarkAllReadAndUnreadCount(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)
	seedNotifications(t, repo, "user-a", 3)
	seedNotifications(t, repo, "user-b", 2)

	count, err := service.UnreadCount("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, service.MarkAllRead("user-a"))

	count, err = service.UnreadCount("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// other users keep theirs
	count, err = service.UnreadCount("user-b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestListMyNotifications(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)
	seedNotifications(t, repo, "user-a", 2)

	notifications, err := service.ListMyNotifications("user-a")
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}
