package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-layanan-publik/internal/domain"
)

func TestNotificationRepository_CreateStartsUnread(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	notif := &domain.Notification{
		UserID:  1,
		Title:   "Permohonan diterima",
		Message: "Permohonan Anda telah diterima.",
		Type:    domain.NotifInfo,
		IsRead:  true, // ignored: new notifications always start unread
	}
	require.NoError(t, repos.Notification.Create(ctx, notif))

	assert.Equal(t, 1, notif.ID)
	assert.False(t, notif.IsRead)
	assert.False(t, notif.CreatedAt.IsZero())

	unread, err := repos.Notification.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestNotificationRepository_ListByUserNewestFirst(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	for _, title := range []string{"pertama", "kedua", "ketiga"} {
		notif := &domain.Notification{UserID: 1, Title: title, Type: domain.NotifInfo}
		require.NoError(t, repos.Notification.Create(ctx, notif))
		time.Sleep(2 * time.Millisecond)
	}
	other := &domain.Notification{UserID: 2, Title: "milik orang lain", Type: domain.NotifInfo}
	require.NoError(t, repos.Notification.Create(ctx, other))

	notifs, err := repos.Notification.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifs, 3)
	assert.Equal(t, "ketiga", notifs[0].Title)
	assert.Equal(t, "kedua", notifs[1].Title)
	assert.Equal(t, "pertama", notifs[2].Title)
}

func TestNotificationRepository_ListByUserBreaksTimestampTiesByID(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	// Created back to back, timestamps may collide at clock granularity;
	// either way the newer id must come first.
	for i := 0; i < 5; i++ {
		notif := &domain.Notification{UserID: 1, Title: "n", Type: domain.NotifInfo}
		require.NoError(t, repos.Notification.Create(ctx, notif))
	}

	notifs, err := repos.Notification.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifs, 5)
	for i := 1; i < len(notifs); i++ {
		assert.Greater(t, notifs[i-1].ID, notifs[i].ID)
	}
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	notif := &domain.Notification{UserID: 1, Title: "baca saya", Type: domain.NotifInfo}
	require.NoError(t, repos.Notification.Create(ctx, notif))

	read, err := repos.Notification.MarkAsRead(ctx, notif.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := repos.Notification.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	_, err = repos.Notification.MarkAsRead(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		notif := &domain.Notification{UserID: 1, Title: "n", Type: domain.NotifInfo}
		require.NoError(t, repos.Notification.Create(ctx, notif))
	}
	other := &domain.Notification{UserID: 2, Title: "tetap belum dibaca", Type: domain.NotifInfo}
	require.NoError(t, repos.Notification.Create(ctx, other))

	require.NoError(t, repos.Notification.MarkAllAsRead(ctx, 1))

	unread, err := repos.Notification.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	otherUnread, err := repos.Notification.CountUnread(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, otherUnread, "other users are untouched")

	// Nothing left unread: still not a failure.
	assert.NoError(t, repos.Notification.MarkAllAsRead(ctx, 1))
}
