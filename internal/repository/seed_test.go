package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

func seededRepos(t *testing.T) (*store.Portal, *Repositories) {
	t.Helper()
	portal := store.NewPortal()
	repos := NewRepositories(portal)
	require.NoError(t, Seed(context.Background(), portal, repos))
	return portal, repos
}

func TestSeed_PopulatesStartupDataset(t *testing.T) {
	portal, repos := seededRepos(t)
	ctx := context.Background()

	assert.Equal(t, 1, portal.Users.Len())
	assert.Equal(t, 4, portal.Categories.Len())
	assert.Equal(t, 7, portal.Services.Len())
	assert.Equal(t, 3, portal.Applications.Len())
	assert.Equal(t, 3, portal.Notifications.Len())

	user, err := repos.User.GetByUsername(ctx, "budisantoso")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "1234567890123456", user.NIK)
	assert.Equal(t, "Budi Santoso", user.FullName)
	assert.Equal(t, "id", user.Language)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestSeed_IsIdempotent(t *testing.T) {
	portal, repos := seededRepos(t)

	require.NoError(t, Seed(context.Background(), portal, repos))

	assert.Equal(t, 1, portal.Users.Len())
	assert.Equal(t, 7, portal.Services.Len())
	assert.Equal(t, 3, portal.Applications.Len())
}

func TestSeed_ServiceCatalog(t *testing.T) {
	_, repos := seededRepos(t)
	ctx := context.Background()

	kependudukan, err := repos.Service.GetByCategory(ctx, "Kependudukan")
	require.NoError(t, err)
	names := make([]string, 0, len(kependudukan))
	for _, s := range kependudukan {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"e-KTP", "Kartu Keluarga", "Bantuan Sosial"}, names)

	featured, err := repos.Service.GetFeatured(ctx)
	require.NoError(t, err)
	names = names[:0]
	for _, s := range featured {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"e-KTP", "BPJS Kesehatan", "Perizinan Usaha"}, names)
}

func TestSeed_ApplicationsAndNotifications(t *testing.T) {
	_, repos := seededRepos(t)
	ctx := context.Background()

	apps, err := repos.Application.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, domain.StatusProcessing, apps[0].Status)
	assert.Equal(t, domain.StatusCompleted, apps[1].Status)
	assert.Equal(t, domain.StatusRevision, apps[2].Status)
	for _, app := range apps {
		assert.Regexp(t, applicationNumberPattern, app.ApplicationNumber)
	}

	notifs, err := repos.Notification.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifs, 3)
	for _, n := range notifs {
		assert.False(t, n.IsRead)
	}

	unread, err := repos.Notification.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, unread)
}
