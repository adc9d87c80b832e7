package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-layanan-publik/internal/domain"
)

func TestSessionRepository_CreateAndLookup(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	session := &domain.Session{
		UserID:    1,
		TokenHash: "abc123",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repos.Session.Create(ctx, session))
	assert.Equal(t, 1, session.ID)
	assert.False(t, session.CreatedAt.IsZero())

	found, err := repos.Session.GetByTokenHash(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.ID, found.ID)

	absent, err := repos.Session.GetByTokenHash(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestSessionRepository_LookupSkipsRevokedAndExpired(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	revoked := &domain.Session{UserID: 1, TokenHash: "revoked", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repos.Session.Create(ctx, revoked))
	require.NoError(t, repos.Session.Revoke(ctx, revoked.ID))

	expired := &domain.Session{UserID: 1, TokenHash: "expired", ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, repos.Session.Create(ctx, expired))

	found, err := repos.Session.GetByTokenHash(ctx, "revoked")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repos.Session.GetByTokenHash(ctx, "expired")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepository_RevokeAllForUser(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	mine := &domain.Session{UserID: 1, TokenHash: "mine", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repos.Session.Create(ctx, mine))
	theirs := &domain.Session{UserID: 2, TokenHash: "theirs", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repos.Session.Create(ctx, theirs))

	require.NoError(t, repos.Session.RevokeAllForUser(ctx, 1))

	found, err := repos.Session.GetByTokenHash(ctx, "mine")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repos.Session.GetByTokenHash(ctx, "theirs")
	require.NoError(t, err)
	require.NotNil(t, found, "other users keep their sessions")
}
