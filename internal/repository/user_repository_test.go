package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

func newTestRepos() *Repositories {
	return NewRepositories(store.NewPortal())
}

func TestUserRepository_CreateAndLookups(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	user := &domain.User{
		Username: "sitirahma",
		NIK:      "3201234567890001",
		FullName: "Siti Rahma",
	}
	require.NoError(t, repos.User.Create(ctx, user))
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "id", user.Language, "language defaults to id")

	byID, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "sitirahma", byID.Username)

	byUsername, err := repos.User.GetByUsername(ctx, "sitirahma")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, user.ID, byUsername.ID)

	byNIK, err := repos.User.GetByNIK(ctx, "3201234567890001")
	require.NoError(t, err)
	require.NotNil(t, byNIK)
	assert.Equal(t, user.ID, byNIK.ID)

	absent, err := repos.User.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserRepository_CreateRejectsDuplicates(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	first := &domain.User{Username: "sitirahma", NIK: "3201234567890001", FullName: "Siti Rahma"}
	require.NoError(t, repos.User.Create(ctx, first))

	dupUsername := &domain.User{Username: "sitirahma", NIK: "3201234567890002", FullName: "Siti Lain"}
	assert.ErrorIs(t, repos.User.Create(ctx, dupUsername), domain.ErrUsernameTaken)

	dupNIK := &domain.User{Username: "sitilain", NIK: "3201234567890001", FullName: "Siti Lain"}
	assert.ErrorIs(t, repos.User.Create(ctx, dupNIK), domain.ErrNIKRegistered)
}

func TestUserRepository_Update(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	user := &domain.User{Username: "sitirahma", NIK: "3201234567890001", FullName: "Siti Rahma"}
	require.NoError(t, repos.User.Create(ctx, user))

	user.Address = "Jl. Sudirman No. 5, Bandung"
	require.NoError(t, repos.User.Update(ctx, user))

	stored, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jl. Sudirman No. 5, Bandung", stored.Address)
	assert.Equal(t, "sitirahma", stored.Username, "untouched fields are preserved")

	missing := &domain.User{ID: 99, Username: "ghost", NIK: "0000000000000000"}
	assert.ErrorIs(t, repos.User.Update(ctx, missing), domain.ErrUserNotFound)
}

func TestUserRepository_UpdateRejectsTakenUsername(t *testing.T) {
	repos := newTestRepos()
	ctx := context.Background()

	first := &domain.User{Username: "sitirahma", NIK: "3201234567890001", FullName: "Siti Rahma"}
	require.NoError(t, repos.User.Create(ctx, first))
	second := &domain.User{Username: "budisantoso", NIK: "3201234567890002", FullName: "Budi Santoso"}
	require.NoError(t, repos.User.Create(ctx, second))

	second.Username = "sitirahma"
	assert.ErrorIs(t, repos.User.Update(ctx, second), domain.ErrUsernameTaken)

	// Updating yourself without changing username is fine.
	first.Phone = "081200000000"
	assert.NoError(t, repos.User.Update(ctx, first))
}
