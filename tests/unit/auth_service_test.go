package unit_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portal-layanan-publik/internal/config"
	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/service/auth"
	"portal-layanan-publik/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "unit-test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		Username:     "budisantoso",
		PasswordHash: string(hash),
		FullName:     "Budi Santoso",
		Language:     "id",
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

		stored := hashedUser(t, "password123")
		mockUserRepo.On("GetByUsername", ctx, "budisantoso").Return(stored, nil).Once()
		mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Session")).
			Run(func(args mock.Arguments) {
				session := args.Get(1).(*domain.Session)
				session.ID = 1
				session.CreatedAt = time.Now()
			}).Return(nil).Once()

		user, tokens, err := svc.Login(ctx, domain.LoginInput{
			Username: "budisantoso",
			Password: "password123",
		}, "test-agent", "127.0.0.1")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "budisantoso", user.Username)
		require.NotNil(t, tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)

		mockUserRepo.AssertExpectations(t)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

		mockUserRepo.On("GetByUsername", ctx, "budisantoso").Return(hashedUser(t, "password123"), nil).Once()

		_, tokens, err := svc.Login(ctx, domain.LoginInput{
			Username: "budisantoso",
			Password: "salah",
		}, "", "")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, tokens)
		mockSessionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown User", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

		mockUserRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil).Once()

		_, tokens, err := svc.Login(ctx, domain.LoginInput{
			Username: "ghost",
			Password: "apapun",
		}, "", "")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, tokens)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(mocks.UserRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

	stored := hashedUser(t, "password123")
	mockUserRepo.On("GetByUsername", ctx, "budisantoso").Return(stored, nil).Once()
	mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil).Once()

	_, tokens, err := svc.Login(ctx, domain.LoginInput{
		Username: "budisantoso",
		Password: "password123",
	}, "", "")
	require.NoError(t, err)

	t.Run("Round Trip", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(tokens.AccessToken)

		assert.NoError(t, err)
		require.NotNil(t, claims)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "budisantoso", claims.Username)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "a-different-secret"
		otherSvc := auth.NewService(mockUserRepo, mockSessionRepo, otherCfg)

		claims, err := otherSvc.ValidateAccessToken(tokens.AccessToken)

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotates Session", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

		stored := hashedUser(t, "password123")
		session := &domain.Session{
			ID:        1,
			UserID:    1,
			UserAgent: "test-agent",
			IPAddress: "127.0.0.1",
			ExpiresAt: time.Now().Add(time.Hour),
		}

		mockSessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
		mockUserRepo.On("GetByID", ctx, 1).Return(stored, nil).Once()
		mockSessionRepo.On("Revoke", ctx, 1).Return(nil).Once()
		mockSessionRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Session) bool {
			return s.UserID == 1 && s.UserAgent == "test-agent"
		})).Return(nil).Once()

		tokens, err := svc.RefreshToken(ctx, "deadbeef")

		assert.NoError(t, err)
		require.NotNil(t, tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEqual(t, "deadbeef", tokens.RefreshToken)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("Unknown Token", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

		mockSessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()

		tokens, err := svc.RefreshToken(ctx, "expired-or-bogus")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, tokens)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(mocks.UserRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(mockUserRepo, mockSessionRepo, testAuthConfig())

	mockSessionRepo.On("RevokeAllForUser", ctx, 1).Return(nil).Once()

	assert.NoError(t, svc.Logout(ctx, 1))
	mockSessionRepo.AssertExpectations(t)
}
