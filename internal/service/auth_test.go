package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/oauth"
)

type authMocks struct {
	users    *MockUserRepo
	profiles *MockProfileRepo
	sessions *MockSessionRepo
	tokens   *MockTokenManager
	google   *MockGoogleProvider
}

func newAuthService() (AuthService, *authMocks) {
	m := &authMocks{
		users:    new(MockUserRepo),
		profiles: new(MockProfileRepo),
		sessions: new(MockSessionRepo),
		tokens:   new(MockTokenManager),
		google:   new(MockGoogleProvider),
	}
	return NewAuthService(m.users, m.profiles, m.sessions, m.tokens, m.google), m
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newAuthService()

		m.users.On("GetByEmail", ctx, "kari@example.no").Return(nil, domain.ErrNotFound)
		m.users.On("Create", ctx, mock.AnythingOfType("*domain.LocalUser")).Return(nil)
		m.profiles.On("Create", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil)
		m.tokens.On("GenerateToken", mock.AnythingOfType("string"), "kari@example.no", "Kari", domain.AuthTypeLocal).
			Return("token-abc", nil)

		user, token, err := svc.Register(ctx, " Kari@Example.NO ", "hemmelig123", "Kari")
		require.NoError(t, err)
		assert.Equal(t, "token-abc", token)
		// Email is stored lowercased.
		assert.Equal(t, "kari@example.no", user.Email)
		assert.NotEmpty(t, user.ID)
		// The hash must verify and never equal the plaintext.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hemmelig123")))
		m.users.AssertExpectations(t)
		m.profiles.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, m := newAuthService()

		m.users.On("GetByEmail", ctx, "kari@example.no").Return(&domain.LocalUser{ID: "u1"}, nil)

		_, _, err := svc.Register(ctx, "kari@example.no", "hemmelig123", "Kari")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		m.users.AssertNotCalled(t, "Create")
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc, _ := newAuthService()

		_, _, err := svc.Register(ctx, "kari@example.no", "kort", "Kari")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hemmelig123"), bcrypt.MinCost)
	stored := &domain.LocalUser{ID: "u1", Email: "kari@example.no", PasswordHash: string(hash), Name: "Kari"}

	t.Run("Success", func(t *testing.T) {
		svc, m := newAuthService()

		m.users.On("GetByEmail", ctx, "kari@example.no").Return(stored, nil)
		m.tokens.On("GenerateToken", "u1", "kari@example.no", "Kari", domain.AuthTypeLocal).Return("token-abc", nil)

		user, token, err := svc.Login(ctx, "kari@example.no", "hemmelig123")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "token-abc", token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, m := newAuthService()

		m.users.On("GetByEmail", ctx, "kari@example.no").Return(stored, nil)

		_, _, err := svc.Login(ctx, "kari@example.no", "feilpassord")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, m := newAuthService()

		m.users.On("GetByEmail", ctx, "ingen@example.no").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "ingen@example.no", "hemmelig123")
		// Same generic failure as a wrong password.
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_GoogleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstLoginProvisionsProfile", func(t *testing.T) {
		svc, m := newAuthService()

		m.google.On("Exchange", ctx, "code-1").Return(&oauth.UserInfo{
			Sub: "google-sub-1", Email: "Ola@Example.no", Name: "Ola",
		}, nil)
		m.profiles.On("GetByUserID", ctx, "google-sub-1").Return(nil, domain.ErrNotFound)
		m.profiles.On("Create", ctx, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.UserID == "google-sub-1" && p.Email == "ola@example.no" && p.AuthType == domain.AuthTypeGoogle
		})).Return(nil)
		m.sessions.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil)

		session, err := svc.GoogleCallback(ctx, "code-1")
		require.NoError(t, err)
		assert.Equal(t, "google-sub-1", session.UserID)
		assert.Equal(t, domain.AuthTypeGoogle, session.AuthType)
		assert.WithinDuration(t, time.Now().Add(60*24*time.Hour), session.ExpiresAt, time.Minute)
		m.profiles.AssertExpectations(t)
	})

	t.Run("ReturningUserSkipsProvisioning", func(t *testing.T) {
		svc, m := newAuthService()

		m.google.On("Exchange", ctx, "code-2").Return(&oauth.UserInfo{
			Sub: "google-sub-1", Email: "ola@example.no", Name: "Ola",
		}, nil)
		m.profiles.On("GetByUserID", ctx, "google-sub-1").Return(&domain.UserProfile{UserID: "google-sub-1"}, nil)
		m.sessions.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil)

		_, err := svc.GoogleCallback(ctx, "code-2")
		require.NoError(t, err)
		m.profiles.AssertNotCalled(t, "Create")
	})

	t.Run("BadCode", func(t *testing.T) {
		svc, m := newAuthService()

		m.google.On("Exchange", ctx, "bad").Return(nil, assert.AnError)

		_, err := svc.GoogleCallback(ctx, "bad")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
