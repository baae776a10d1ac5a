package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/logger"
	"pvmarket-backend/internal/oauth"
	"pvmarket-backend/internal/repository"
	"pvmarket-backend/internal/security"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
	sessionTTL        = 60 * 24 * time.Hour // 60 days
)

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	tokens      security.TokenManager
	google      oauth.GoogleProvider
}

func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	tokens security.TokenManager,
	google oauth.GoogleProvider,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		google:      google,
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*domain.LocalUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", domain.Validationf("a valid email address is required")
	}
	if len(password) < minPasswordLength {
		return nil, "", domain.Validationf("password must be at least %d characters", minPasswordLength)
	}
	if strings.TrimSpace(name) == "" {
		return nil, "", domain.Validationf("name is required")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.LocalUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	profile := &domain.UserProfile{
		UserID:   user.ID,
		Email:    email,
		Name:     &user.Name,
		UserType: domain.UserTypeIndividual,
		AuthType: domain.AuthTypeLocal,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Name, domain.AuthTypeLocal)
	if err != nil {
		return nil, "", err
	}

	logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.LocalUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Name, domain.AuthTypeLocal)
	if err != nil {
		return nil, "", err
	}

	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) GoogleAuthURL(state string) string {
	return s.google.AuthCodeURL(state)
}

// GoogleCallback exchanges the authorization code, provisions a profile on
// first login and opens a cookie session.
func (s *authService) GoogleCallback(ctx context.Context, code string) (*domain.Session, error) {
	logger.ExternalServiceCall("google", "exchange_code")
	info, err := s.google.Exchange(ctx, code)
	logger.ExternalServiceResult("google", "exchange_code", err)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.profileRepo.GetByUserID(ctx, info.Sub); errors.Is(err, domain.ErrNotFound) {
		profile := &domain.UserProfile{
			UserID:   info.Sub,
			Email:    strings.ToLower(info.Email),
			UserType: domain.UserTypeIndividual,
			AuthType: domain.AuthTypeGoogle,
		}
		if info.Name != "" {
			profile.Name = &info.Name
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    info.Sub,
		Email:     strings.ToLower(info.Email),
		Name:      info.Name,
		AuthType:  domain.AuthTypeGoogle,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "google session opened", "user_id", session.UserID)
	return session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}
