// Package auth resolves the caller identity from a request. The API accepts
// two credential schemes behind one port: local bearer tokens and Google
// session cookies.
package auth

import (
	"context"
	"net/http"
	"strings"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"
	"pvmarket-backend/internal/security"
)

// SessionCookieName is the httpOnly cookie carrying a Google session ID.
const SessionCookieName = "pv_session"

// CredentialProvider resolves one credential scheme. Resolve returns
// (nil, nil) when the request carries no credential this provider
// understands, and an error when it carries an invalid one.
type CredentialProvider interface {
	Resolve(ctx context.Context, r *http.Request) (*domain.Identity, error)
}

// Authenticator tries each provider in order; the first identity wins.
type Authenticator struct {
	providers []CredentialProvider
}

func NewAuthenticator(providers ...CredentialProvider) *Authenticator {
	return &Authenticator{providers: providers}
}

// Authenticate resolves the caller or returns domain.ErrUnauthorized.
func (a *Authenticator) Authenticate(ctx context.Context, r *http.Request) (*domain.Identity, error) {
	for _, p := range a.providers {
		identity, err := p.Resolve(ctx, r)
		if err != nil {
			return nil, err
		}
		if identity != nil {
			return identity, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

// AuthenticateOptional resolves the caller if a valid credential is present.
// Missing or invalid credentials both yield an anonymous caller; public
// routes never fail on a stale token.
func (a *Authenticator) AuthenticateOptional(ctx context.Context, r *http.Request) *domain.Identity {
	for _, p := range a.providers {
		identity, err := p.Resolve(ctx, r)
		if err == nil && identity != nil {
			return identity
		}
	}
	return nil
}

// BearerProvider validates Authorization: Bearer tokens issued at
// register/login time.
type BearerProvider struct {
	tokens security.TokenManager
}

func NewBearerProvider(tokens security.TokenManager) *BearerProvider {
	return &BearerProvider{tokens: tokens}
}

func (p *BearerProvider) Resolve(ctx context.Context, r *http.Request) (*domain.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, nil
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Identity{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		AuthType: claims.AuthType,
	}, nil
}

// SessionProvider validates the Google session cookie against user_sessions.
type SessionProvider struct {
	sessions repository.SessionRepository
}

func NewSessionProvider(sessions repository.SessionRepository) *SessionProvider {
	return &SessionProvider{sessions: sessions}
}

func (p *SessionProvider) Resolve(ctx context.Context, r *http.Request) (*domain.Identity, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	session, err := p.sessions.GetByID(ctx, cookie.Value)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired() {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Identity{
		UserID:   session.UserID,
		Email:    session.Email,
		Name:     session.Name,
		AuthType: session.AuthType,
	}, nil
}
