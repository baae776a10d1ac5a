package http

import (
	"context"
	"net/http"

	"pvmarket-backend/internal/auth"
	"pvmarket-backend/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// Middleware attaches the resolved caller identity to the request context.
type Middleware struct {
	auth *auth.Authenticator
}

func NewMiddleware(authenticator *auth.Authenticator) *Middleware {
	return &Middleware{auth: authenticator}
}

// RequireAuth rejects requests without a valid credential.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.auth.Authenticate(r.Context(), r)
		if err != nil {
			writeError(w, r, domain.ErrUnauthorized)
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

// OptionalAuth resolves the caller when possible but lets anonymous requests
// through. Public pole routes use this to decide internal_notes visibility.
func (m *Middleware) OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := m.auth.AuthenticateOptional(r.Context(), r); identity != nil {
			r = r.WithContext(withIdentity(r.Context(), identity))
		}
		next(w, r)
	}
}

func withIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated caller, or nil for anonymous
// requests.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityKey).(*domain.Identity)
	return identity
}
