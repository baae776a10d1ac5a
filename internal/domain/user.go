package domain

import "time"

// LocalUser is an email/password identity. Google identities never get a
// local_users row; they live only in user_sessions and user_profiles.
type LocalUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller as resolved from either credential
// scheme (bearer token or session cookie).
type Identity struct {
	UserID   string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name,omitempty"`
	AuthType AuthType `json:"auth_type"`
}

// Session is a cookie-backed login created from a Google OAuth exchange.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AuthType  AuthType  `json:"auth_type"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is past its expiry. Expired rows stay
// in the table until the nightly purge job removes them.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
