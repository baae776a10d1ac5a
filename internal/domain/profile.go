package domain

import "time"

type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeClub       UserType = "club"
)

type AuthType string

const (
	AuthTypeLocal  AuthType = "local"
	AuthTypeGoogle AuthType = "google"
)

// UserProfile is keyed 1:1 on an authenticated identity. Clubs stay
// unverified until someone flips IsVerified by hand; no workflow in the
// codebase drives that transition.
type UserProfile struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	UserType     UserType  `json:"user_type"`
	ClubName     *string   `json:"club_name,omitempty"`
	OrgNumber    *string   `json:"org_number,omitempty"`
	Municipality *string   `json:"municipality,omitempty"`
	PostalCode   *string   `json:"postal_code,omitempty"`
	AuthType     AuthType  `json:"auth_type"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
