package service

import (
	"context"

	"pvmarket-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.LocalUser, string, error) // user, bearer token
	Login(ctx context.Context, email, password string) (*domain.LocalUser, string, error)
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, code string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type PoleService interface {
	Create(ctx context.Context, ownerID string, pole *domain.Pole) error
	CreateBulk(ctx context.Context, ownerID string, poles []domain.Pole) *BulkResult
	Get(ctx context.Context, id int64, viewer *domain.Identity) (*domain.Pole, error)
	Update(ctx context.Context, userID string, pole *domain.Pole) (*domain.Pole, error)
	Delete(ctx context.Context, userID string, id int64) error
	ListMine(ctx context.Context, ownerID string) ([]domain.Pole, error)
	Search(ctx context.Context, filters domain.SearchFilters, order domain.SortOrder) ([]domain.Pole, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, caller *domain.Identity, profile *domain.UserProfile) (*domain.UserProfile, error)
}

type RequestService interface {
	Create(ctx context.Context, requester *domain.Identity, req *domain.PoleRequest) (*domain.PoleRequest, error)
	ListForOwner(ctx context.Context, ownerID string) ([]domain.PoleRequest, error)
}

// EmailService sends owner notifications. Enabled reports whether an API key
// is configured; callers fall back to database storage when it is not.
type EmailService interface {
	Enabled() bool
	SendPoleInquiry(ctx context.Context, inquiry InquiryEmail) error
}

// InquiryEmail carries everything the owner notification template needs.
type InquiryEmail struct {
	OwnerEmail    string
	OwnerName     string
	InquirerEmail string
	InquirerName  string
	Brand         string
	LengthCM      int32
	WeightLbs     int32
	Location      string
	Message       string
}

// BulkItem is the per-listing outcome of a bulk create.
type BulkItem struct {
	Index int          `json:"index"`
	Pole  *domain.Pole `json:"pole,omitempty"`
	Error string       `json:"error,omitempty"`
}

// BulkResult aggregates bulk create outcomes. A bulk call succeeds as a whole
// even when individual listings fail validation.
type BulkResult struct {
	Created int        `json:"created"`
	Failed  int        `json:"failed"`
	Items   []BulkItem `json:"items"`
}
