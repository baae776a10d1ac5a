package repository

import (
	"context"
	"pvmarket-backend/internal/domain"
)

type PoleRepository interface {
	Create(ctx context.Context, pole *domain.Pole) error
	GetByID(ctx context.Context, id int64) (*domain.Pole, error)
	// GetByIDWithOwner also join-fetches the owner's public profile fields.
	GetByIDWithOwner(ctx context.Context, id int64) (*domain.Pole, error)
	Update(ctx context.Context, pole *domain.Pole) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID string, order domain.SortOrder) ([]domain.Pole, error)
	Search(ctx context.Context, filters domain.SearchFilters, order domain.SortOrder) ([]domain.Pole, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.LocalUser) error
	GetByID(ctx context.Context, id string) (*domain.LocalUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.LocalUser, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.PoleRequest) error
	GetByID(ctx context.Context, id int64) (*domain.PoleRequest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.PoleRequest, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.PoleInquiry) error
	ListUnnotified(ctx context.Context, limit int) ([]domain.PoleInquiry, error)
	MarkNotified(ctx context.Context, id int64) error
}
