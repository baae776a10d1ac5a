package service

import (
	"context"
	"errors"
	"strings"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/postal"
	"pvmarket-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func validateProfile(p *domain.UserProfile) error {
	switch p.UserType {
	case domain.UserTypeIndividual, domain.UserTypeClub:
	case "":
		p.UserType = domain.UserTypeIndividual
	default:
		return domain.Validationf("unknown user_type %q", p.UserType)
	}
	if p.UserType == domain.UserTypeClub {
		if p.ClubName == nil || strings.TrimSpace(*p.ClubName) == "" {
			return domain.Validationf("club_name is required for club profiles")
		}
	}
	return nil
}

// Upsert creates the caller's profile on first save and updates it after.
// Identity fields (user_id, email, auth_type) always come from the caller's
// credentials, never from the request body.
func (s *profileService) Upsert(ctx context.Context, caller *domain.Identity, profile *domain.UserProfile) (*domain.UserProfile, error) {
	profile.UserID = caller.UserID
	profile.Email = strings.ToLower(caller.Email)
	profile.AuthType = caller.AuthType

	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	// Municipality follows the postal code when it resolves; an unknown code
	// keeps whatever the client sent.
	if profile.PostalCode != nil && *profile.PostalCode != "" {
		if resolved := postal.Resolve(*profile.PostalCode); resolved != "" {
			profile.Municipality = &resolved
		}
	}

	existing, err := s.profileRepo.GetByUserID(ctx, caller.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	// Verification survives profile edits.
	profile.ID = existing.ID
	profile.IsVerified = existing.IsVerified
	profile.CreatedAt = existing.CreatedAt
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
