package service

import (
	"context"
	"regexp"
	"strings"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/postal"
	"pvmarket-backend/internal/repository"
)

type poleService struct {
	poleRepo repository.PoleRepository
}

func NewPoleService(poleRepo repository.PoleRepository) PoleService {
	return &poleService{poleRepo: poleRepo}
}

func validatePole(pole *domain.Pole) error {
	if strings.TrimSpace(pole.Brand) == "" {
		return domain.Validationf("brand is required")
	}
	if pole.LengthCM < domain.PoleLengthMinCM || pole.LengthCM > domain.PoleLengthMaxCM {
		return domain.Validationf("length_cm must be between %d and %d", domain.PoleLengthMinCM, domain.PoleLengthMaxCM)
	}
	if pole.WeightLbs < domain.PoleWeightMinLbs || pole.WeightLbs > domain.PoleWeightMaxLbs {
		return domain.Validationf("weight_lbs must be between %d and %d", domain.PoleWeightMinLbs, domain.PoleWeightMaxLbs)
	}
	if pole.ConditionRating < 1 || pole.ConditionRating > 5 {
		return domain.Validationf("condition_rating must be between 1 and 5")
	}
	if pole.Status != "" && !domain.ValidPoleStatus(pole.Status) {
		return domain.Validationf("unknown status %q", pole.Status)
	}
	if !postalCodePattern.MatchString(pole.PostalCode) {
		return domain.Validationf("postal_code must be four digits")
	}
	return nil
}

var postalCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

func (s *poleService) prepare(ownerID string, pole *domain.Pole) error {
	pole.OwnerID = ownerID
	if pole.Status == "" {
		pole.Status = domain.PoleStatusAvailable
	}
	if err := validatePole(pole); err != nil {
		return err
	}
	// Municipality follows the postal code; clients cannot list a pole in
	// Oslo with a Tromsø postal code. The client value is only kept when
	// the code resolves to nothing.
	if resolved := postal.Resolve(pole.PostalCode); resolved != "" {
		pole.Municipality = resolved
	}
	if strings.TrimSpace(pole.Municipality) == "" {
		return domain.Validationf("municipality is required")
	}
	return nil
}

func (s *poleService) Create(ctx context.Context, ownerID string, pole *domain.Pole) error {
	if err := s.prepare(ownerID, pole); err != nil {
		return err
	}
	return s.poleRepo.Create(ctx, pole)
}

// CreateBulk validates and inserts each listing independently. One bad row
// never aborts the batch; the result reports per-index outcomes.
func (s *poleService) CreateBulk(ctx context.Context, ownerID string, poles []domain.Pole) *BulkResult {
	result := &BulkResult{Items: make([]BulkItem, 0, len(poles))}
	for i := range poles {
		pole := poles[i]
		item := BulkItem{Index: i}
		if err := s.prepare(ownerID, &pole); err != nil {
			item.Error = err.Error()
			result.Failed++
		} else if err := s.poleRepo.Create(ctx, &pole); err != nil {
			item.Error = err.Error()
			result.Failed++
		} else {
			item.Pole = &pole
			result.Created++
		}
		result.Items = append(result.Items, item)
	}
	return result
}

func (s *poleService) Get(ctx context.Context, id int64, viewer *domain.Identity) (*domain.Pole, error) {
	pole, err := s.poleRepo.GetByIDWithOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewer == nil || viewer.UserID != pole.OwnerID {
		pole.InternalNotes = nil
	}
	return pole, nil
}

func (s *poleService) Update(ctx context.Context, userID string, pole *domain.Pole) (*domain.Pole, error) {
	existing, err := s.poleRepo.GetByID(ctx, pole.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	if err := s.prepare(existing.OwnerID, pole); err != nil {
		return nil, err
	}
	if err := s.poleRepo.Update(ctx, pole); err != nil {
		return nil, err
	}
	return pole, nil
}

func (s *poleService) Delete(ctx context.Context, userID string, id int64) error {
	existing, err := s.poleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return domain.ErrForbidden
	}
	return s.poleRepo.Delete(ctx, id)
}

func (s *poleService) ListMine(ctx context.Context, ownerID string) ([]domain.Pole, error) {
	return s.poleRepo.ListByOwner(ctx, ownerID, domain.SortByNewest)
}

// Search runs the public browse query. An absent status filter defaults to
// the listings a visitor can act on.
func (s *poleService) Search(ctx context.Context, filters domain.SearchFilters, order domain.SortOrder) ([]domain.Pole, error) {
	for _, status := range filters.Statuses {
		if !domain.ValidPoleStatus(status) {
			return nil, domain.Validationf("unknown status %q", status)
		}
	}
	if len(filters.Statuses) == 0 {
		filters.Statuses = []domain.PoleStatus{domain.PoleStatusAvailable, domain.PoleStatusForSale}
	}
	poles, err := s.poleRepo.Search(ctx, filters, order)
	if err != nil {
		return nil, err
	}
	// internal_notes never leaves the owner's own views
	for i := range poles {
		poles[i].InternalNotes = nil
	}
	return poles, nil
}
