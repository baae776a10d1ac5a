package service

import (
	"context"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/logger"
	"pvmarket-backend/internal/repository"
)

type requestService struct {
	requestRepo repository.RequestRepository
	inquiryRepo repository.InquiryRepository
	poleRepo    repository.PoleRepository
	email       EmailService
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	inquiryRepo repository.InquiryRepository,
	poleRepo repository.PoleRepository,
	email EmailService,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		inquiryRepo: inquiryRepo,
		poleRepo:    poleRepo,
		email:       email,
	}
}

// Create records a rent/buy request and notifies the owner. Email delivery is
// best effort: without an API key, or when SendGrid fails, the notification
// is stored as a pole_inquiries row for the hourly delivery job.
func (s *requestService) Create(ctx context.Context, requester *domain.Identity, req *domain.PoleRequest) (*domain.PoleRequest, error) {
	switch req.RequestType {
	case domain.RequestTypeRent, domain.RequestTypeBuy:
	default:
		return nil, domain.Validationf("request_type must be %q or %q", domain.RequestTypeRent, domain.RequestTypeBuy)
	}
	// Rental dates are optional; renters often settle the period off-platform.
	// A lone start or end date is still malformed.
	if (req.RentalStartDate == nil) != (req.RentalEndDate == nil) {
		return nil, domain.Validationf("rental_start_date and rental_end_date must be provided together")
	}

	pole, err := s.poleRepo.GetByIDWithOwner(ctx, req.PoleID)
	if err != nil {
		return nil, err
	}
	if pole.OwnerID == requester.UserID {
		return nil, domain.Validationf("cannot request your own pole")
	}

	req.RequesterID = requester.UserID
	req.OwnerID = pole.OwnerID
	req.Status = domain.RequestStatusPending
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, requester, pole, req)
	return req, nil
}

func (s *requestService) notifyOwner(ctx context.Context, requester *domain.Identity, pole *domain.Pole, req *domain.PoleRequest) {
	if pole.Owner == nil || pole.Owner.Email == "" {
		logger.Warn("pole owner has no profile email, skipping notification", "pole_id", pole.ID)
		return
	}

	ownerName := ""
	if pole.Owner.Name != nil {
		ownerName = *pole.Owner.Name
	}
	message := ""
	if req.Message != nil {
		message = *req.Message
	}
	inquiry := InquiryEmail{
		OwnerEmail:    pole.Owner.Email,
		OwnerName:     ownerName,
		InquirerEmail: requester.Email,
		InquirerName:  requester.Name,
		Brand:         pole.Brand,
		LengthCM:      pole.LengthCM,
		WeightLbs:     pole.WeightLbs,
		Location:      pole.Municipality,
		Message:       message,
	}

	if s.email.Enabled() {
		if err := s.email.SendPoleInquiry(ctx, inquiry); err == nil {
			return
		} else {
			logger.ErrorContext(ctx, "inquiry email failed, storing for later delivery", "pole_id", pole.ID, "error", err)
		}
	}

	stored := &domain.PoleInquiry{
		PoleID:        pole.ID,
		OwnerEmail:    inquiry.OwnerEmail,
		InquirerEmail: inquiry.InquirerEmail,
	}
	if requester.Name != "" {
		stored.InquirerName = &requester.Name
	}
	if message != "" {
		stored.Message = &message
	}
	if err := s.inquiryRepo.Create(ctx, stored); err != nil {
		logger.ErrorContext(ctx, "failed to store inquiry fallback", "pole_id", pole.ID, "error", err)
	}
}

func (s *requestService) ListForOwner(ctx context.Context, ownerID string) ([]domain.PoleRequest, error) {
	return s.requestRepo.ListByOwner(ctx, ownerID)
}
