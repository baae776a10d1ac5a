package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/oauth"
	"pvmarket-backend/internal/security"
)

// MockPoleRepo
type MockPoleRepo struct {
	mock.Mock
}

func (m *MockPoleRepo) Create(ctx context.Context, pole *domain.Pole) error {
	args := m.Called(ctx, pole)
	return args.Error(0)
}
func (m *MockPoleRepo) GetByID(ctx context.Context, id int64) (*domain.Pole, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pole), args.Error(1)
}
func (m *MockPoleRepo) GetByIDWithOwner(ctx context.Context, id int64) (*domain.Pole, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pole), args.Error(1)
}
func (m *MockPoleRepo) Update(ctx context.Context, pole *domain.Pole) error {
	args := m.Called(ctx, pole)
	return args.Error(0)
}
func (m *MockPoleRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPoleRepo) ListByOwner(ctx context.Context, ownerID string, order domain.SortOrder) ([]domain.Pole, error) {
	args := m.Called(ctx, ownerID, order)
	return args.Get(0).([]domain.Pole), args.Error(1)
}
func (m *MockPoleRepo) Search(ctx context.Context, filters domain.SearchFilters, order domain.SortOrder) ([]domain.Pole, error) {
	args := m.Called(ctx, filters, order)
	return args.Get(0).([]domain.Pole), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.LocalUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.LocalUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalUser), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.LocalUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalUser), args.Error(1)
}

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockSessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.PoleRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.PoleRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PoleRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.PoleRequest, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.PoleRequest), args.Error(1)
}

// MockInquiryRepo
type MockInquiryRepo struct {
	mock.Mock
}

func (m *MockInquiryRepo) Create(ctx context.Context, inquiry *domain.PoleInquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}
func (m *MockInquiryRepo) ListUnnotified(ctx context.Context, limit int) ([]domain.PoleInquiry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.PoleInquiry), args.Error(1)
}
func (m *MockInquiryRepo) MarkNotified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *MockEmailService) SendPoleInquiry(ctx context.Context, inquiry InquiryEmail) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(userID, email, name string, authType domain.AuthType) (string, error) {
	args := m.Called(userID, email, name, authType)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

// MockGoogleProvider
type MockGoogleProvider struct {
	mock.Mock
}

func (m *MockGoogleProvider) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}
func (m *MockGoogleProvider) Exchange(ctx context.Context, code string) (*oauth.UserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.UserInfo), args.Error(1)
}
