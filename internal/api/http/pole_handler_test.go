package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pvmarket-backend/internal/auth"
	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/security"
	"pvmarket-backend/internal/service"
)

// MockPoleService
type MockPoleService struct {
	mock.Mock
}

func (m *MockPoleService) Create(ctx context.Context, ownerID string, pole *domain.Pole) error {
	args := m.Called(ctx, ownerID, pole)
	return args.Error(0)
}
func (m *MockPoleService) CreateBulk(ctx context.Context, ownerID string, poles []domain.Pole) *service.BulkResult {
	args := m.Called(ctx, ownerID, poles)
	return args.Get(0).(*service.BulkResult)
}
func (m *MockPoleService) Get(ctx context.Context, id int64, viewer *domain.Identity) (*domain.Pole, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pole), args.Error(1)
}
func (m *MockPoleService) Update(ctx context.Context, userID string, pole *domain.Pole) (*domain.Pole, error) {
	args := m.Called(ctx, userID, pole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pole), args.Error(1)
}
func (m *MockPoleService) Delete(ctx context.Context, userID string, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
func (m *MockPoleService) ListMine(ctx context.Context, ownerID string) ([]domain.Pole, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Pole), args.Error(1)
}
func (m *MockPoleService) Search(ctx context.Context, filters domain.SearchFilters, order domain.SortOrder) ([]domain.Pole, error) {
	args := m.Called(ctx, filters, order)
	return args.Get(0).([]domain.Pole), args.Error(1)
}

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Create(ctx context.Context, requester *domain.Identity, req *domain.PoleRequest) (*domain.PoleRequest, error) {
	args := m.Called(ctx, requester, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PoleRequest), args.Error(1)
}
func (m *MockRequestService) ListForOwner(ctx context.Context, ownerID string) ([]domain.PoleRequest, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.PoleRequest), args.Error(1)
}

func TestPoleHandler_List_FilterParsing(t *testing.T) {
	poles := new(MockPoleService)
	handler := NewPoleHandler(poles, new(MockRequestService))

	poles.On("Search", mock.Anything, mock.MatchedBy(func(f domain.SearchFilters) bool {
		return f.LengthMin != nil && *f.LengthMin == 400 &&
			f.LengthMax != nil && *f.LengthMax == 440 &&
			f.Municipality == "Oslo" &&
			len(f.Statuses) == 2 &&
			f.RadiusKM != nil && *f.RadiusKM == 50
	}), domain.SortByLength).Return([]domain.Pole{}, nil)

	req := httptest.NewRequest("GET", "/api/poles?length_min=400&length_max=440&municipality=Oslo&status=available,for_sale&radius_km=50", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	poles.AssertExpectations(t)
}

func TestPoleHandler_List_BadNumber(t *testing.T) {
	handler := NewPoleHandler(new(MockPoleService), new(MockRequestService))

	req := httptest.NewRequest("GET", "/api/poles?length_min=lang", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPoleHandler_List_SortNewest(t *testing.T) {
	poles := new(MockPoleService)
	handler := NewPoleHandler(poles, new(MockRequestService))

	poles.On("Search", mock.Anything, mock.Anything, domain.SortByNewest).Return([]domain.Pole{}, nil)

	req := httptest.NewRequest("GET", "/api/poles?sort=newest", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	poles.AssertExpectations(t)
}

func newTestRouter(t *testing.T, poles service.PoleService, requests service.RequestService) (*security.UserClaims, string, http.Handler) {
	t.Helper()
	tokens := security.NewTokenManager("router-test-secret-at-least-32-chars!!", time.Hour)
	token, err := tokens.GenerateToken("owner-1", "eier@example.no", "Eier", domain.AuthTypeLocal)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)

	authenticator := auth.NewAuthenticator(auth.NewBearerProvider(tokens))
	router := NewRouter(authenticator, nil, nil, poles, requests)
	return claims, token, router
}

func TestRouter_ErrorMapping(t *testing.T) {
	poles := new(MockPoleService)
	_, token, router := newTestRouter(t, poles, new(MockRequestService))

	t.Run("GetMissingPoleIs404", func(t *testing.T) {
		poles.On("Get", mock.Anything, int64(99), (*domain.Identity)(nil)).Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest("GET", "/api/poles/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("CreateWithoutCredentialIs401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/poles", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UpdateForeignPoleIs403", func(t *testing.T) {
		poles.On("Update", mock.Anything, "owner-1", mock.AnythingOfType("*domain.Pole")).
			Return(nil, domain.ErrForbidden)

		req := httptest.NewRequest("PUT", "/api/poles/7", strings.NewReader(`{"length_cm":420}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("StaleTokenOnPublicRouteIsAnonymous", func(t *testing.T) {
		poles.On("Get", mock.Anything, int64(7), (*domain.Identity)(nil)).Return(&domain.Pole{ID: 7}, nil)

		req := httptest.NewRequest("GET", "/api/poles/7", nil)
		req.Header.Set("Authorization", "Bearer not-a-real-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	_, _, router := newTestRouter(t, new(MockPoleService), new(MockRequestService))

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
