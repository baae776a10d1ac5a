package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pvmarket-backend/internal/domain"
)

func TestProfileService_Upsert(t *testing.T) {
	ctx := context.Background()
	caller := &domain.Identity{UserID: "u1", Email: "Kari@Example.no", AuthType: domain.AuthTypeLocal}

	t.Run("FirstSaveCreates", func(t *testing.T) {
		repo := new(MockProfileRepo)
		svc := NewProfileService(repo)

		repo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil)

		saved, err := svc.Upsert(ctx, caller, &domain.UserProfile{
			UserID: "hijacked", // ignored
			Email:  "other@example.no",
		})
		require.NoError(t, err)
		assert.Equal(t, "u1", saved.UserID)
		assert.Equal(t, "kari@example.no", saved.Email)
		assert.Equal(t, domain.UserTypeIndividual, saved.UserType)
	})

	t.Run("SecondSaveUpdatesAndKeepsVerification", func(t *testing.T) {
		repo := new(MockProfileRepo)
		svc := NewProfileService(repo)

		repo.On("GetByUserID", ctx, "u1").Return(&domain.UserProfile{
			ID: 3, UserID: "u1", IsVerified: true,
		}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil)

		saved, err := svc.Upsert(ctx, caller, &domain.UserProfile{IsVerified: false})
		require.NoError(t, err)
		assert.True(t, saved.IsVerified)
		assert.Equal(t, int64(3), saved.ID)
	})

	t.Run("ClubNeedsClubName", func(t *testing.T) {
		repo := new(MockProfileRepo)
		svc := NewProfileService(repo)

		_, err := svc.Upsert(ctx, caller, &domain.UserProfile{UserType: domain.UserTypeClub})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("UnknownPostalCodeKeepsClientMunicipality", func(t *testing.T) {
		repo := new(MockProfileRepo)
		svc := NewProfileService(repo)

		repo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil)

		code := "9990"
		municipality := "Båtsfjord"
		saved, err := svc.Upsert(ctx, caller, &domain.UserProfile{PostalCode: &code, Municipality: &municipality})
		require.NoError(t, err)
		require.NotNil(t, saved.Municipality)
		assert.Equal(t, "Båtsfjord", *saved.Municipality)
	})

	t.Run("MunicipalityDerivedFromPostalCode", func(t *testing.T) {
		repo := new(MockProfileRepo)
		svc := NewProfileService(repo)

		repo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.UserProfile")).Return(nil)

		code := "0180"
		saved, err := svc.Upsert(ctx, caller, &domain.UserProfile{PostalCode: &code})
		require.NoError(t, err)
		require.NotNil(t, saved.Municipality)
		assert.Equal(t, "Oslo", *saved.Municipality)
	})
}
