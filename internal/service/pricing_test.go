package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"fuelmarket/internal/model"
	"fuelmarket/internal/pricing"
	repoMocks "fuelmarket/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func dieselTiers() []model.PriceTier {
	return []model.PriceTier{
		{ID: "t2", FuelTypeID: "diesel", MinVolume: 1000, PricePerUnit: 17.90},
		{ID: "t1", FuelTypeID: "diesel", MinVolume: 0, PricePerUnit: 18.50},
		{ID: "t3", FuelTypeID: "diesel", MinVolume: 5000, PricePerUnit: 17.20},
	}
}

func TestPricingService_ListTiers(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("ListByFuelType", ctx, "diesel").Return(dieselTiers(), nil)
		svc := NewPricingService(mRepo, "L")

		res, err := svc.ListTiers(ctx, "diesel")

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, "0L - 999L", res.Tiers[0].Label)
		assert.Equal(t, "5000L+", res.Tiers[2].Label)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing fuel type id", func(t *testing.T) {
		svc := NewPricingService(new(repoMocks.MockPriceTierRepository), "L")

		_, err := svc.ListTiers(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("ListByFuelType", ctx, "diesel").Return(nil, errors.New("db fail"))
		svc := NewPricingService(mRepo, "L")

		_, err := svc.ListTiers(ctx, "diesel")

		assert.Error(t, err)
	})
}

func TestPricingService_Quote(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		volume    float64
		wantPrice float64
	}{
		{name: "mid tier", volume: 1500, wantPrice: 17.90},
		{name: "below entry threshold uses entry tier", volume: 50, wantPrice: 18.50},
		{name: "top tier", volume: 9000, wantPrice: 17.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPriceTierRepository)
			mRepo.On("ListByFuelType", ctx, "diesel").Return(dieselTiers(), nil)
			svc := NewPricingService(mRepo, "L")

			res, err := svc.Quote(ctx, "diesel", tt.volume)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.PricePerUnit)
			assert.Equal(t, tt.wantPrice*tt.volume, res.Total)
		})
	}

	t.Run("no tiers configured", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("ListByFuelType", ctx, "paraffin").Return([]model.PriceTier{}, nil)
		svc := NewPricingService(mRepo, "L")

		_, err := svc.Quote(ctx, "paraffin", 100)

		assert.ErrorIs(t, err, pricing.ErrNoTiersConfigured)
	})
}

func TestPricingService_CreateTier(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path coerces string min volume", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("ListByFuelType", ctx, "diesel").Return(dieselTiers(), nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(tier *model.PriceTier) bool {
			return tier.ID != "" && tier.MinVolume == 10000 && tier.PricePerUnit == 16.80
		})).Return(&model.PriceTier{ID: "gen-id", MinVolume: 10000}, nil)
		svc := NewPricingService(mRepo, "L")

		tier, err := svc.CreateTier(ctx, CreateTierInput{
			FuelTypeID:   "diesel",
			MinVolume:    "10000",
			PricePerUnit: 16.80,
		})

		assert.NoError(t, err)
		assert.Equal(t, "gen-id", tier.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("malformed min volume coerces to zero and collides", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("ListByFuelType", ctx, "diesel").Return(dieselTiers(), nil)
		svc := NewPricingService(mRepo, "L")

		_, err := svc.CreateTier(ctx, CreateTierInput{
			FuelTypeID:   "diesel",
			MinVolume:    "not a number",
			PricePerUnit: 19.00,
		})

		assert.ErrorIs(t, err, ErrDuplicateMinVolume)
	})

	t.Run("duplicate min volume rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("ListByFuelType", ctx, "diesel").Return(dieselTiers(), nil)
		svc := NewPricingService(mRepo, "L")

		_, err := svc.CreateTier(ctx, CreateTierInput{
			FuelTypeID:   "diesel",
			MinVolume:    1000,
			PricePerUnit: 17.00,
		})

		assert.ErrorIs(t, err, ErrDuplicateMinVolume)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		svc := NewPricingService(new(repoMocks.MockPriceTierRepository), "L")

		_, err := svc.CreateTier(ctx, CreateTierInput{FuelTypeID: "diesel", MinVolume: 0})

		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestPricingService_DeleteTier(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("FindByID", ctx, "t1").Return(&model.PriceTier{ID: "t1"}, nil)
		mRepo.On("Delete", ctx, "t1").Return(nil)
		svc := NewPricingService(mRepo, "L")

		assert.NoError(t, svc.DeleteTier(ctx, "t1"))
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockPriceTierRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewPricingService(mRepo, "L")

		assert.ErrorIs(t, svc.DeleteTier(ctx, "missing"), ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewPricingService(new(repoMocks.MockPriceTierRepository), "L")

		assert.ErrorIs(t, svc.DeleteTier(ctx, ""), ErrIDRequired)
	})
}
