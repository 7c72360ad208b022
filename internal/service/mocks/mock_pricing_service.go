package mocks

import (
	"context"

	"fuelmarket/internal/model"
	"fuelmarket/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) ListTiers(ctx context.Context, fuelTypeID string) (*service.TierListResult, error) {
	args := m.Called(ctx, fuelTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TierListResult), args.Error(1)
}

func (m *MockPricingService) Quote(ctx context.Context, fuelTypeID string, volume float64) (*service.QuoteResult, error) {
	args := m.Called(ctx, fuelTypeID, volume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuoteResult), args.Error(1)
}

func (m *MockPricingService) CreateTier(ctx context.Context, in service.CreateTierInput) (*model.PriceTier, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceTier), args.Error(1)
}

func (m *MockPricingService) DeleteTier(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
