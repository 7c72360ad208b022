package mocks

import (
	"context"

	"fuelmarket/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPriceTierRepository struct {
	mock.Mock
}

func (m *MockPriceTierRepository) Create(ctx context.Context, tier *model.PriceTier) (*model.PriceTier, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceTier), args.Error(1)
}

func (m *MockPriceTierRepository) ListByFuelType(ctx context.Context, fuelTypeID string) ([]model.PriceTier, error) {
	args := m.Called(ctx, fuelTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PriceTier), args.Error(1)
}

func (m *MockPriceTierRepository) FindByID(ctx context.Context, id string) (*model.PriceTier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceTier), args.Error(1)
}

func (m *MockPriceTierRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
