package mocks

import (
	"context"

	"fuelmarket/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) FindByID(ctx context.Context, id string) (*model.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Actor), args.Error(1)
}

func (m *MockActorRepository) UpdateStatus(ctx context.Context, id, status, complianceStatus string) error {
	args := m.Called(ctx, id, status, complianceStatus)
	return args.Error(0)
}
