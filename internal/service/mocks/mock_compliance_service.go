package mocks

import (
	"context"
	"io"

	"fuelmarket/internal/compliance"
	"fuelmarket/internal/model"
	"fuelmarket/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockComplianceService struct {
	mock.Mock
}

func (m *MockComplianceService) UploadDocument(ctx context.Context, r io.Reader, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, r, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockComplianceService) ListDocuments(ctx context.Context, ownerID string) ([]model.Document, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockComplianceService) Review(ctx context.Context, id, decision string) error {
	args := m.Called(ctx, id, decision)
	return args.Error(0)
}

func (m *MockComplianceService) EvaluateActor(ctx context.Context, actorID string) (*compliance.Status, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.Status), args.Error(1)
}

func (m *MockComplianceService) PresignDownload(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockComplianceService) SetActorFlags(ctx context.Context, id, status, complianceStatus string) error {
	args := m.Called(ctx, id, status, complianceStatus)
	return args.Error(0)
}
