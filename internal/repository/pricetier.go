package repository

import (
	"context"

	"fuelmarket/internal/model"
)

// PriceTierRepository defines data access for depot price tiers using SQL
// queries only. No business logic here — strictly persistence operations.
type PriceTierRepository interface {
	// Create inserts a new tier row and returns the stored record.
	Create(ctx context.Context, tier *model.PriceTier) (*model.PriceTier, error)

	// ListByFuelType returns every tier configured for one fuel type, in no
	// guaranteed order; callers normalize before use.
	ListByFuelType(ctx context.Context, fuelTypeID string) ([]model.PriceTier, error)

	// FindByID returns a tier by its ID.
	FindByID(ctx context.Context, id string) (*model.PriceTier, error)

	// Delete removes a tier by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
