package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fuelmarket/internal/model"
	"fuelmarket/internal/pricing"
	"fuelmarket/internal/repository"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidPrice       = errors.New("price per unit must be positive")
	ErrDuplicateMinVolume = errors.New("a tier with this minimum volume already exists")
)

// TierListResult is the service-level DTO for a fuel type's tiers with
// their display ranges.
type TierListResult struct {
	FuelTypeID string              `json:"fuel_type_id"`
	Tiers      []pricing.TierRange `json:"data"`
	Total      int                 `json:"total"`
}

// QuoteResult is the resolved price for a requested volume.
type QuoteResult struct {
	FuelTypeID   string  `json:"fuel_type_id"`
	Volume       float64 `json:"volume"`
	PricePerUnit float64 `json:"price_per_unit"`
	Total        float64 `json:"total"`
}

// CreateTierInput carries a supplier's tier form submission. MinVolume is
// typed any because pricing forms send it as a number, a string or null;
// the service coerces it before anything else sees it.
type CreateTierInput struct {
	FuelTypeID   string  `json:"fuel_type_id"`
	MinVolume    any     `json:"min_volume"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// PricingService defines the use cases around depot price tiers.
type PricingService interface {
	// ListTiers returns a fuel type's tiers sorted ascending with range labels.
	ListTiers(ctx context.Context, fuelTypeID string) (*TierListResult, error)

	// Quote resolves the applicable price for a requested volume.
	// Returns pricing.ErrNoTiersConfigured when the fuel type has no tiers.
	Quote(ctx context.Context, fuelTypeID string, volume float64) (*QuoteResult, error)

	// CreateTier validates and persists a new tier. The coerced minimum
	// volume must be unique within the fuel type.
	CreateTier(ctx context.Context, in CreateTierInput) (*model.PriceTier, error)

	// DeleteTier removes a tier by ID.
	DeleteTier(ctx context.Context, id string) error
}

type pricingService struct {
	repo repository.PriceTierRepository
	unit string
}

// NewPricingService constructs a PricingService. unit is the volume unit
// suffix used in range labels.
func NewPricingService(repo repository.PriceTierRepository, unit string) PricingService {
	return &pricingService{repo: repo, unit: unit}
}

func (s *pricingService) ListTiers(ctx context.Context, fuelTypeID string) (*TierListResult, error) {
	if fuelTypeID == "" {
		return nil, ErrIDRequired
	}
	tiers, err := s.repo.ListByFuelType(ctx, fuelTypeID)
	if err != nil {
		return nil, err
	}
	ranges := pricing.ComputeRanges(tiers, s.unit)
	return &TierListResult{FuelTypeID: fuelTypeID, Tiers: ranges, Total: len(ranges)}, nil
}

func (s *pricingService) Quote(ctx context.Context, fuelTypeID string, volume float64) (*QuoteResult, error) {
	if fuelTypeID == "" {
		return nil, ErrIDRequired
	}
	tiers, err := s.repo.ListByFuelType(ctx, fuelTypeID)
	if err != nil {
		return nil, err
	}
	price, err := pricing.PriceForVolume(tiers, volume)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{
		FuelTypeID:   fuelTypeID,
		Volume:       volume,
		PricePerUnit: price,
		Total:        price * volume,
	}, nil
}

func (s *pricingService) CreateTier(ctx context.Context, in CreateTierInput) (*model.PriceTier, error) {
	if in.FuelTypeID == "" {
		return nil, ErrIDRequired
	}
	if in.PricePerUnit <= 0 {
		return nil, ErrInvalidPrice
	}

	minVolume := pricing.CoerceMinVolume(in.MinVolume)

	// Uniqueness of the coerced threshold is enforced here, at write time,
	// so the resolver never has to disambiguate colliding tiers.
	existing, err := s.repo.ListByFuelType(ctx, in.FuelTypeID)
	if err != nil {
		return nil, fmt.Errorf("list existing tiers: %w", err)
	}
	for _, t := range existing {
		if t.MinVolume == minVolume {
			return nil, ErrDuplicateMinVolume
		}
	}

	tier := &model.PriceTier{
		ID:           uuid.New().String(),
		FuelTypeID:   in.FuelTypeID,
		MinVolume:    minVolume,
		PricePerUnit: in.PricePerUnit,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, tier)
}

func (s *pricingService) DeleteTier(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
