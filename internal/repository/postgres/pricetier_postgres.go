package postgres

import (
	"context"
	"database/sql"

	"fuelmarket/internal/model"
	"fuelmarket/internal/repository"
)

// PriceTierPostgres is a PostgreSQL implementation of
// repository.PriceTierRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type PriceTierPostgres struct {
	db *sql.DB
}

// NewPriceTierPostgres creates a new PriceTierPostgres repository.
func NewPriceTierPostgres(db *sql.DB) *PriceTierPostgres {
	return &PriceTierPostgres{db: db}
}

var _ repository.PriceTierRepository = (*PriceTierPostgres)(nil)

// Create inserts a new tier row and returns the stored record.
func (r *PriceTierPostgres) Create(ctx context.Context, tier *model.PriceTier) (*model.PriceTier, error) {
	const q = `
		INSERT INTO price_tiers (id, fuel_type_id, min_volume, price_per_unit, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fuel_type_id, min_volume, price_per_unit, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		tier.ID,
		tier.FuelTypeID,
		tier.MinVolume,
		tier.PricePerUnit,
		tier.CreatedAt,
	)
	var out model.PriceTier
	if err := row.Scan(
		&out.ID,
		&out.FuelTypeID,
		&out.MinVolume,
		&out.PricePerUnit,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByFuelType fetches all tiers for a fuel type.
func (r *PriceTierPostgres) ListByFuelType(ctx context.Context, fuelTypeID string) ([]model.PriceTier, error) {
	const q = `
		SELECT id, fuel_type_id, min_volume, price_per_unit, created_at
		FROM price_tiers
		WHERE fuel_type_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, fuelTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := make([]model.PriceTier, 0)
	for rows.Next() {
		var t model.PriceTier
		if err := rows.Scan(
			&t.ID,
			&t.FuelTypeID,
			&t.MinVolume,
			&t.PricePerUnit,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tiers, nil
}

// FindByID fetches a single tier by its ID.
func (r *PriceTierPostgres) FindByID(ctx context.Context, id string) (*model.PriceTier, error) {
	const q = `
		SELECT id, fuel_type_id, min_volume, price_per_unit, created_at
		FROM price_tiers
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var t model.PriceTier
	if err := row.Scan(
		&t.ID,
		&t.FuelTypeID,
		&t.MinVolume,
		&t.PricePerUnit,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a tier by ID. It does not return an error if the row does not exist.
func (r *PriceTierPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM price_tiers WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
