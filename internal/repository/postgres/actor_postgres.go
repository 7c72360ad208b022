package postgres

import (
	"context"
	"database/sql"

	"fuelmarket/internal/model"
	"fuelmarket/internal/repository"
)

// ActorPostgres is a PostgreSQL implementation of repository.ActorRepository.
type ActorPostgres struct {
	db *sql.DB
}

// NewActorPostgres creates a new ActorPostgres repository.
func NewActorPostgres(db *sql.DB) *ActorPostgres {
	return &ActorPostgres{db: db}
}

var _ repository.ActorRepository = (*ActorPostgres)(nil)

// FindByID fetches a single actor by its ID.
func (r *ActorPostgres) FindByID(ctx context.Context, id string) (*model.Actor, error) {
	const q = `
		SELECT id, owner_type, status, compliance_status, transports_fuel, handles_hazmat, created_at
		FROM actors
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var a model.Actor
	if err := row.Scan(
		&a.ID,
		&a.OwnerType,
		&a.Status,
		&a.ComplianceStatus,
		&a.TransportsFuel,
		&a.HandlesHazmat,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateStatus sets the reviewer-controlled flags on an actor.
func (r *ActorPostgres) UpdateStatus(ctx context.Context, id, status, complianceStatus string) error {
	const q = `UPDATE actors SET status = $2, compliance_status = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status, complianceStatus)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
