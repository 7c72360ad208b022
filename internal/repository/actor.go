package repository

import (
	"context"

	"fuelmarket/internal/model"
)

// ActorRepository defines data access for platform actors and their
// reviewer-controlled status flags.
type ActorRepository interface {
	// FindByID returns an actor by its ID.
	FindByID(ctx context.Context, id string) (*model.Actor, error)

	// UpdateStatus sets the actor-level status and compliance flags. This is
	// the only write path for them; the document checklist never does it.
	UpdateStatus(ctx context.Context, id, status, complianceStatus string) error
}
