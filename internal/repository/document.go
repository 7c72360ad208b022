package repository

import (
	"context"

	"fuelmarket/internal/model"
)

// DocumentRepository defines data access for compliance documents.
type DocumentRepository interface {
	// Create inserts a new document record (verification status pending).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByOwner returns an owner's documents ordered by upload time
	// ascending, so later records supersede earlier ones per doc type.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error)

	// List returns a paginated list of documents and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// UpdateStatus sets the verification status of a document.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a document by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
