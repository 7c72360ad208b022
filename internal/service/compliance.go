package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"fuelmarket/internal/compliance"
	"fuelmarket/internal/model"
	"fuelmarket/internal/repository"
	"fuelmarket/internal/storage"
)

var (
	ErrReaderNil       = errors.New("reader is nil")
	ErrDocTypeRequired = errors.New("doc type is required")
	ErrInvalidDecision = errors.New("review decision must be verified or rejected")
	ErrAlreadyReviewed = errors.New("document has already been reviewed")
	ErrInvalidStatus   = errors.New("invalid actor status")
)

// UploadInput carries a document upload request.
type UploadInput struct {
	OwnerID          string
	DocType          string
	OriginalFilename string
	ContentType      string
	Size             int64
	ExpiryDate       *time.Time
}

// ComplianceService defines the use cases around compliance documents and
// actor eligibility.
type ComplianceService interface {
	// UploadDocument streams the file to object storage, records metadata
	// with a pending verification status, and rolls back the stored object
	// if the metadata write fails. A re-upload creates a fresh record that
	// supersedes earlier ones for the same doc type.
	UploadDocument(ctx context.Context, r io.Reader, in UploadInput) (*model.Document, error)

	// ListDocuments returns an actor's documents in upload order.
	ListDocuments(ctx context.Context, ownerID string) ([]model.Document, error)

	// Review transitions a pending document to verified or rejected.
	Review(ctx context.Context, id, decision string) error

	// EvaluateActor runs the checklist evaluator over an actor's current
	// documents and reviewer-controlled flags.
	EvaluateActor(ctx context.Context, actorID string) (*compliance.Status, error)

	// PresignDownload returns a time-limited download URL for a document.
	PresignDownload(ctx context.Context, id string) (string, error)

	// SetActorFlags applies a reviewer decision to the actor-level flags
	// read by the evaluator. Approval and revocation happen only here,
	// never through document re-evaluation.
	SetActorFlags(ctx context.Context, id, status, complianceStatus string) error
}

type complianceService struct {
	store         storage.Storage
	docs          repository.DocumentRepository
	actors        repository.ActorRepository
	rules         compliance.RuleSet
	presignExpiry time.Duration
}

// NewComplianceService constructs a ComplianceService with an injected rule
// set so callers (and tests) control the required-document tables.
func NewComplianceService(
	store storage.Storage,
	docs repository.DocumentRepository,
	actors repository.ActorRepository,
	rules compliance.RuleSet,
	presignExpiry time.Duration,
) ComplianceService {
	return &complianceService{
		store:         store,
		docs:          docs,
		actors:        actors,
		rules:         rules,
		presignExpiry: presignExpiry,
	}
}

func (s *complianceService) UploadDocument(ctx context.Context, r io.Reader, in UploadInput) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if in.OwnerID == "" {
		return nil, ErrIDRequired
	}
	if in.DocType == "" {
		return nil, ErrDocTypeRequired
	}

	// The actor row must exist before any storage write happens.
	actor, err := s.actors.FindByID(ctx, in.OwnerID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Stored filename is UUID + original extension; the original name only
	// survives as object metadata.
	ext := filepath.Ext(in.OriginalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("documents", in.OwnerID, genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.OriginalFilename,
			"doc-type":          in.DocType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:                 uuid.New().String(),
		OwnerID:            in.OwnerID,
		OwnerType:          actor.OwnerType,
		DocType:            in.DocType,
		Filename:           genName,
		StoragePath:        objInfo.Key,
		Size:               objInfo.Size,
		ContentType:        objInfo.ContentType,
		VerificationStatus: model.VerificationPending,
		ExpiryDate:         in.ExpiryDate,
		CreatedAt:          time.Now().UTC(),
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *complianceService) ListDocuments(ctx context.Context, ownerID string) ([]model.Document, error) {
	if ownerID == "" {
		return nil, ErrIDRequired
	}
	return s.docs.ListByOwner(ctx, ownerID)
}

func (s *complianceService) Review(ctx context.Context, id, decision string) error {
	if id == "" {
		return ErrIDRequired
	}
	if decision != model.VerificationVerified && decision != model.VerificationRejected {
		return ErrInvalidDecision
	}

	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	if doc.VerificationStatus != model.VerificationPending {
		return ErrAlreadyReviewed
	}
	return s.docs.UpdateStatus(ctx, id, decision)
}

func (s *complianceService) EvaluateActor(ctx context.Context, actorID string) (*compliance.Status, error) {
	if actorID == "" {
		return nil, ErrIDRequired
	}
	actor, err := s.actors.FindByID(ctx, actorID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	docs, err := s.docs.ListByOwner(ctx, actorID)
	if err != nil {
		return nil, err
	}

	required := s.rules.For(actor.OwnerType, actor.Attributes())
	status := compliance.Evaluate(required, docs, compliance.ActorFlags{
		Status:           actor.Status,
		ComplianceStatus: actor.ComplianceStatus,
	})
	return &status, nil
}

func (s *complianceService) PresignDownload(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.store.PresignGet(ctx, doc.StoragePath, s.presignExpiry)
}

func (s *complianceService) SetActorFlags(ctx context.Context, id, status, complianceStatus string) error {
	if id == "" {
		return ErrIDRequired
	}
	switch status {
	case model.ActorStatusPending, model.ActorStatusActive, model.ActorStatusRejected, model.ActorStatusSuspended:
	default:
		return ErrInvalidStatus
	}
	switch complianceStatus {
	case model.ComplianceApproved, model.CompliancePending, model.ComplianceRejected:
	default:
		return ErrInvalidStatus
	}

	if err := s.actors.UpdateStatus(ctx, id, status, complianceStatus); err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
