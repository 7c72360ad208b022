package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fuelmarket/internal/service"
)

// UploadDocument accepts a multipart compliance document upload
// (field name: file) plus a doc_type form value.
// @Summary Upload a compliance document
// @Router /actors/{id}/documents [post]
func UploadDocument(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		docType := c.FormValue("doc_type")
		if docType == "" {
			return writeError(c, fiber.StatusBadRequest, "DOC_TYPE_REQUIRED", "doc_type is required")
		}

		var expiry *time.Time
		if v := c.FormValue("expiry_date"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_EXPIRY", "expiry_date must be RFC3339")
			}
			expiry = &t
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.UploadDocument(c.UserContext(), f, service.UploadInput{
			OwnerID:          c.Params("id"),
			DocType:          docType,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
			ExpiryDate:       expiry,
		})
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "ACTOR_NOT_FOUND", "actor not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListDocuments returns an actor's documents in upload order.
// @Summary List an actor's compliance documents
// @Router /actors/{id}/documents [get]
func ListDocuments(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListDocuments(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "actor id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": docs, "total": len(docs)})
	}
}

type reviewRequest struct {
	Decision string `json:"decision"`
}

// ReviewDocument applies a reviewer decision to a pending document.
// @Summary Review a compliance document
// @Router /documents/{id}/review [post]
func ReviewDocument(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req reviewRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Review(c.UserContext(), id, req.Decision); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidDecision):
				return writeError(c, fiber.StatusBadRequest, "INVALID_DECISION", "decision must be verified or rejected")
			case errors.Is(err, service.ErrAlreadyReviewed):
				return writeError(c, fiber.StatusConflict, "ALREADY_REVIEWED", "document has already been reviewed")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type actorStatusRequest struct {
	Status           string `json:"status"`
	ComplianceStatus string `json:"compliance_status"`
}

// UpdateActorStatus applies a reviewer decision to an actor's account and
// compliance flags.
// @Summary Update an actor's reviewer-controlled flags
// @Router /actors/{id}/status [post]
func UpdateActorStatus(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req actorStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.SetActorFlags(c.UserContext(), c.Params("id"), req.Status, req.ComplianceStatus); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidStatus):
				return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "unknown status value")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "ACTOR_NOT_FOUND", "actor not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetCompliance returns the computed compliance status for an actor.
// @Summary Get an actor's compliance status
// @Router /actors/{id}/compliance [get]
func GetCompliance(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := svc.EvaluateActor(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "ACTOR_NOT_FOUND", "actor not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(status)
	}
}

// DownloadDocument returns a time-limited presigned URL for a document.
// @Summary Get a presigned download URL
// @Router /documents/{id}/download [get]
func DownloadDocument(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.PresignDownload(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
