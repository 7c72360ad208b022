package model

import "time"

// OwnerType identifies which kind of actor a document belongs to.
type OwnerType string

const (
	OwnerDriver   OwnerType = "driver"
	OwnerVehicle  OwnerType = "vehicle"
	OwnerSupplier OwnerType = "supplier"
	OwnerCustomer OwnerType = "customer"
)

// Verification status values for uploaded documents. Reviewers move a
// document from pending to verified or rejected; re-uploads create a new
// record and logically supersede the old one.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Document is a compliance document stored in object storage with its
// review metadata. Pure domain model, no database-specific tags.
type Document struct {
	ID                 string     `json:"id"`
	OwnerID            string     `json:"owner_id"`
	OwnerType          OwnerType  `json:"owner_type"`
	DocType            string     `json:"doc_type"`
	Filename           string     `json:"filename"`
	StoragePath        string     `json:"storage_path"`
	Size               int64      `json:"size"`
	ContentType        string     `json:"content_type"`
	VerificationStatus string     `json:"verification_status"`
	ExpiryDate         *time.Time `json:"expiry_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
