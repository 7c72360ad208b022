package model

import "time"

// Actor account status values, controlled by a human reviewer. The document
// checklist never flips these on its own; an explicit re-review resets
// ComplianceStatus back to pending.
const (
	ActorStatusPending   = "pending"
	ActorStatusActive    = "active"
	ActorStatusRejected  = "rejected"
	ActorStatusSuspended = "suspended"
)

const (
	ComplianceApproved = "approved"
	CompliancePending  = "pending"
	ComplianceRejected = "rejected"
)

// Actor is any party on the platform that must pass document review before
// performing marketplace writes: a driver, a vehicle, a supplier or a
// customer. The boolean attributes select conditional document requirements.
type Actor struct {
	ID               string    `json:"id"`
	OwnerType        OwnerType `json:"owner_type"`
	Status           string    `json:"status"`
	ComplianceStatus string    `json:"compliance_status"`
	TransportsFuel   bool      `json:"transports_fuel"`
	HandlesHazmat    bool      `json:"handles_hazmat"`
	CreatedAt        time.Time `json:"created_at"`
}

// Attributes returns the conditional-requirement switches for this actor.
func (a *Actor) Attributes() map[string]bool {
	return map[string]bool{
		"transports_fuel": a.TransportsFuel,
		"handles_hazmat":  a.HandlesHazmat,
	}
}
