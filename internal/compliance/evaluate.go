package compliance

import "fuelmarket/internal/model"

// Overall status values. Incomplete means documents are missing or still in
// review; pending means the checklist is satisfied but the human reviewer
// has not flipped the actor-level flag yet.
const (
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusPending    = "pending"
	StatusIncomplete = "incomplete"
)

// ActorFlags are the reviewer-controlled fields read by Evaluate. They take
// precedence over the computed checklist.
type ActorFlags struct {
	Status           string `json:"status"`
	ComplianceStatus string `json:"compliance_status"`
}

// Checklist partitions an actor's documents against its required list by
// document type. Approved, Rejected and Pending together cover every
// uploaded required type; Missing is the set difference required − uploaded.
type Checklist struct {
	Required []string `json:"required"`
	Approved []string `json:"approved"`
	Rejected []string `json:"rejected"`
	Pending  []string `json:"pending"`
	Missing  []string `json:"missing"`
}

// Status is the evaluator's result, consumed by progress UIs and by the
// access gate guarding marketplace writes.
type Status struct {
	OverallStatus     string    `json:"overall_status"`
	CanAccessPlatform bool      `json:"can_access_platform"`
	Checklist         Checklist `json:"checklist"`
}

// Evaluate computes an actor's compliance state from its required document
// types, its current document records and its reviewer-controlled flags.
//
// The decision table runs top to bottom, first match wins:
//  1. actor approved and active          -> approved, access granted
//  2. actor rejected (either flag)       -> rejected
//  3. missing or pending docs            -> incomplete
//  4. all present and verified           -> pending (awaiting reviewer)
//
// Rule 1 deliberately short-circuits the checklist: once approved, an actor
// is not re-gated by later document expiry or removal. Revocation goes
// through an explicit suspension, never through re-evaluation here.
func Evaluate(required []string, docs []model.Document, flags ActorFlags) Status {
	cl := buildChecklist(required, docs)

	switch {
	case flags.ComplianceStatus == model.ComplianceApproved && flags.Status == model.ActorStatusActive:
		return Status{OverallStatus: StatusApproved, CanAccessPlatform: true, Checklist: cl}
	case flags.ComplianceStatus == model.ComplianceRejected || flags.Status == model.ActorStatusRejected:
		return Status{OverallStatus: StatusRejected, Checklist: cl}
	case len(cl.Missing) > 0 || len(cl.Pending) > 0:
		return Status{OverallStatus: StatusIncomplete, Checklist: cl}
	default:
		return Status{OverallStatus: StatusPending, Checklist: cl}
	}
}

// buildChecklist partitions every uploaded document type by the
// verification status of its latest record, then derives the missing set
// as required − uploaded. A type counts as uploaded whatever its review
// outcome. Unknown status values count as pending so new review states
// from the persistence layer degrade safely instead of erroring.
func buildChecklist(required []string, docs []model.Document) Checklist {
	byType := make(map[string]string, len(docs))
	order := make([]string, 0, len(docs))
	for _, d := range docs {
		if _, seen := byType[d.DocType]; !seen {
			order = append(order, d.DocType)
		}
		// Later records supersede earlier ones for the same type.
		byType[d.DocType] = d.VerificationStatus
	}

	cl := Checklist{
		Required: append([]string(nil), required...),
		Approved: []string{},
		Rejected: []string{},
		Pending:  []string{},
		Missing:  []string{},
	}
	for _, dt := range order {
		switch byType[dt] {
		case model.VerificationVerified:
			cl.Approved = append(cl.Approved, dt)
		case model.VerificationRejected:
			cl.Rejected = append(cl.Rejected, dt)
		default:
			cl.Pending = append(cl.Pending, dt)
		}
	}
	for _, dt := range required {
		if _, uploaded := byType[dt]; !uploaded {
			cl.Missing = append(cl.Missing, dt)
		}
	}
	return cl
}
