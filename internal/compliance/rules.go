// Package compliance computes document-checklist state and platform-access
// eligibility for marketplace actors. Like pricing, everything here is pure
// computation over data the caller already fetched.
package compliance

import "fuelmarket/internal/model"

// Requirement names a document type an actor must upload. When is the name
// of an actor attribute; a non-empty When makes the requirement conditional
// on that attribute being true.
type Requirement struct {
	DocType string
	When    string
}

// RuleSet maps an owner type to its required documents. Rule sets are
// injected into callers as immutable configuration so tests can supply
// alternate tables without global state.
type RuleSet map[model.OwnerType][]Requirement

// For resolves the required document types for a role given the actor's
// attribute switches. Unconditional requirements always apply.
func (rs RuleSet) For(role model.OwnerType, attrs map[string]bool) []string {
	reqs := rs[role]
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if r.When != "" && !attrs[r.When] {
			continue
		}
		out = append(out, r.DocType)
	}
	return out
}

// DefaultRules returns the platform's KYC/KYB document tables.
func DefaultRules() RuleSet {
	return RuleSet{
		model.OwnerDriver: {
			{DocType: "identity_document"},
			{DocType: "proof_of_address"},
			{DocType: "drivers_license"},
			{DocType: "professional_driving_permit", When: "transports_fuel"},
			{DocType: "hazmat_training_certificate", When: "handles_hazmat"},
			{DocType: "criminal_clearance"},
			{DocType: "banking_proof"},
		},
		model.OwnerSupplier: {
			{DocType: "company_registration"},
			{DocType: "tax_registration"},
			{DocType: "tax_clearance"},
			{DocType: "wholesale_fuel_license"},
			{DocType: "site_license"},
			{DocType: "environmental_authorization"},
			{DocType: "fire_safety_certificate"},
			{DocType: "fuel_quality_certificate"},
			{DocType: "calibration_certificate"},
			{DocType: "public_liability_insurance"},
		},
		model.OwnerVehicle: {
			{DocType: "vehicle_registration"},
			{DocType: "roadworthiness_certificate"},
			{DocType: "insurance_certificate"},
			{DocType: "hazardous_goods_permit", When: "handles_hazmat"},
			{DocType: "letter_of_authority", When: "transports_fuel"},
		},
	}
}
