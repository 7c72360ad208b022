package compliance

import (
	"testing"

	"fuelmarket/internal/model"

	"github.com/stretchr/testify/assert"
)

func doc(docType, status string) model.Document {
	return model.Document{DocType: docType, VerificationStatus: status}
}

func TestEvaluate(t *testing.T) {
	rules := DefaultRules()
	driverRequired := rules.For(model.OwnerDriver, nil)

	t.Run("driver with partial uploads is incomplete", func(t *testing.T) {
		docs := []model.Document{
			doc("identity_document", model.VerificationVerified),
			doc("drivers_license", model.VerificationPending),
		}
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.CompliancePending}

		st := Evaluate(driverRequired, docs, flags)

		assert.Equal(t, StatusIncomplete, st.OverallStatus)
		assert.False(t, st.CanAccessPlatform)
		assert.ElementsMatch(t, []string{"proof_of_address", "criminal_clearance", "banking_proof"}, st.Checklist.Missing)
		assert.Equal(t, []string{"drivers_license"}, st.Checklist.Pending)
		assert.Equal(t, []string{"identity_document"}, st.Checklist.Approved)
	})

	t.Run("supplier with full verified checklist awaits reviewer", func(t *testing.T) {
		required := rules.For(model.OwnerSupplier, nil)
		docs := make([]model.Document, 0, len(required))
		for _, dt := range required {
			docs = append(docs, doc(dt, model.VerificationVerified))
		}
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.CompliancePending}

		st := Evaluate(required, docs, flags)

		assert.Equal(t, StatusPending, st.OverallStatus)
		assert.False(t, st.CanAccessPlatform)
		assert.Empty(t, st.Checklist.Missing)
		assert.Len(t, st.Checklist.Approved, 10)
	})

	t.Run("approved actor flag overrides missing documents", func(t *testing.T) {
		flags := ActorFlags{Status: model.ActorStatusActive, ComplianceStatus: model.ComplianceApproved}

		st := Evaluate(driverRequired, nil, flags)

		assert.Equal(t, StatusApproved, st.OverallStatus)
		assert.True(t, st.CanAccessPlatform)
		assert.NotEmpty(t, st.Checklist.Missing)
	})

	t.Run("actor rejection overrides complete checklist", func(t *testing.T) {
		docs := make([]model.Document, 0, len(driverRequired))
		for _, dt := range driverRequired {
			docs = append(docs, doc(dt, model.VerificationVerified))
		}
		flags := ActorFlags{Status: model.ActorStatusRejected, ComplianceStatus: model.CompliancePending}

		st := Evaluate(driverRequired, docs, flags)

		assert.Equal(t, StatusRejected, st.OverallStatus)
		assert.False(t, st.CanAccessPlatform)
	})

	t.Run("rejected compliance flag alone rejects", func(t *testing.T) {
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.ComplianceRejected}

		st := Evaluate(driverRequired, nil, flags)

		assert.Equal(t, StatusRejected, st.OverallStatus)
	})

	t.Run("approved flag without active status does not grant access", func(t *testing.T) {
		flags := ActorFlags{Status: model.ActorStatusSuspended, ComplianceStatus: model.ComplianceApproved}

		st := Evaluate(driverRequired, nil, flags)

		assert.NotEqual(t, StatusApproved, st.OverallStatus)
		assert.False(t, st.CanAccessPlatform)
	})

	t.Run("unknown verification status counts as pending", func(t *testing.T) {
		docs := []model.Document{doc("identity_document", "in_review")}
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.CompliancePending}

		st := Evaluate([]string{"identity_document"}, docs, flags)

		assert.Equal(t, []string{"identity_document"}, st.Checklist.Pending)
		assert.Equal(t, StatusIncomplete, st.OverallStatus)
	})

	t.Run("latest record per type supersedes earlier uploads", func(t *testing.T) {
		docs := []model.Document{
			doc("identity_document", model.VerificationRejected),
			doc("identity_document", model.VerificationVerified),
		}
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.CompliancePending}

		st := Evaluate([]string{"identity_document"}, docs, flags)

		assert.Equal(t, []string{"identity_document"}, st.Checklist.Approved)
		assert.Empty(t, st.Checklist.Rejected)
		assert.Equal(t, StatusPending, st.OverallStatus)
	})

	t.Run("partition covers every uploaded type exactly once", func(t *testing.T) {
		docs := []model.Document{
			doc("identity_document", model.VerificationVerified),
			doc("drivers_license", model.VerificationRejected),
			doc("banking_proof", model.VerificationPending),
			doc("extra_certificate", "weird"),
		}
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.CompliancePending}

		st := Evaluate(driverRequired, docs, flags)

		uploaded := len(st.Checklist.Approved) + len(st.Checklist.Rejected) + len(st.Checklist.Pending)
		assert.Equal(t, 4, uploaded)
		for _, m := range st.Checklist.Missing {
			assert.NotContains(t, st.Checklist.Approved, m)
			assert.NotContains(t, st.Checklist.Rejected, m)
			assert.NotContains(t, st.Checklist.Pending, m)
		}
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		docs := []model.Document{
			doc("identity_document", model.VerificationVerified),
			doc("drivers_license", model.VerificationPending),
		}
		flags := ActorFlags{Status: model.ActorStatusPending, ComplianceStatus: model.CompliancePending}

		assert.Equal(t, Evaluate(driverRequired, docs, flags), Evaluate(driverRequired, docs, flags))
	})
}

func TestRuleSetFor(t *testing.T) {
	rules := DefaultRules()

	t.Run("conditional requirements off by default", func(t *testing.T) {
		required := rules.For(model.OwnerDriver, nil)

		assert.NotContains(t, required, "professional_driving_permit")
		assert.NotContains(t, required, "hazmat_training_certificate")
		assert.Len(t, required, 5)
	})

	t.Run("attributes switch conditional requirements on", func(t *testing.T) {
		required := rules.For(model.OwnerDriver, map[string]bool{
			"transports_fuel": true,
			"handles_hazmat":  true,
		})

		assert.Contains(t, required, "professional_driving_permit")
		assert.Contains(t, required, "hazmat_training_certificate")
		assert.Len(t, required, 7)
	})

	t.Run("vehicle conditionals", func(t *testing.T) {
		required := rules.For(model.OwnerVehicle, map[string]bool{"handles_hazmat": true})

		assert.Contains(t, required, "hazardous_goods_permit")
		assert.NotContains(t, required, "letter_of_authority")
	})

	t.Run("unknown role has no requirements", func(t *testing.T) {
		assert.Empty(t, rules.For(model.OwnerCustomer, nil))
	})

	t.Run("alternate rule set injection", func(t *testing.T) {
		custom := RuleSet{model.OwnerCustomer: {{DocType: "identity_document"}}}

		assert.Equal(t, []string{"identity_document"}, custom.For(model.OwnerCustomer, nil))
	})
}
