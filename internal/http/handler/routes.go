package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"fuelmarket/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Marketplace
// write routes take the gate middleware so only compliant actors reach them;
// reads (including an actor's own checklist) are never gated.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	pricingSvc service.PricingService,
	complianceSvc service.ComplianceService,
	gate fiber.Handler,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Pricing
	app.Get("/fuel-types/:id/tiers", ListTiers(pricingSvc))
	app.Get("/fuel-types/:id/quote", QuoteVolume(pricingSvc))
	app.Post("/fuel-types/:id/tiers", gate, CreateTier(pricingSvc))
	app.Delete("/tiers/:id", gate, DeleteTier(pricingSvc))

	// Compliance documents
	app.Post("/actors/:id/documents", UploadDocument(complianceSvc))
	app.Get("/actors/:id/documents", ListDocuments(complianceSvc))
	app.Get("/actors/:id/compliance", GetCompliance(complianceSvc))
	app.Post("/actors/:id/status", UpdateActorStatus(complianceSvc))
	app.Post("/documents/:id/review", ReviewDocument(complianceSvc))
	app.Get("/documents/:id/download", DownloadDocument(complianceSvc))
}
