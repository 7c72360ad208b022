package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fuelmarket/docs"
	"fuelmarket/internal/compliance"
	"fuelmarket/internal/config"
	"fuelmarket/internal/database"
	"fuelmarket/internal/database/migration"
	handlers "fuelmarket/internal/http/handler"
	"fuelmarket/internal/http/middleware"
	"fuelmarket/internal/otel"
	"fuelmarket/internal/repository/postgres"
	"fuelmarket/internal/service"
	"fuelmarket/internal/storage"
)

// @title Fuel Marketplace API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local
	ctx := context.Background()

	// Initialize tracing; shutdown flushes pending spans on exit
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Apply schema migrations before serving traffic
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories and services
	tierRepo := postgres.NewPriceTierPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)
	actorRepo := postgres.NewActorPostgres(db)

	pricingSvc := service.NewPricingService(tierRepo, cfg.VolumeUnit)
	complianceSvc := service.NewComplianceService(
		objStore,
		docRepo,
		actorRepo,
		compliance.DefaultRules(),
		time.Duration(cfg.PresignExpirySec)*time.Second,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMw.Handler())

	// Compliance gate for marketplace write routes
	gate := middleware.RoleGate(complianceSvc, promMw)

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, pricingSvc, complianceSvc, gate)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
