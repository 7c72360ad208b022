package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_fuel_types",
		SQL: `CREATE TABLE IF NOT EXISTS fuel_types (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  supplier_id UUID        NOT NULL,
  name        TEXT        NOT NULL,
  unit        TEXT        NOT NULL DEFAULT 'L',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_price_tiers",
		SQL: `CREATE TABLE IF NOT EXISTS price_tiers (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  fuel_type_id   UUID        NOT NULL REFERENCES fuel_types (id) ON DELETE CASCADE,
  min_volume     NUMERIC     NOT NULL CHECK (min_volume >= 0),
  price_per_unit NUMERIC     NOT NULL CHECK (price_per_unit > 0),
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (fuel_type_id, min_volume)
);`,
	},
	{
		Name: "create_table_actors",
		SQL: `CREATE TABLE IF NOT EXISTS actors (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner_type        TEXT        NOT NULL,
  status            TEXT        NOT NULL DEFAULT 'pending',
  compliance_status TEXT        NOT NULL DEFAULT 'pending',
  transports_fuel   BOOLEAN     NOT NULL DEFAULT FALSE,
  handles_hazmat    BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner_id            UUID        NOT NULL REFERENCES actors (id),
  owner_type          TEXT        NOT NULL,
  doc_type            TEXT        NOT NULL,
  filename            TEXT        NOT NULL,
  storage_path        TEXT        NOT NULL UNIQUE,
  size                BIGINT      NOT NULL CHECK (size >= 0),
  content_type        TEXT        NOT NULL,
  verification_status TEXT        NOT NULL DEFAULT 'pending',
  expiry_date         TIMESTAMPTZ,
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_price_tiers_fuel_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_price_tiers_fuel_type ON price_tiers (fuel_type_id);`,
	},
	{
		Name: "create_index_documents_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_owner ON documents (owner_id, doc_type);`,
	},
	{
		Name: "create_index_documents_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_status ON documents (verification_status);`,
	},
}

// EnsureMigrated checks if the 'documents' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.documents') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
