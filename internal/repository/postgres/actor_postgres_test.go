package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"fuelmarket/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestActorPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewActorPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "owner_type", "status", "compliance_status",
			"transports_fuel", "handles_hazmat", "created_at",
		}).AddRow("driver-1", model.OwnerDriver, model.ActorStatusPending,
			model.CompliancePending, true, false, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM actors WHERE id = ?").
			WithArgs("driver-1").
			WillReturnRows(rows)

		actor, err := repo.FindByID(ctx, "driver-1")

		assert.NoError(t, err)
		assert.Equal(t, "driver-1", actor.ID)
		assert.True(t, actor.TransportsFuel)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM actors WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		actor, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, actor)
	})
}

func TestActorPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewActorPostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE actors SET status").
			WithArgs("driver-1", model.ActorStatusActive, model.ComplianceApproved).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, "driver-1", model.ActorStatusActive, model.ComplianceApproved))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE actors SET status").
			WithArgs("missing", model.ActorStatusRejected, model.ComplianceRejected).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "missing", model.ActorStatusRejected, model.ComplianceRejected)

		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}
