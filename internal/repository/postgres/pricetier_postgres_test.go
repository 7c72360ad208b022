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

var tierColumns = []string{"id", "fuel_type_id", "min_volume", "price_per_unit", "created_at"}

func TestPriceTierPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceTierPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	tier := &model.PriceTier{
		ID:           "tier-uuid",
		FuelTypeID:   "diesel-50",
		MinVolume:    1000,
		PricePerUnit: 17.90,
		CreatedAt:    now,
	}

	rows := sqlmock.NewRows(tierColumns).
		AddRow(tier.ID, tier.FuelTypeID, tier.MinVolume, tier.PricePerUnit, tier.CreatedAt)

	mock.ExpectQuery("INSERT INTO price_tiers").
		WithArgs(tier.ID, tier.FuelTypeID, tier.MinVolume, tier.PricePerUnit, tier.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, tier)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, tier.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceTierPostgres_ListByFuelType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceTierPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(tierColumns).
			AddRow("t1", "diesel-50", 0.0, 18.50, time.Now()).
			AddRow("t2", "diesel-50", 1000.0, 17.90, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM price_tiers WHERE fuel_type_id = ?").
			WithArgs("diesel-50").
			WillReturnRows(rows)

		tiers, err := repo.ListByFuelType(ctx, "diesel-50")

		assert.NoError(t, err)
		assert.Len(t, tiers, 2)
		assert.Equal(t, 17.90, tiers[1].PricePerUnit)
	})

	t.Run("no tiers", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM price_tiers WHERE fuel_type_id = ?").
			WithArgs("empty").
			WillReturnRows(sqlmock.NewRows(tierColumns))

		tiers, err := repo.ListByFuelType(ctx, "empty")

		assert.NoError(t, err)
		assert.Empty(t, tiers)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM price_tiers WHERE fuel_type_id = ?").
			WithArgs("boom").
			WillReturnError(errors.New("db down"))

		_, err := repo.ListByFuelType(ctx, "boom")

		assert.Error(t, err)
	})
}

func TestPriceTierPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceTierPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(tierColumns).
			AddRow("t1", "diesel-50", 0.0, 18.50, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM price_tiers WHERE id = ?").
			WithArgs("t1").
			WillReturnRows(rows)

		tier, err := repo.FindByID(ctx, "t1")

		assert.NoError(t, err)
		assert.Equal(t, "t1", tier.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM price_tiers WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		tier, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, tier)
	})
}

func TestPriceTierPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceTierPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM price_tiers WHERE id = ?").
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
