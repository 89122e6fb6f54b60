//go:build integration

package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/serverless-sample/internal/model"
)

func TestPostgresStoreCityLookupIntegration(t *testing.T) {
	ctx := context.Background()
	pg := setupIntegrationStore(t)

	city := &model.City{ID: 42, Name: "Szeged", PopulationDensity: 573.5}
	if err := pg.UpsertCity(ctx, city, false); err != nil {
		t.Fatalf("upsert city: %v", err)
	}
	if err := pg.UpsertCity(ctx, &model.City{ID: RestrictedCityID, Name: "Hidden", Country: "Nowhere"}, true); err != nil {
		t.Fatalf("upsert restricted city: %v", err)
	}

	exists, err := pg.Exists(ctx, city.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected city to exist")
	}

	exists, err = pg.Exists(ctx, 7)
	if err != nil {
		t.Fatalf("exists missing: %v", err)
	}
	if exists {
		t.Fatal("expected city 7 not to exist")
	}

	access, err := pg.HasAccess(ctx, RestrictedCityID)
	if err != nil {
		t.Fatalf("has access: %v", err)
	}
	if access {
		t.Fatal("expected restricted city to deny access")
	}

	got, err := pg.GetCity(ctx, city.ID, "Hungary")
	if err != nil {
		t.Fatalf("get city: %v", err)
	}
	if got.Name != city.Name || got.Country != "Hungary" || got.PopulationDensity != city.PopulationDensity {
		t.Fatalf("unexpected city: %#v", got)
	}

	if _, err := pg.GetCity(ctx, 7, "Hungary"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func setupIntegrationStore(t *testing.T) *Postgres {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	if err := Migrate(databaseURL); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping pg: %v", err)
	}

	if _, err := pool.Exec(context.Background(), `TRUNCATE TABLE cities`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewPostgres(pool)
}
