package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serverless-sample/internal/model"
)

func (p *Postgres) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := p.qb().
		Select("1").
		Prefix("SELECT EXISTS (").
		From("cities").
		Where("id = ?", id).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("query city %d: %w", id, err)
	}
	return exists, nil
}

func (p *Postgres) HasAccess(ctx context.Context, id int64) (bool, error) {
	query, args, err := p.qb().
		Select("restricted").
		From("cities").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build access query: %w", err)
	}

	var restricted bool
	err = p.pool.QueryRow(ctx, query, args...).Scan(&restricted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query city %d access: %w", id, err)
	}
	return !restricted, nil
}

// GetCity loads a city; a row without a country falls back to defaultCountry.
func (p *Postgres) GetCity(ctx context.Context, id int64, defaultCountry string) (*model.City, error) {
	query, args, err := p.qb().
		Select("id", "name", "COALESCE(country, '')", "population_density").
		From("cities").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build city query: %w", err)
	}

	var city model.City
	err = p.pool.QueryRow(ctx, query, args...).Scan(&city.ID, &city.Name, &city.Country, &city.PopulationDensity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query city %d: %w", id, err)
	}

	if city.Country == "" {
		city.Country = defaultCountry
	}
	return &city, nil
}

// UpsertCity inserts or replaces a city row. Used for seeding.
func (p *Postgres) UpsertCity(ctx context.Context, city *model.City, restricted bool) error {
	query, args, err := p.qb().
		Insert("cities").
		Columns("id", "name", "country", "population_density", "restricted").
		Values(city.ID, city.Name, nullString(city.Country), city.PopulationDensity, restricted).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			population_density = EXCLUDED.population_density,
			restricted = EXCLUDED.restricted`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert city %d: %w", city.ID, err)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
