package store

import (
	"context"
	"errors"

	"github.com/serverless-sample/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CityStore defines read access to cities.
type CityStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
	HasAccess(ctx context.Context, id int64) (bool, error)
	GetCity(ctx context.Context, id int64, defaultCountry string) (*model.City, error)
}
