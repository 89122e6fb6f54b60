package store

import (
	"context"
	"math/rand"

	"github.com/serverless-sample/internal/model"
)

// RestrictedCityID is the one city the canned store denies access to.
const RestrictedCityID int64 = 666

// Memory is a canned CityStore: every positive ID exists and resolves to Budapest.
type Memory struct {
	density func() float64
}

func NewMemory() *Memory {
	return &Memory{density: rand.Float64}
}

func (m *Memory) Exists(_ context.Context, id int64) (bool, error) {
	return id > 0, nil
}

func (m *Memory) HasAccess(_ context.Context, id int64) (bool, error) {
	return id != RestrictedCityID, nil
}

func (m *Memory) GetCity(_ context.Context, id int64, defaultCountry string) (*model.City, error) {
	return &model.City{
		ID:                id,
		Name:              "Budapest",
		Country:           defaultCountry,
		PopulationDensity: m.density(),
	}, nil
}
