package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/serverless-sample/internal/model"
	"github.com/serverless-sample/internal/store"
)

// CitiesService looks up cities and enforces per-city access.
type CitiesService struct {
	store          store.CityStore
	defaultCountry string
}

// NewCitiesService creates a new cities service.
func NewCitiesService(store store.CityStore, defaultCountry string) *CitiesService {
	return &CitiesService{store: store, defaultCountry: defaultCountry}
}

// GetCity returns the city with the given ID.
func (s *CitiesService) GetCity(ctx context.Context, id int64) (*model.GetCityResult, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("city_id", id).Msg("failed to check city existence")
		return nil, NewInternal(CodeGeneralError, "Failed to look up city")
	}
	if !exists {
		return nil, NewNotFound(CodeUnknownCity, "There is no city with the specified ID!")
	}

	allowed, err := s.store.HasAccess(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("city_id", id).Msg("failed to check city access")
		return nil, NewInternal(CodeGeneralError, "Failed to look up city")
	}
	if !allowed {
		return nil, NewForbidden(CodePermissionRequired,
			"You have no permission to access the city with the specified ID!")
	}

	city, err := s.store.GetCity(ctx, id, s.defaultCountry)
	if err != nil {
		log.Error().Err(err).Int64("city_id", id).Msg("failed to load city")
		return nil, NewInternal(CodeGeneralError, "Failed to look up city")
	}

	return &model.GetCityResult{City: city}, nil
}
