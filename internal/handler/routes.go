package handler

import (
	"net/http"

	"github.com/serverless-sample/internal/metrics"
)

// Handlers groups everything served by the API.
type Handlers struct {
	Cities  *CitiesHandler
	Swagger *SwaggerHandler
	Health  *HealthHandler
}

// NewAPIRouter registers every API route on a new Router.
func NewAPIRouter(h Handlers, rec *metrics.Recorder) *Router {
	rt := NewRouter(rec)
	rt.Handle(http.MethodGet, CityResource, h.Cities.GetCity)
	rt.Handle(http.MethodGet, SwaggerResource, h.Swagger.GetSwaggerJSON)
	rt.Handle(http.MethodGet, HealthResource, h.Health.Check)
	return rt
}
