package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/serverless-sample/internal/apigateway"
	"github.com/serverless-sample/internal/config"
	"github.com/serverless-sample/internal/handler"
	"github.com/serverless-sample/internal/metrics"
	"github.com/serverless-sample/internal/service"
	"github.com/serverless-sample/internal/store"
)

// App holds the wired API and the resources it must release.
type App struct {
	Config   *config.Config
	Router   *handler.Router
	Registry *prometheus.Registry

	closers []func()
}

// Build wires stores, services and handlers from cfg.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg, Registry: prometheus.NewRegistry()}
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var cities store.CityStore
	if cfg.DatabaseURL != "" {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		a.closers = append(a.closers, pg.Close)
		cities = pg
		log.Info().Msg("using postgres city store")
	} else {
		cities = store.NewMemory()
		log.Info().Msg("DATABASE_URL not set, using canned city store")
	}

	gateway, err := apigateway.New(ctx, cfg.Region())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init api gateway client: %w", err)
	}

	a.Router = handler.NewAPIRouter(handler.Handlers{
		Cities:  handler.NewCitiesHandler(service.NewCitiesService(cities, cfg.DefaultCountry)),
		Swagger: handler.NewSwaggerHandler(service.NewSwaggerService(gateway, cfg.Swagger)),
		Health:  handler.NewHealthHandler(cfg.Version),
	}, metrics.NewRecorder(a.Registry))

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
