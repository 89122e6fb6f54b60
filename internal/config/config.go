package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	RegionName     string `env:"REGION_NAME"`
	AWSRegion      string `env:"AWS_REGION"`
	DefaultCountry string `env:"DEFAULT_COUNTRY,default=Hungary"`
	DatabaseURL    string `env:"DATABASE_URL"`
	Port           int    `env:"PORT,default=8080"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
	LogPretty      bool   `env:"LOG_PRETTY,default=false"`
	Version        string `env:"APP_VERSION,default=1.0.0"`

	// Swagger settings are not required at startup; SwaggerService reports
	// missing values as a configuration error when it is called.
	Swagger Swagger

	// HTTP server timeouts (local server only)
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT,default=60s"`
}

// Swagger holds the settings needed to export and rewrite the API description.
type Swagger struct {
	RestAPIName string `env:"REST_API_NAME"`
	StageName   string `env:"STAGE_NAME"`
	Title       string `env:"API_INFO_TITLE"`
	Version     string `env:"API_INFO_VERSION"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return fmt.Errorf("HTTP timeouts must be positive")
	}
	return nil
}

// Region prefers REGION_NAME and falls back to the runtime's AWS_REGION.
func (c *Config) Region() string {
	if c.RegionName != "" {
		return c.RegionName
	}
	return c.AWSRegion
}

// Missing returns the names of all unset variables, in declaration order.
func (s Swagger) Missing() []string {
	var missing []string
	if s.RestAPIName == "" {
		missing = append(missing, "REST_API_NAME")
	}
	if s.StageName == "" {
		missing = append(missing, "STAGE_NAME")
	}
	if s.Title == "" {
		missing = append(missing, "API_INFO_TITLE")
	}
	if s.Version == "" {
		missing = append(missing, "API_INFO_VERSION")
	}
	return missing
}
