package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/serverless-sample/internal/config"
	"github.com/serverless-sample/internal/model"
)

// SwaggerJSONPath is the endpoint serving the description itself; it is
// removed from the published document.
const SwaggerJSONPath = "/swagger.json"

// DescriptionSource exports API descriptions from the hosting gateway.
type DescriptionSource interface {
	// RestAPIID returns the ID of the API named "<stageName>-<apiName>",
	// or "" when there is none.
	RestAPIID(ctx context.Context, stageName, apiName string) (string, error)
	ExportSwagger(ctx context.Context, restAPIID, stageName string) ([]byte, error)
	IsAccessDenied(err error) bool
}

// SwaggerService builds the public Swagger document for the deployed API.
type SwaggerService struct {
	source   DescriptionSource
	settings config.Swagger
}

// NewSwaggerService creates a new swagger service.
func NewSwaggerService(source DescriptionSource, settings config.Swagger) *SwaggerService {
	return &SwaggerService{source: source, settings: settings}
}

// GetSwaggerDescription exports the API description and prepares it for publishing.
func (s *SwaggerService) GetSwaggerDescription(ctx context.Context) (model.SwaggerDocument, error) {
	// All settings are checked before the gateway is contacted.
	if missing := s.settings.Missing(); len(missing) > 0 {
		return nil, NewConfigurationError(CodeMissingEnv,
			fmt.Sprintf("The following environment variables are missing: %s!", strings.Join(missing, ", ")))
	}

	restAPIID, err := s.source.RestAPIID(ctx, s.settings.StageName, s.settings.RestAPIName)
	if err != nil {
		return nil, s.classify(err)
	}
	if restAPIID == "" {
		return nil, NewNotFound(CodeInvalidName, "Cannot find the API with the specified name!")
	}

	raw, err := s.source.ExportSwagger(ctx, restAPIID, s.settings.StageName)
	if err != nil {
		return nil, s.classify(err)
	}

	var doc model.SwaggerDocument
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		log.Error().Err(err).Str("rest_api_id", restAPIID).Msg("failed to parse exported swagger")
		return nil, NewInternal(CodeGeneralError, "The exported API description is not valid JSON")
	}

	publishable(doc, s.settings.Title, s.settings.Version)
	return doc, nil
}

// publishable removes the description endpoint and the CORS preflight
// operations, and stamps the configured title and version.
func publishable(doc model.SwaggerDocument, title, version string) {
	if paths := doc.Paths(); paths != nil {
		delete(paths, SwaggerJSONPath)
		for _, item := range paths {
			if ops, ok := item.(map[string]any); ok {
				delete(ops, "options")
			}
		}
	}

	info := doc.Info()
	info["title"] = title
	info["version"] = version
}

func (s *SwaggerService) classify(err error) error {
	if s.source.IsAccessDenied(err) {
		return NewForbidden(CodeMissingPermission, "The service has no permission to read the API description!")
	}
	log.Error().Err(err).Msg("failed to fetch API description")
	return NewInternal(CodeGeneralError, "Failed to fetch the API description")
}
