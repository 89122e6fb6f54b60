package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/serverless-sample/internal/httputil"
	"github.com/serverless-sample/internal/model"
	"github.com/serverless-sample/internal/service"
)

// SwaggerResource serves the published API description.
const SwaggerResource = service.SwaggerJSONPath

// SwaggerDescriber is implemented by service.SwaggerService.
type SwaggerDescriber interface {
	GetSwaggerDescription(ctx context.Context) (model.SwaggerDocument, error)
}

type SwaggerHandler struct {
	service SwaggerDescriber
}

func NewSwaggerHandler(svc SwaggerDescriber) *SwaggerHandler {
	return &SwaggerHandler{service: svc}
}

func (h *SwaggerHandler) GetSwaggerJSON(ctx context.Context, _ events.APIGatewayProxyRequest) httputil.Response {
	doc, err := h.service.GetSwaggerDescription(ctx)
	if err != nil {
		return httputil.RespondError(err)
	}
	return httputil.OK(doc)
}
