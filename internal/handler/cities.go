package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/serverless-sample/internal/httputil"
	"github.com/serverless-sample/internal/model"
	"github.com/serverless-sample/internal/service"
)

// CityResource is the API Gateway resource template of the city lookup.
const CityResource = "/cities/{id}"

// CityGetter is implemented by service.CitiesService.
type CityGetter interface {
	GetCity(ctx context.Context, id int64) (*model.GetCityResult, error)
}

type CitiesHandler struct {
	service CityGetter
}

func NewCitiesHandler(svc CityGetter) *CitiesHandler {
	return &CitiesHandler{service: svc}
}

// GetCity validates the id path parameter before the service is called.
func (h *CitiesHandler) GetCity(ctx context.Context, req events.APIGatewayProxyRequest) httputil.Response {
	raw := strings.TrimSpace(req.PathParameters["id"])
	if raw == "" {
		return httputil.BadRequest(service.CodeMissingID, "Please specify the city ID!")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return httputil.BadRequest(service.CodeInvalidID, "The city ID must be a number!")
	}

	result, err := h.service.GetCity(ctx, id)
	if err != nil {
		return httputil.RespondError(err)
	}

	return httputil.OK(result)
}
