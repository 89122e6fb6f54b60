package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/serverless-sample/internal/service"
)

// Response is the wire-level response handed back to API Gateway.
type Response = events.APIGatewayProxyResponse

// ErrorResponse is the standard JSON error response body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the stable code and the human-readable description.
type ErrorDetail struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GenericErrorDescription is the only description ever sent for internal errors.
const GenericErrorDescription = "Sorry..."

// OK wraps result as the JSON body of a 200 response.
func OK(result any) Response {
	return respondJSON(http.StatusOK, result)
}

func BadRequest(code, description string) Response {
	return respondServiceError(service.NewBadRequest(code, description))
}

func Forbidden(code, description string) Response {
	return respondServiceError(service.NewForbidden(code, description))
}

func NotFound(code, description string) Response {
	return respondServiceError(service.NewNotFound(code, description))
}

func ConfigurationError(code, description string) Response {
	return respondServiceError(service.NewConfigurationError(code, description))
}

// InternalServerError logs err and answers with a fixed generic body.
// Nothing from err reaches the client.
func InternalServerError(err error) Response {
	log.Error().Err(err).Msg("internal server error")
	return respondServiceError(service.NewInternal(service.CodeGeneralError, GenericErrorDescription))
}

// RespondError builds the response for an error returned by a service.
// A *service.Error keeps its code and description; anything else becomes a generic 500.
func RespondError(err error) Response {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return InternalServerError(err)
	}

	switch svcErr.Kind {
	case service.KindBadRequest:
		return BadRequest(svcErr.Code, svcErr.Description)
	case service.KindForbidden:
		return Forbidden(svcErr.Code, svcErr.Description)
	case service.KindNotFound:
		return NotFound(svcErr.Code, svcErr.Description)
	case service.KindConfiguration:
		return ConfigurationError(svcErr.Code, svcErr.Description)
	case service.KindInternal:
		return InternalServerError(err)
	default:
		return InternalServerError(err)
	}
}

func respondServiceError(e *service.Error) Response {
	return respondJSON(e.Kind.HTTPStatus(), ErrorResponse{
		Error: ErrorDetail{Code: e.Code, Description: e.Description},
	})
}

func respondJSON(status int, data any) Response {
	body, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode response body")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{
			Error: ErrorDetail{Code: service.CodeGeneralError, Description: GenericErrorDescription},
		})
	}

	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Access-Control-Allow-Origin": "*"},
		Body:       string(body),
	}
}

// Write copies a built response onto w.
func Write(w http.ResponseWriter, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}
