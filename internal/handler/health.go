package handler

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/serverless-sample/internal/httputil"
)

// HealthResource is probed by the integration tests and load balancers.
const HealthResource = "/health/check"

type HealthHandler struct {
	version   string
	startTime time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: time.Now(),
	}
}

type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (h *HealthHandler) Check(_ context.Context, _ events.APIGatewayProxyRequest) httputil.Response {
	return httputil.OK(HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}
