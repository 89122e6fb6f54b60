package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/serverless-sample/internal/httputil"
	"github.com/serverless-sample/internal/metrics"
	"github.com/serverless-sample/internal/service"
)

// Func handles one API Gateway request and always returns exactly one response.
type Func func(ctx context.Context, req events.APIGatewayProxyRequest) httputil.Response

// Route is a registered method and API Gateway resource template, e.g. "GET /cities/{id}".
type Route struct {
	Method   string
	Resource string
}

func (r Route) String() string {
	return r.Method + " " + r.Resource
}

// Router dispatches requests on HTTPMethod and Resource, so a single Lambda
// function can serve every route.
type Router struct {
	routes  map[Route]Func
	metrics *metrics.Recorder
}

func NewRouter(rec *metrics.Recorder) *Router {
	return &Router{routes: make(map[Route]Func), metrics: rec}
}

// Handle registers h for method and resource.
func (rt *Router) Handle(method, resource string, h Func) {
	route := Route{Method: method, Resource: resource}
	rt.routes[route] = rt.instrument(route.String(), h)
}

// Routes returns the registered routes in a stable order.
func (rt *Router) Routes() []Route {
	routes := make([]Route, 0, len(rt.routes))
	for r := range rt.routes {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].String() < routes[j].String()
	})
	return routes
}

// Serve answers req with the handler registered for its route.
func (rt *Router) Serve(ctx context.Context, req events.APIGatewayProxyRequest) httputil.Response {
	h, ok := rt.routes[Route{Method: req.HTTPMethod, Resource: req.Resource}]
	if !ok {
		h = rt.instrument("", notFound)
	}
	return h(ctx, req)
}

// Lambda adapts the router to the signature expected by lambda.Start.
// The error result is always nil; failures travel in the response body.
func (rt *Router) Lambda() func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return rt.Serve(ctx, req), nil
	}
}

func (rt *Router) instrument(route string, h Func) Func {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) httputil.Response {
		start := time.Now()
		resp := h(ctx, req)
		elapsed := time.Since(start)

		if rt.metrics != nil {
			rt.metrics.Observe(route, resp.StatusCode, elapsed)
		}

		event := log.Info()
		if resp.StatusCode >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", req.RequestContext.RequestID).
			Str("method", req.HTTPMethod).
			Str("path", req.Path).
			Str("route", route).
			Int("status", resp.StatusCode).
			Dur("duration", elapsed).
			Msg("request handled")

		return resp
	}
}

func notFound(_ context.Context, req events.APIGatewayProxyRequest) httputil.Response {
	return httputil.NotFound(service.CodeRouteNotFound, "There is no endpoint at "+req.HTTPMethod+" "+req.Path+"!")
}
