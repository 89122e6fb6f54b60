package server

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"

	"github.com/serverless-sample/internal/handler"
	"github.com/serverless-sample/internal/httputil"
	"github.com/serverless-sample/internal/middleware"
)

const localStage = "local"

func apiHandler(rt *handler.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.Write(w, rt.Serve(r.Context(), toProxyRequest(r)))
	}
}

// toProxyRequest builds the event API Gateway would deliver for r.
func toProxyRequest(r *http.Request) events.APIGatewayProxyRequest {
	req := events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Headers:    make(map[string]string, len(r.Header)),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID: middleware.GetRequestID(r.Context()),
			Stage:     localStage,
		},
	}
	for k := range r.Header {
		req.Headers[k] = r.Header.Get(k)
	}
	if q := r.URL.Query(); len(q) > 0 {
		req.QueryStringParameters = make(map[string]string, len(q))
		for k := range q {
			req.QueryStringParameters[k] = q.Get(k)
		}
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		req.Resource = rctx.RoutePattern()
		if len(rctx.URLParams.Keys) > 0 {
			req.PathParameters = make(map[string]string, len(rctx.URLParams.Keys))
			for i, key := range rctx.URLParams.Keys {
				req.PathParameters[key] = rctx.URLParams.Values[i]
			}
		}
	}
	return req
}
