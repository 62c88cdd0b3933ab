/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import (
	"context"
	"net/http"

	"github.com/acronis/go-appkit/httpserver"
	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dumppro/leadsvc/internal/location"
	"github.com/dumppro/leadsvc/internal/ratelimit"
	"github.com/dumppro/leadsvc/internal/storage"
	"github.com/dumppro/leadsvc/internal/submission"
)

// MaxRequestBodySize bounds form payloads. The largest legitimate submission
// is well under this.
const MaxRequestBodySize = 1024 * 1024

// RouterParams carries the dependencies of the API router.
type RouterParams struct {
	Logger      log.FieldLogger
	ErrorDomain string

	Pipeline  *submission.Pipeline
	Store     storage.Store
	Locations *location.Directory
	Limiter   *ratelimit.Limiter

	ContactPolicy ratelimit.Policy
	QuotePolicy   ratelimit.Policy
	APIPolicy     ratelimit.Policy

	CORSAllowedOrigins []string

	Metrics *MetricsCollector
	// HTTPRequestMetrics enables per-route request metrics when set.
	HTTPRequestMetrics *middleware.HTTPRequestPrometheusMetrics
}

// NewRouter builds the service HTTP handler: the form endpoints guarded by
// admission control, the reference-data endpoints, the rate-limiter
// maintenance hooks, and the health-check and metrics endpoints.
func NewRouter(p RouterParams) chi.Router {
	if p.Metrics == nil {
		p.Metrics = NewMetricsCollector("")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(p.Logger))
	if p.HTTPRequestMetrics != nil {
		router.Use(middleware.HTTPRequestMetricsWithOpts(p.HTTPRequestMetrics, httpserver.GetChiRoutePattern,
			middleware.HTTPRequestMetricsOpts{ExcludedEndpoints: []string{"/healthz", "/metrics"}}))
	}
	router.Use(middleware.Recovery(p.ErrorDomain))
	router.Use(middleware.RequestBodyLimit(MaxRequestBodySize, p.ErrorDomain))

	router.Method(http.MethodGet, "/healthz", httpserver.NewHealthCheckHandlerContext(newHealthCheck(p.Store)))
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	contactLimit := ratelimit.MiddlewareWithOpts(p.Limiter, p.ContactPolicy, ratelimit.MiddlewareOpts{
		KeyPrefix: "contact",
		OnReject:  newRejectObserver(p.Metrics, "contact"),
	})
	quoteLimit := ratelimit.MiddlewareWithOpts(p.Limiter, p.QuotePolicy, ratelimit.MiddlewareOpts{
		KeyPrefix: "quote",
		OnReject:  newRejectObserver(p.Metrics, "quote"),
	})
	apiLimit := ratelimit.MiddlewareWithOpts(p.Limiter, p.APIPolicy, ratelimit.MiddlewareOpts{
		KeyPrefix: "api",
		OnReject:  newRejectObserver(p.Metrics, "api"),
	})

	router.Route("/api", func(router chi.Router) {
		// Cross-origin browsers submit the contact form directly, so it is the
		// only endpoint that carries the CORS contract. The preflight OPTIONS
		// is answered by the middleware and is not counted against the limit.
		router.Group(func(router chi.Router) {
			router.Use(CORSMiddleware(p.CORSAllowedOrigins))
			router.Options("/contact", func(http.ResponseWriter, *http.Request) {})
			router.With(contactLimit).Post("/contact", newContactHandler(p.Pipeline, p.Metrics))
		})

		router.With(quoteLimit).Post("/quote", newQuoteHandler(p.Pipeline, p.Metrics))

		router.Group(func(router chi.Router) {
			router.Use(apiLimit)
			router.Get("/locations/states", newStatesHandler(p.Locations))
			router.Get("/locations/states/{state}/cities", newStateCitiesHandler(p.Locations))
			router.Get("/sizes", newSizesHandler())

			router.Route("/admin/rate-limits", func(router chi.Router) {
				router.Get("/", newRateLimitStatsHandler(p.Limiter))
				router.Delete("/", newRateLimitClearHandler(p.Limiter))
				router.Delete("/{key}", newRateLimitResetHandler(p.Limiter))
			})
		})
	})

	return router
}

func newHealthCheck(store storage.Store) httpserver.HealthCheckContext {
	return func(ctx context.Context) (httpserver.HealthCheckResult, error) {
		status := httpserver.HealthCheckStatusOK
		if err := store.Ping(ctx); err != nil {
			status = httpserver.HealthCheckStatusFail
		}
		return httpserver.HealthCheckResult{"storage": status}, nil
	}
}

func newRejectObserver(metrics *MetricsCollector, endpoint string) func(*http.Request, ratelimit.Decision) {
	if metrics == nil {
		return nil
	}
	return func(*http.Request, ratelimit.Decision) {
		metrics.observeRateLimitReject(endpoint)
	}
}
