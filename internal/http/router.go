package http

import (
	"net/http"

	"dns-insights/internal/dashboards"
	"dns-insights/internal/shared/loggers"
	"dns-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reloadService dashboards.ReloadService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	statsHandler := NewStatsHandler(reloadService)
	hourlyHandler := NewHourlyHandler(reloadService)
	plotsHandler := NewPlotsHandler(reloadService)
	reloadHandler := NewReloadHandler(reloadService)

	// Routes
	router.Get("/v1/stats", errorHandlingAdapter(statsHandler))
	router.Get("/v1/hourly", errorHandlingAdapter(hourlyHandler))
	router.Get("/v1/plots", errorHandlingAdapter(plotsHandler))
	router.Post("/v1/reload", errorHandlingAdapter(reloadHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
