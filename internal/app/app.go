package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dns-insights/internal/aggregators"
	"dns-insights/internal/dashboards"
	internalhttp "dns-insights/internal/http"
	"dns-insights/internal/ingestors"
	"dns-insights/internal/normalizers"
	"dns-insights/internal/shared/configs"
	"dns-insights/internal/shared/loggers"
	"dns-insights/internal/shared/svcerrors"
	"dns-insights/internal/statistics"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	reloadService dashboards.ReloadService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "dns-insights").
		Logger()

	// Initialize pipeline stages
	ingestionService := ingestors.NewIngestionService(config.Analysis)
	normalizer := normalizers.NewNormalizer()
	engine := statistics.NewEngine()
	hourlyAggregator := aggregators.NewHourlyAggregator()
	plotBuilder := aggregators.NewPlotBuilder()

	reloadService := dashboards.NewReloadService(
		config.Analysis,
		ingestionService,
		normalizer,
		engine,
		hourlyAggregator,
		plotBuilder,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reloadService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		reloadService: reloadService,
	}, nil
}

// Start runs the initial reload and then serves HTTP in a blocking manner.
// A failed initial reload is fatal for a source problem; an empty window is
// tolerated so the service can come up before the appliance has data.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting dns-insights service on port %d (log_level=%s, sources=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Analysis.Sources)

	ctx := app.appLogger.WithContext(context.Background())
	if _, err := app.reloadService.Reload(ctx); err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok && !svcErr.IsInternalError() {
			app.appLogger.Warn().Err(err).Msg("initial reload produced no data, serving empty")
		} else {
			return fmt.Errorf("initial reload failed: %w", err)
		}
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
