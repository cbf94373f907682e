package dashboards

import (
	"context"
	"sync"
	"time"

	"dns-insights/internal/aggregators"
	"dns-insights/internal/ingestors"
	"dns-insights/internal/models"
	"dns-insights/internal/normalizers"
	"dns-insights/internal/shared/configs"
	"dns-insights/internal/shared/loggers"
	"dns-insights/internal/shared/metrics"
	"dns-insights/internal/shared/svcerrors"
	"dns-insights/internal/shared/ulid"
	"dns-insights/internal/statistics"
)

// Snapshot is the complete set of artifacts produced by one reload run.
// Read-only after construction; serving replaces the whole snapshot, never
// mutates one.
type Snapshot struct {
	ReloadID string                    `json:"reloadId"`
	LoadedAt time.Time                 `json:"loadedAt"`
	Timezone string                    `json:"timezone"`
	Summary  *models.Summary           `json:"summary"`
	Hourly   *models.HourlyAggregation `json:"hourly"`
	Plots    *models.PlotData          `json:"plots"`
}

//go:generate mockgen -source=reload_service.go -destination=./mocks/reload_service_mock.go -package=mocks
type ReloadService interface {
	// Reload runs the full pipeline (ingest, filter, normalize, statistics,
	// hourly aggregation, plots) and atomically replaces the current
	// snapshot on success. On failure the previous snapshot stays served.
	Reload(ctx context.Context) (*Snapshot, error)
	// Current returns the latest snapshot, or a not-found error before the
	// first successful reload.
	Current(ctx context.Context) (*Snapshot, error)
}

type reloadService struct {
	cfg        configs.AnalysisConfig
	ingestion  ingestors.IngestionService
	normalizer normalizers.Normalizer
	engine     statistics.Engine
	hourly     aggregators.HourlyAggregator
	plots      aggregators.PlotBuilder

	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewReloadService(
	cfg configs.AnalysisConfig,
	ingestion ingestors.IngestionService,
	normalizer normalizers.Normalizer,
	engine statistics.Engine,
	hourly aggregators.HourlyAggregator,
	plots aggregators.PlotBuilder,
) ReloadService {
	return &reloadService{
		cfg:        cfg,
		ingestion:  ingestion,
		normalizer: normalizer,
		engine:     engine,
		hourly:     hourly,
		plots:      plots,
	}
}

func (s *reloadService) Reload(ctx context.Context) (*Snapshot, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	reloadID := ulid.NewULID()
	logger.Info().Str(loggers.FieldReloadID, reloadID).Msg("starting dashboard reload")

	snapshot, err := s.run(ctx, reloadID)
	if err != nil {
		code := ""
		if svcErr, ok := svcerrors.As(err); ok {
			code = svcErr.Code
		}
		metricReloads.WithLabelValues(code).Inc()
		logger.Error().Err(err).Str(loggers.FieldReloadID, reloadID).Msg("dashboard reload failed")
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	metricReloads.WithLabelValues(metrics.ValueNoError).Inc()
	metricReloadDuration.Observe(time.Since(start).Seconds())
	logger.Info().
		Str(loggers.FieldReloadID, reloadID).
		Int("rows", snapshot.Summary.NDataPoints).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("dashboard reload complete")

	return snapshot, nil
}

func (s *reloadService) run(ctx context.Context, reloadID string) (*Snapshot, error) {
	loc, _ := normalizers.ResolveTimezone(s.cfg.Timezone)

	ingested, err := s.ingestion.Ingest(ctx, loc)
	if err != nil {
		return nil, err
	}

	filtered := normalizers.IgnoreDomains(ctx, ingested.Records, s.cfg.IgnoreDomains)
	normalized := s.normalizer.Normalize(ctx, filtered, s.cfg.Timezone)

	summary := s.engine.Compute(ctx, normalized, ingested.DBOldest, ingested.DBLatest)
	hourly := s.hourly.Aggregate(ctx, normalized, s.cfg.TopClients)
	plots := s.plots.Build(ctx, normalized, s.cfg.TopClients, s.cfg.TopDomains)

	return &Snapshot{
		ReloadID: reloadID,
		LoadedAt: time.Now().UTC(),
		Timezone: loc.String(),
		Summary:  summary,
		Hourly:   hourly,
		Plots:    plots,
	}, nil
}

func (s *reloadService) Current(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot == nil {
		return nil, newNoSnapshotError()
	}
	return snapshot, nil
}
