package ingestors

import (
	"context"
	"time"

	"dns-insights/internal/models"
	"dns-insights/internal/shared/configs"
	"dns-insights/internal/shared/loggers"
	"dns-insights/internal/sources"
)

const dateLayout = "2006-01-02"

// IngestResult is the raw outcome of one ingestion run: the concatenated
// window rows in source order, the resolved window, and the true overall
// bounds of the source databases (not clipped to the window).
type IngestResult struct {
	Records  []models.QueryRecord
	Window   models.TimeWindow
	DBOldest time.Time
	DBLatest time.Time
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest resolves the configured window in loc, reads every configured
	// source chunk by chunk, and concatenates the rows preserving per-source
	// order. A source that cannot be opened or read fails the run; a window
	// matching no rows anywhere is an empty-result error.
	Ingest(ctx context.Context, loc *time.Location) (*IngestResult, error)
}

type ingestionService struct {
	cfg  configs.AnalysisConfig
	open func(path string) (sources.SourceStore, error)
	now  func() time.Time
}

func NewIngestionService(cfg configs.AnalysisConfig) IngestionService {
	return &ingestionService{
		cfg:  cfg,
		open: sources.Open,
		now:  time.Now,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, loc *time.Location) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	window := s.resolveWindow(loc)
	result := &IngestResult{Window: window}

	haveBounds := false
	for _, path := range s.cfg.SourcePaths() {
		store, err := s.open(path)
		if err != nil {
			return nil, newSourceUnavailableError(err)
		}

		rows, oldest, latest, hasRows, err := s.readSource(ctx, store, path, window)
		closeErr := store.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			logger.Warn().Err(closeErr).Str(loggers.FieldSource, path).Msg("failed to close source database")
		}

		result.Records = append(result.Records, rows...)
		if hasRows {
			if !haveBounds || oldest.Before(result.DBOldest) {
				result.DBOldest = oldest
			}
			if !haveBounds || latest.After(result.DBLatest) {
				result.DBLatest = latest
			}
			haveBounds = true
		}
	}

	if len(result.Records) == 0 {
		return nil, newEmptyResultError()
	}

	result.DBOldest = result.DBOldest.In(loc)
	result.DBLatest = result.DBLatest.In(loc)

	metricIngestDuration.Observe(time.Since(start).Seconds())
	logger.Info().
		Int("rows", len(result.Records)).
		Int64("window_start", window.StartTS).
		Int64("window_end", window.EndTS).
		Msg("ingested source databases")

	return result, nil
}

func (s *ingestionService) readSource(ctx context.Context, store sources.SourceStore, path string, window models.TimeWindow) ([]models.QueryRecord, time.Time, time.Time, bool, error) {
	logger := loggers.Ctx(ctx)

	info, err := store.Probe(ctx)
	if err != nil {
		return nil, time.Time{}, time.Time{}, false, newSourceUnavailableError(err)
	}

	var rows []models.QueryRecord
	reader := store.Read(window.StartTS, window.EndTS, info.ChunkSize)
	for {
		chunk, err := reader.Next(ctx)
		if err != nil {
			return nil, time.Time{}, time.Time{}, false, newSourceReadError(err)
		}
		if chunk == nil {
			break
		}
		rows = append(rows, chunk...)
		metricChunksRead.WithLabelValues(path).Inc()
	}
	metricRowsIngested.WithLabelValues(path).Add(float64(len(rows)))

	logger.Debug().
		Str(loggers.FieldSource, path).
		Int("rows", len(rows)).
		Int("chunk_size", info.ChunkSize).
		Msg("read source database")

	if !info.HasRows {
		return rows, time.Time{}, time.Time{}, false, nil
	}
	return rows, time.Unix(info.OldestTimestamp, 0), time.Unix(info.LatestTimestamp, 0), true, nil
}

// resolveWindow computes the half-open analysis window. With both explicit
// dates configured it spans the start date's midnight through the midnight
// after the end date, in loc, so the end date is fully included. Otherwise
// it is the trailing days-back window ending now: the end bound is now+1 so
// a row stamped in the current second survives the end-exclusive read, and
// the start steps back calendar days so the window length is unaffected by
// DST transitions.
func (s *ingestionService) resolveWindow(loc *time.Location) models.TimeWindow {
	if s.cfg.StartDate != "" && s.cfg.EndDate != "" {
		start, startErr := time.ParseInLocation(dateLayout, s.cfg.StartDate, loc)
		end, endErr := time.ParseInLocation(dateLayout, s.cfg.EndDate, loc)
		if startErr == nil && endErr == nil {
			return models.TimeWindow{
				StartTS: start.Unix(),
				EndTS:   end.AddDate(0, 0, 1).Unix(),
			}
		}
	}

	now := s.now().In(loc)
	return models.TimeWindow{
		StartTS: now.AddDate(0, 0, -s.cfg.Days).Unix(),
		EndTS:   now.Unix() + 1,
	}
}
