package statistics

import (
	"context"
	"time"

	"dns-insights/internal/models"
	"dns-insights/internal/shared/loggers"
)

// Display formats for statistic values. These are part of the produced
// artifact contract; the presentation layer renders them verbatim.
const (
	fmtDateLong   = "02 January 2006"
	fmtHourMinute = "15:04"
	fmtHeading    = "2-1-2006 (15:04)"
	fmtGapInstant = "02-Jan 2006 15:04:05.00"
)

//go:generate mockgen -source=engine.go -destination=./mocks/engine_mock.go -package=mocks
type Engine interface {
	// Compute reduces a normalized, timestamp-sorted record set to the full
	// summary. dbOldest/dbLatest are the true overall bounds of the source
	// databases, not the filtered window; they frame the "database begins /
	// ends on" heading. Every reduction over a possibly-empty subgroup
	// yields a sentinel instead of failing, so a dashboard with partial
	// data still renders.
	Compute(ctx context.Context, records []models.NormalizedRecord, dbOldest, dbLatest time.Time) *models.Summary
}

type engine struct{}

func NewEngine() Engine {
	return &engine{}
}

func (e *engine) Compute(ctx context.Context, records []models.NormalizedRecord, dbOldest, dbLatest time.Time) *models.Summary {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	s := &models.Summary{}
	headingStats(s, records, dbOldest, dbLatest)
	volumeStats(s, records)
	topEntityStats(s, records)
	persistenceStats(s, records)
	calendarActivityStats(s, records)
	hourActivityStats(s, records)
	weekdayActivityStats(s, records)
	dayNightStats(s, records)
	streakStats(s, records)
	idleGapStats(s, records)
	diversityStats(s, records)
	latencyStats(s, records)

	metricComputeDuration.Observe(time.Since(start).Seconds())
	logger.Debug().
		Int("rows", len(records)).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("computed summary statistics")

	return s
}
