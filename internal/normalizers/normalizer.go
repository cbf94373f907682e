package normalizers

import (
	"context"
	"sort"
	"time"

	"dns-insights/internal/models"
	"dns-insights/internal/shared/loggers"
)

//go:generate mockgen -source=normalizer.go -destination=./mocks/normalizer_mock.go -package=mocks
type Normalizer interface {
	// Normalize derives the timezone-aware columns for every record. Pure:
	// same row count in and out, input untouched, empty in means empty out.
	Normalize(ctx context.Context, records []models.QueryRecord, timezone string) []models.NormalizedRecord
}

type normalizer struct{}

func NewNormalizer() Normalizer {
	return &normalizer{}
}

// ResolveTimezone validates an IANA timezone name. Invalid names degrade to
// UTC with fellBack=true; this never fails.
func ResolveTimezone(name string) (loc *time.Location, fellBack bool) {
	loc, err := time.LoadLocation(name)
	if err != nil || loc == nil {
		return time.UTC, true
	}
	return loc, false
}

func (n *normalizer) Normalize(ctx context.Context, records []models.QueryRecord, timezone string) []models.NormalizedRecord {
	logger := loggers.Ctx(ctx)

	loc, fellBack := ResolveTimezone(timezone)
	if fellBack {
		logger.Warn().
			Str(loggers.FieldTimezone, timezone).
			Msg("invalid timezone, falling back to UTC")
	}

	sorted := make([]models.QueryRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	normalized := make([]models.NormalizedRecord, len(sorted))
	for i, rec := range sorted {
		localTime := time.Unix(rec.Timestamp, 0).In(loc)
		y, m, d := localTime.Date()
		hour := localTime.Hour()

		normalized[i] = models.NormalizedRecord{
			QueryRecord: rec,
			LocalTime:   localTime,
			Date:        time.Date(y, m, d, 0, 0, 0, 0, loc),
			Hour:        hour,
			DayPeriod:   models.DayPeriodForHour(hour),
			DayName:     localTime.Weekday().String(),
			StatusType:  models.ClassifyStatus(rec.Status),
		}
	}

	logger.Debug().
		Int("rows", len(normalized)).
		Str(loggers.FieldTimezone, loc.String()).
		Msg("normalized query records")

	return normalized
}
