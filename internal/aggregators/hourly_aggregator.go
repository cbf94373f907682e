package aggregators

import (
	"context"
	"sort"
	"time"

	"dns-insights/internal/models"
	"dns-insights/internal/shared/loggers"
	"dns-insights/internal/statistics"
)

//go:generate mockgen -source=hourly_aggregator.go -destination=./mocks/hourly_aggregator_mock.go -package=mocks
type HourlyAggregator interface {
	// Aggregate reduces the normalized set to sparse per-hour buckets keyed
	// by (hour start, disposition, client), plus the top clients by overall
	// query count clamped to topClients. Buckets are ordered by hour start,
	// then disposition, then client, so equal inputs aggregate identically.
	Aggregate(ctx context.Context, records []models.NormalizedRecord, topClients int) *models.HourlyAggregation
}

type hourlyAggregator struct{}

func NewHourlyAggregator() HourlyAggregator {
	return &hourlyAggregator{}
}

type bucketKey struct {
	hourStart  int64
	statusType models.StatusType
	client     string
}

func (a *hourlyAggregator) Aggregate(ctx context.Context, records []models.NormalizedRecord, topClients int) *models.HourlyAggregation {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	counts := make(map[bucketKey]int)
	hourStarts := make(map[int64]time.Time)
	clientTotals := make(map[string]int)
	for _, rec := range records {
		// Bucket on the local wall-clock hour; epoch-based truncation would
		// start buckets at :30 in half-hour-offset timezones.
		hs := time.Date(rec.LocalTime.Year(), rec.LocalTime.Month(), rec.LocalTime.Day(),
			rec.Hour, 0, 0, 0, rec.LocalTime.Location())
		k := bucketKey{hourStart: hs.Unix(), statusType: rec.StatusType, client: rec.Client}
		counts[k]++
		hourStarts[k.hourStart] = hs
		if rec.Client != "" {
			clientTotals[rec.Client]++
		}
	}

	keys := make([]bucketKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].hourStart != keys[j].hourStart {
			return keys[i].hourStart < keys[j].hourStart
		}
		if keys[i].statusType != keys[j].statusType {
			return keys[i].statusType < keys[j].statusType
		}
		return keys[i].client < keys[j].client
	})

	buckets := make([]models.HourlyBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, models.HourlyBucket{
			HourStart:  hourStarts[k.hourStart],
			StatusType: k.statusType,
			Client:     k.client,
			Count:      counts[k],
		})
	}

	agg := &models.HourlyAggregation{
		Buckets:    buckets,
		TopClients: statistics.TopNKeys(clientTotals, topClients),
	}

	metricAggregateDuration.WithLabelValues(aggregationHourly).Observe(time.Since(start).Seconds())
	logger.Debug().
		Int("rows", len(records)).
		Int("buckets", len(buckets)).
		Msg("built hourly aggregation")

	return agg
}
