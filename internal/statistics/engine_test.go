package statistics

import (
	"context"
	"testing"
	"time"

	"dns-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkRecord builds a normalized record at ts (epoch seconds, UTC) with derived
// columns filled the same way the normalizer fills them.
func mkRecord(ts int64, status int, domain, client string, reply *float64) models.NormalizedRecord {
	localTime := time.Unix(ts, 0).UTC()
	y, m, d := localTime.Date()
	hour := localTime.Hour()
	return models.NormalizedRecord{
		QueryRecord: models.QueryRecord{
			Timestamp: ts,
			Status:    status,
			Domain:    domain,
			Client:    client,
			ReplyTime: reply,
		},
		LocalTime:  localTime,
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Hour:       hour,
		DayPeriod:  models.DayPeriodForHour(hour),
		DayName:    localTime.Weekday().String(),
		StatusType: models.ClassifyStatus(status),
	}
}

func fptr(v float64) *float64 { return &v }

func TestEngine_Compute_EmptySet(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	s := engine.Compute(context.Background(), nil, time.Time{}, time.Time{})
	require.NotNil(t, s)

	assert.Equal(t, 0, s.NDataPoints)
	assert.Equal(t, 0, s.TotalQueries)
	assert.Equal(t, 0.0, s.AllowedPct)
	assert.Equal(t, 0.0, s.BlockedPct)
	assert.Equal(t, models.SentinelNA, s.MinDate)
	assert.Equal(t, models.SentinelNA, s.TopClient)
	assert.Equal(t, models.SentinelNA, s.TopAllowedDomain)
	assert.Equal(t, models.SentinelNA, s.MostPersistentClient)
	assert.Equal(t, models.SentinelNA, s.DateMostQueries)
	assert.Equal(t, models.SentinelNA, s.MostActiveDay)
	assert.Equal(t, models.SentinelNA, s.StreakDateBlocked)
	assert.Equal(t, models.SentinelNA, s.BeforeGap)
	assert.Equal(t, models.SentinelNA, s.MostDiverseClient)
	assert.Equal(t, models.SentinelNA, s.SlowestDomain)
	assert.Nil(t, s.MaxIdleSeconds)
	assert.Nil(t, s.AvgTimeBetweenBlocked)
	assert.Nil(t, s.AvgTimeBetweenAllowed)
	assert.Equal(t, 0, s.Day.TotalQueries)
	assert.Equal(t, models.SentinelNA, s.Night.TopClient)
}

func TestEngine_Compute_PercentagesSumToWhole(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC).Unix()
	var records []models.NormalizedRecord
	for i := 0; i < 60; i++ {
		records = append(records, mkRecord(base+int64(i), 2, "ok.example.com", "10.0.0.1", nil))
	}
	for i := 0; i < 30; i++ {
		records = append(records, mkRecord(base+int64(100+i), 1, "ads.example.com", "10.0.0.2", nil))
	}
	for i := 0; i < 10; i++ {
		records = append(records, mkRecord(base+int64(200+i), 0, "weird.example.com", "10.0.0.3", nil))
	}

	engine := NewEngine()
	s := engine.Compute(context.Background(), records, time.Unix(base, 0).UTC(), time.Unix(base+300, 0).UTC())

	assert.Equal(t, 100, s.TotalQueries)
	assert.Equal(t, 60, s.AllowedCount)
	assert.Equal(t, 30, s.BlockedCount)
	assert.InDelta(t, 60.0, s.AllowedPct, 1e-9)
	assert.InDelta(t, 30.0, s.BlockedPct, 1e-9)
	// Other rows keep the two percentages below 100 together.
	assert.LessOrEqual(t, s.AllowedPct+s.BlockedPct, 100.0)
}

func TestVolumeStats_EmptySetYieldsZeroPercentages(t *testing.T) {
	t.Parallel()

	var s models.Summary
	volumeStats(&s, nil)

	assert.Equal(t, 0, s.TotalQueries)
	assert.Equal(t, 0.0, s.AllowedPct)
	assert.Equal(t, 0.0, s.BlockedPct)
}

func TestDayNightStats_Partition(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []models.NormalizedRecord{
		// Night: hours 0-5
		mkRecord(day.Add(2*time.Hour).Unix(), 2, "night-ok.example.com", "10.0.0.9", nil),
		mkRecord(day.Add(5*time.Hour).Unix(), 1, "night-ads.example.com", "10.0.0.9", nil),
		// Day: hours 6-23
		mkRecord(day.Add(6*time.Hour).Unix(), 2, "day-ok.example.com", "10.0.0.1", nil),
		mkRecord(day.Add(14*time.Hour).Unix(), 2, "day-ok.example.com", "10.0.0.1", nil),
		mkRecord(day.Add(23*time.Hour).Unix(), 1, "day-ads.example.com", "10.0.0.2", nil),
	}

	var s models.Summary
	dayNightStats(&s, records)

	assert.Equal(t, 3, s.Day.TotalQueries)
	assert.Equal(t, 2, s.Night.TotalQueries)
	assert.Equal(t, "10.0.0.1", s.Day.TopClient)
	assert.Equal(t, "10.0.0.9", s.Night.TopClient)
	assert.Equal(t, "day-ok.example.com", s.Day.TopAllowedDomain)
	assert.Equal(t, "night-ads.example.com", s.Night.TopBlockedDomain)
}

func TestDayNightStats_EmptyPartitionYieldsSentinels(t *testing.T) {
	t.Parallel()

	// All traffic at night.
	night := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)
	records := []models.NormalizedRecord{
		mkRecord(night.Unix(), 2, "ok.example.com", "10.0.0.1", nil),
	}

	var s models.Summary
	dayNightStats(&s, records)

	assert.Equal(t, 0, s.Day.TotalQueries)
	assert.Equal(t, models.SentinelNA, s.Day.TopClient)
	assert.Equal(t, models.SentinelNA, s.Day.TopAllowedDomain)
	assert.Equal(t, 1, s.Night.TotalQueries)
	assert.Equal(t, "10.0.0.1", s.Night.TopClient)
}
