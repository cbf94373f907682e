package normalizers

import (
	"context"
	"testing"
	"time"

	"dns-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimezone(t *testing.T) {
	t.Parallel()

	loc, fellBack := ResolveTimezone("Europe/Berlin")
	assert.False(t, fellBack)
	assert.Equal(t, "Europe/Berlin", loc.String())

	loc, fellBack = ResolveTimezone("Not/AZone")
	assert.True(t, fellBack)
	assert.Equal(t, time.UTC, loc)

	loc, fellBack = ResolveTimezone("")
	assert.True(t, fellBack)
	assert.Equal(t, time.UTC, loc)
}

func TestNormalizer_Normalize_SortsAndDerives(t *testing.T) {
	t.Parallel()

	// 2024-03-10 04:30 UTC is night, 2024-03-10 15:00 UTC is day.
	night := time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC)
	day := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.QueryRecord{
		{ID: 2, Timestamp: day.Unix(), Status: 1, Domain: "ads.example.com", Client: "10.0.0.2"},
		{ID: 1, Timestamp: night.Unix(), Status: 2, Domain: "ok.example.com", Client: "10.0.0.1"},
	}

	normalized := NewNormalizer().Normalize(context.Background(), records, "UTC")
	require.Len(t, normalized, 2)

	// Sorted ascending by timestamp.
	assert.Equal(t, int64(1), normalized[0].ID)
	assert.Equal(t, int64(2), normalized[1].ID)

	first := normalized[0]
	assert.Equal(t, night, first.LocalTime)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 4, first.Hour)
	assert.Equal(t, models.PeriodNight, first.DayPeriod)
	assert.Equal(t, "Sunday", first.DayName)
	assert.Equal(t, models.StatusAllowed, first.StatusType)

	second := normalized[1]
	assert.Equal(t, 15, second.Hour)
	assert.Equal(t, models.PeriodDay, second.DayPeriod)
	assert.Equal(t, models.StatusBlocked, second.StatusType)

	// Input untouched.
	assert.Equal(t, int64(2), records[0].ID)
}

func TestNormalizer_Normalize_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	records := []models.QueryRecord{
		{ID: 1, Timestamp: ts.Unix(), Status: 2, Domain: "ok.example.com", Client: "10.0.0.1"},
	}

	normalized := NewNormalizer().Normalize(context.Background(), records, "Mars/Olympus")
	require.Len(t, normalized, 1)
	assert.Equal(t, 23, normalized[0].Hour)
	assert.Equal(t, time.UTC, normalized[0].LocalTime.Location())
}

func TestNormalizer_Normalize_Empty(t *testing.T) {
	t.Parallel()

	normalized := NewNormalizer().Normalize(context.Background(), nil, "UTC")
	assert.Empty(t, normalized)
}

func TestIgnoreDomains(t *testing.T) {
	t.Parallel()

	records := []models.QueryRecord{
		{ID: 1, Domain: "tracker.example.com"},
		{ID: 2, Domain: "ok.example.org"},
		{ID: 3, Domain: "cdn.tracker.net"},
	}

	tests := []struct {
		name    string
		pattern string
		wantIDs []int64
	}{
		{
			name:    "empty pattern is a no-op",
			pattern: "",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "matching records dropped",
			pattern: "tracker",
			wantIDs: []int64{2},
		},
		{
			name:    "invalid pattern returns input unfiltered",
			pattern: "tracker[",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "no matches keeps all",
			pattern: "doesnotmatch",
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kept := IgnoreDomains(context.Background(), records, tt.pattern)
			var ids []int64
			for _, rec := range kept {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
