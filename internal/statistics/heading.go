package statistics

import (
	"fmt"
	"time"

	"dns-insights/internal/models"
)

// headingStats fills the values shown under the dashboard's main heading:
// the size of the analyzed set, the full database bounds, and the span the
// window actually covers.
func headingStats(s *models.Summary, records []models.NormalizedRecord, dbOldest, dbLatest time.Time) {
	s.NDataPoints = len(records)
	s.OldestDataPoint = dbOldest.Format(fmtHeading)
	s.LatestDataPoint = dbLatest.Format(fmtHeading)

	if len(records) == 0 {
		s.MinDate = models.SentinelNA
		s.MaxDate = models.SentinelNA
		s.DataSpanStr = "0d,0h and 0min"
		return
	}

	first := records[0].LocalTime
	last := records[len(records)-1].LocalTime
	s.MinDate = first.Format(fmtHeading)
	s.MaxDate = last.Format(fmtHeading)

	span := last.Sub(first)
	days := int(span.Hours()) / 24
	hours := int(span.Hours()) % 24
	minutes := int(span.Minutes()) % 60
	s.DataSpanDays = days
	s.DataSpanStr = fmt.Sprintf("%dd,%dh and %dmin", days, hours, minutes)
}
