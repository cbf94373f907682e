package statistics

import "dns-insights/internal/models"

// idleGapStats finds the longest silence between two consecutive queries and
// the mean spacing between blocked and between allowed queries. All three
// need at least two qualifying rows; otherwise the pointer stays nil.
func idleGapStats(s *models.Summary, records []models.NormalizedRecord) {
	s.BeforeGap = models.SentinelNA
	s.AfterGap = models.SentinelNA

	if len(records) >= 2 {
		maxGap := 0.0
		before, after := 0, 1
		for i := 1; i < len(records); i++ {
			gap := records[i].LocalTime.Sub(records[i-1].LocalTime).Seconds()
			if gap > maxGap {
				maxGap = gap
				before, after = i-1, i
			}
		}
		s.MaxIdleSeconds = &maxGap
		s.BeforeGap = records[before].LocalTime.Format(fmtGapInstant)
		s.AfterGap = records[after].LocalTime.Format(fmtGapInstant)
	}

	s.AvgTimeBetweenBlocked = meanSpacing(records, isBlocked)
	s.AvgTimeBetweenAllowed = meanSpacing(records, isAllowed)
}

// meanSpacing is the mean of consecutive-timestamp differences over the
// subset passing include. With n rows that mean collapses to
// (last-first)/(n-1); nil when fewer than two rows qualify.
func meanSpacing(records []models.NormalizedRecord, include func(models.NormalizedRecord) bool) *float64 {
	var first, last int64
	n := 0
	for _, rec := range records {
		if !include(rec) {
			continue
		}
		if n == 0 {
			first = rec.Timestamp
		}
		last = rec.Timestamp
		n++
	}
	if n < 2 {
		return nil
	}
	mean := float64(last-first) / float64(n-1)
	return &mean
}
