package statistics

import "dns-insights/internal/models"

// volumeStats computes the total and per-disposition counts and percentages.
// Percentages are defined as exactly 0.0 for an empty set.
func volumeStats(s *models.Summary, records []models.NormalizedRecord) {
	s.TotalQueries = len(records)
	for _, rec := range records {
		switch rec.StatusType {
		case models.StatusAllowed:
			s.AllowedCount++
		case models.StatusBlocked:
			s.BlockedCount++
		}
	}

	if s.TotalQueries > 0 {
		s.AllowedPct = float64(s.AllowedCount) / float64(s.TotalQueries) * 100
		s.BlockedPct = float64(s.BlockedCount) / float64(s.TotalQueries) * 100
	}
}
