package statistics

import "dns-insights/internal/models"

// streakStats finds the longest uninterrupted run of blocked and of allowed
// queries in timestamp order, reporting each run's length and start instant.
// "Other" records break both kinds of run.
func streakStats(s *models.Summary, records []models.NormalizedRecord) {
	blockedLen, blockedStart := longestStreak(records, models.StatusBlocked)
	allowedLen, allowedStart := longestStreak(records, models.StatusAllowed)

	s.LongestStreakLengthBlocked = blockedLen
	s.LongestStreakLengthAllowed = allowedLen

	if blockedLen > 0 {
		s.StreakDateBlocked = records[blockedStart].LocalTime.Format(fmtDateLong)
		s.StreakHourBlocked = records[blockedStart].LocalTime.Format(fmtHourMinute)
	} else {
		s.StreakDateBlocked = models.SentinelNA
		s.StreakHourBlocked = models.SentinelNA
	}

	if allowedLen > 0 {
		s.StreakDateAllowed = records[allowedStart].LocalTime.Format(fmtDateLong)
		s.StreakHourAllowed = records[allowedStart].LocalTime.Format(fmtHourMinute)
	} else {
		s.StreakDateAllowed = models.SentinelNA
		s.StreakHourAllowed = models.SentinelNA
	}
}

// longestStreak returns the length and start index of the longest run of
// records with the wanted status type. Equal-length runs keep the first one.
func longestStreak(records []models.NormalizedRecord, want models.StatusType) (int, int) {
	bestLen, bestStart := 0, 0
	curLen, curStart := 0, 0
	for i, rec := range records {
		if rec.StatusType == want {
			if curLen == 0 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestLen, bestStart = curLen, curStart
			}
		} else {
			curLen = 0
		}
	}
	return bestLen, bestStart
}
