package statistics

import (
	"sort"
	"time"

	"dns-insights/internal/models"
)

// calendarActivityStats reduces per-calendar-date totals (all / allowed /
// blocked) to the busiest and quietest date of each series.
func calendarActivityStats(s *models.Summary, records []models.NormalizedRecord) {
	all := dateCounts(records, nil)
	allowed := dateCounts(records, isAllowed)
	blocked := dateCounts(records, isBlocked)

	s.DateMostQueries = bestDate(all, true)
	s.DateMostAllowed = bestDate(allowed, true)
	s.DateMostBlocked = bestDate(blocked, true)
	s.DateLeastQueries = bestDate(all, false)
	s.DateLeastAllowed = bestDate(allowed, false)
	s.DateLeastBlocked = bestDate(blocked, false)
}

type dateCount struct {
	date  time.Time
	count int
}

// dateCounts tallies records per calendar date, returned sorted ascending by
// date so reductions break ties on the earliest date.
func dateCounts(records []models.NormalizedRecord, include func(models.NormalizedRecord) bool) []dateCount {
	byUnix := make(map[int64]dateCount)
	for _, rec := range records {
		if include != nil && !include(rec) {
			continue
		}
		k := rec.Date.Unix()
		dc := byUnix[k]
		dc.date = rec.Date
		dc.count++
		byUnix[k] = dc
	}

	out := make([]dateCount, 0, len(byUnix))
	for _, dc := range byUnix {
		out = append(out, dc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date.Before(out[j].date) })
	return out
}

func bestDate(counts []dateCount, wantMax bool) string {
	if len(counts) == 0 {
		return models.SentinelNA
	}
	best := counts[0]
	for _, dc := range counts[1:] {
		if (wantMax && dc.count > best.count) || (!wantMax && dc.count < best.count) {
			best = dc
		}
	}
	return best.date.Format(fmtDateLong)
}

// hourActivityStats reduces per-hour totals to the most and least active
// hour of day with their counts. Only observed hours compete; an empty set
// reports hour 0 with count 0.
func hourActivityStats(s *models.Summary, records []models.NormalizedRecord) {
	counts := make(map[int]int)
	for _, rec := range records {
		counts[rec.Hour]++
	}
	if len(counts) == 0 {
		return
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	most, least := hours[0], hours[0]
	for _, h := range hours[1:] {
		if counts[h] > counts[most] {
			most = h
		}
		if counts[h] < counts[least] {
			least = h
		}
	}

	s.MostActiveHour = most
	s.LeastActiveHour = least
	s.AvgQueriesMost = counts[most]
	s.AvgQueriesLeast = counts[least]
}

// weekdayActivityStats averages per-date totals across dates sharing a
// weekday and reduces to the weekday with the highest and lowest mean,
// each reported as an integer-rounded mean.
func weekdayActivityStats(s *models.Summary, records []models.NormalizedRecord) {
	perDate := make(map[int64]int)
	dayNameOf := make(map[int64]string)
	for _, rec := range records {
		k := rec.Date.Unix()
		perDate[k]++
		dayNameOf[k] = rec.DayName
	}

	if len(perDate) == 0 {
		s.MostActiveDay = models.SentinelNA
		s.LeastActiveDay = models.SentinelNA
		return
	}

	totals := make(map[string]int)
	dates := make(map[string]int)
	for k, n := range perDate {
		name := dayNameOf[k]
		totals[name] += n
		dates[name]++
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	meanOf := func(name string) float64 {
		return float64(totals[name]) / float64(dates[name])
	}

	most, least := names[0], names[0]
	for _, name := range names[1:] {
		if meanOf(name) > meanOf(most) {
			most = name
		}
		if meanOf(name) < meanOf(least) {
			least = name
		}
	}

	s.MostActiveDay = most
	s.MostActiveAvg = int(meanOf(most))
	s.LeastActiveDay = least
	s.LeastActiveAvg = int(meanOf(least))
}
