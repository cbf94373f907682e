package statistics

import "dns-insights/internal/models"

// topEntityStats computes the most frequent clients and domains, overall and
// per disposition, each domain paired with the client that queried it most.
func topEntityStats(s *models.Summary, records []models.NormalizedRecord) {
	p := periodStats(records)

	s.TopClient = p.TopClient
	s.TopAllowedClient = p.TopAllowedClient
	s.TopBlockedClient = p.TopBlockedClient
	s.TopAllowedDomain = p.TopAllowedDomain
	s.TopAllowedDomainCount = p.TopAllowedDomainCount
	s.TopAllowedDomainClient = p.TopAllowedDomainClient
	s.TopBlockedDomain = p.TopBlockedDomain
	s.TopBlockedDomainCount = p.TopBlockedDomainCount
	s.TopBlockedDomainClient = p.TopBlockedDomainClient
}

// periodStats derives the top-entity block for any record subset. The same
// shape serves the overall stats and the day/night partitions.
//
// A top domain's count is its occurrences across the whole subset regardless
// of disposition ("how often was this name seen"), while its top client is
// scoped to the disposition that made it the top domain.
func periodStats(records []models.NormalizedRecord) models.PeriodStats {
	p := models.PeriodStats{TotalQueries: len(records)}

	p.TopClient, _ = topKey(countBy(records, nil, keyClient))
	p.TopAllowedClient, _ = topKey(countBy(records, isAllowed, keyClient))
	p.TopBlockedClient, _ = topKey(countBy(records, isBlocked, keyClient))

	p.TopAllowedDomain, _ = topKey(countBy(records, isAllowed, keyDomain))
	p.TopBlockedDomain, _ = topKey(countBy(records, isBlocked, keyDomain))

	if p.TopAllowedDomain != models.SentinelNA {
		p.TopAllowedDomainCount = domainOccurrences(records, p.TopAllowedDomain)
		p.TopAllowedDomainClient, _ = topKey(countBy(records, func(r models.NormalizedRecord) bool {
			return isAllowed(r) && r.Domain == p.TopAllowedDomain
		}, keyClient))
	} else {
		p.TopAllowedDomainClient = models.SentinelNA
	}

	if p.TopBlockedDomain != models.SentinelNA {
		p.TopBlockedDomainCount = domainOccurrences(records, p.TopBlockedDomain)
		p.TopBlockedDomainClient, _ = topKey(countBy(records, func(r models.NormalizedRecord) bool {
			return isBlocked(r) && r.Domain == p.TopBlockedDomain
		}, keyClient))
	} else {
		p.TopBlockedDomainClient = models.SentinelNA
	}

	return p
}

func domainOccurrences(records []models.NormalizedRecord, domain string) int {
	n := 0
	for _, rec := range records {
		if rec.Domain == domain {
			n++
		}
	}
	return n
}

// dayNightStats partitions the set by day period and computes the top-entity
// block for each partition. Either partition may be empty (all traffic at
// night, say) and still renders via sentinels.
func dayNightStats(s *models.Summary, records []models.NormalizedRecord) {
	var day, night []models.NormalizedRecord
	for _, rec := range records {
		if rec.DayPeriod == models.PeriodDay {
			day = append(day, rec)
		} else {
			night = append(night, rec)
		}
	}
	s.Day = periodStats(day)
	s.Night = periodStats(night)
}
