package statistics

import (
	"sort"

	"dns-insights/internal/models"
)

// persistenceStats finds the (client, domain) pair with the most blocked
// repeat attempts: the client that kept hammering one blocked name.
func persistenceStats(s *models.Summary, records []models.NormalizedRecord) {
	type pair struct {
		client string
		domain string
	}
	attempts := make(map[pair]int)
	for _, rec := range records {
		if rec.StatusType != models.StatusBlocked || rec.Client == "" {
			continue
		}
		attempts[pair{rec.Client, rec.Domain}]++
	}

	if len(attempts) == 0 {
		s.MostPersistentClient = models.SentinelNA
		s.BlockedDomain = models.SentinelNA
		return
	}

	pairs := make([]pair, 0, len(attempts))
	for p := range attempts {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].client != pairs[j].client {
			return pairs[i].client < pairs[j].client
		}
		return pairs[i].domain < pairs[j].domain
	})

	best, bestCount := pairs[0], attempts[pairs[0]]
	for _, p := range pairs[1:] {
		if attempts[p] > bestCount {
			best, bestCount = p, attempts[p]
		}
	}

	s.MostPersistentClient = best.client
	s.BlockedDomain = best.domain
	s.RepeatAttempts = bestCount
}
