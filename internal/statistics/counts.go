package statistics

import (
	"sort"

	"dns-insights/internal/models"
)

// countBy tallies records by key, restricted to those passing include (nil
// means all). Empty keys mean a missing value and are never counted, so null
// clients cannot win a ranking.
func countBy(records []models.NormalizedRecord, include func(models.NormalizedRecord) bool, key func(models.NormalizedRecord) string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		if include != nil && !include(rec) {
			continue
		}
		k := key(rec)
		if k == "" {
			continue
		}
		counts[k]++
	}
	return counts
}

// topKey picks the entry with the maximum count. Ties are broken by the
// lexicographically smallest key so the result is deterministic for a given
// input; callers must only rely on the count being maximal. An empty map
// yields the N/A sentinel with count 0.
func topKey(counts map[string]int) (string, int) {
	if len(counts) == 0 {
		return models.SentinelNA, 0
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestCount := keys[0], counts[keys[0]]
	for _, k := range keys[1:] {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best, bestCount
}

// TopNKeys returns up to n keys ordered by descending count, ties broken by
// the lexicographically smaller key. Fewer than n distinct keys yield them
// all; n <= 0 yields an empty slice.
func TopNKeys(counts map[string]int, n int) []string {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func keyClient(rec models.NormalizedRecord) string { return rec.Client }
func keyDomain(rec models.NormalizedRecord) string { return rec.Domain }

func isAllowed(rec models.NormalizedRecord) bool { return rec.StatusType == models.StatusAllowed }
func isBlocked(rec models.NormalizedRecord) bool { return rec.StatusType == models.StatusBlocked }
