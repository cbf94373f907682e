package statistics

import (
	"sort"

	"dns-insights/internal/models"
)

// diversityStats counts distinct clients and domains and finds the client
// that touched the widest set of distinct domains. Empty clients and domains
// denote missing values and never count.
func diversityStats(s *models.Summary, records []models.NormalizedRecord) {
	domainsByClient := make(map[string]map[string]struct{})
	allDomains := make(map[string]struct{})
	for _, rec := range records {
		if rec.Domain != "" {
			allDomains[rec.Domain] = struct{}{}
		}
		if rec.Client == "" || rec.Domain == "" {
			continue
		}
		set := domainsByClient[rec.Client]
		if set == nil {
			set = make(map[string]struct{})
			domainsByClient[rec.Client] = set
		}
		set[rec.Domain] = struct{}{}
	}

	clients := make(map[string]struct{})
	for _, rec := range records {
		if rec.Client != "" {
			clients[rec.Client] = struct{}{}
		}
	}

	s.UniqueClients = len(clients)
	s.UniqueDomains = len(allDomains)

	if len(domainsByClient) == 0 {
		s.MostDiverseClient = models.SentinelNA
		return
	}

	names := make([]string, 0, len(domainsByClient))
	for c := range domainsByClient {
		names = append(names, c)
	}
	sort.Strings(names)

	best := names[0]
	for _, c := range names[1:] {
		if len(domainsByClient[c]) > len(domainsByClient[best]) {
			best = c
		}
	}
	s.MostDiverseClient = best
	s.UniqueDomainsCount = len(domainsByClient[best])
}
