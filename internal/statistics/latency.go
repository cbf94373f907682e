package statistics

import (
	"math"
	"sort"

	"dns-insights/internal/models"
)

// latencyStats summarizes resolver reply times. The mean, max and min are
// computed over |reply_time| converted to milliseconds and rounded to three
// decimals. The slowest-domain mean stays in seconds and keeps its sign,
// matching the appliance's own reporting. Rows without a reply time are
// skipped everywhere.
func latencyStats(s *models.Summary, records []models.NormalizedRecord) {
	s.SlowestDomain = models.SentinelNA

	var sum, maxMs, minMs float64
	n := 0
	for _, rec := range records {
		if rec.ReplyTime == nil {
			continue
		}
		ms := math.Abs(*rec.ReplyTime) * 1000
		if n == 0 {
			maxMs, minMs = ms, ms
		} else {
			if ms > maxMs {
				maxMs = ms
			}
			if ms < minMs {
				minMs = ms
			}
		}
		sum += ms
		n++
	}

	if n > 0 {
		s.AvgReplyTimeMs = round3(sum / float64(n))
		s.MaxReplyTimeMs = round3(maxMs)
		s.MinReplyTimeMs = round3(minMs)
	}

	type acc struct {
		sum float64
		n   int
	}
	byDomain := make(map[string]*acc)
	for _, rec := range records {
		if rec.ReplyTime == nil || rec.Domain == "" {
			continue
		}
		a := byDomain[rec.Domain]
		if a == nil {
			a = &acc{}
			byDomain[rec.Domain] = a
		}
		a.sum += *rec.ReplyTime
		a.n++
	}
	if len(byDomain) == 0 {
		return
	}

	domains := make([]string, 0, len(byDomain))
	for d := range byDomain {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	meanOf := func(d string) float64 {
		a := byDomain[d]
		return a.sum / float64(a.n)
	}

	slowest := domains[0]
	for _, d := range domains[1:] {
		if meanOf(d) > meanOf(slowest) {
			slowest = d
		}
	}
	s.SlowestDomain = slowest
	s.SlowestAvgReplyTime = meanOf(slowest)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
