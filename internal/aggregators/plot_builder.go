package aggregators

import (
	"context"
	"math"
	"sort"
	"time"

	"dns-insights/internal/models"
	"dns-insights/internal/shared/loggers"
	"dns-insights/internal/statistics"
)

//go:generate mockgen -source=plot_builder.go -destination=./mocks/plot_builder_mock.go -package=mocks
type PlotBuilder interface {
	// Build produces the plot-ready tables: stacked per-disposition counts
	// for the top clients, the top blocked and allowed domains with display
	// labels, and the mean reply time per calendar date.
	Build(ctx context.Context, records []models.NormalizedRecord, topClients, topDomains int) *models.PlotData
}

type plotBuilder struct{}

func NewPlotBuilder() PlotBuilder {
	return &plotBuilder{}
}

func (b *plotBuilder) Build(ctx context.Context, records []models.NormalizedRecord, topClients, topDomains int) *models.PlotData {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	data := &models.PlotData{
		ClientsByDisposition: clientsByDisposition(records, topClients),
		TopBlockedDomains:    topDomainCounts(records, models.StatusBlocked, topDomains),
		TopAllowedDomains:    topDomainCounts(records, models.StatusAllowed, topDomains),
		ReplyTimeByDate:      replyTimeByDate(records),
	}

	metricAggregateDuration.WithLabelValues(aggregationPlots).Observe(time.Since(start).Seconds())
	logger.Debug().
		Int("rows", len(records)).
		Int("clients", len(data.ClientsByDisposition)).
		Msg("built plot tables")

	return data
}

// clientsByDisposition ranks clients by overall query count and emits one
// segment per (client, disposition) with a nonzero count, clients in rank
// order. Records without a client are ignored.
func clientsByDisposition(records []models.NormalizedRecord, topClients int) []models.ClientDispositionCount {
	totals := make(map[string]int)
	perDisposition := make(map[string]map[models.StatusType]int)
	for _, rec := range records {
		if rec.Client == "" {
			continue
		}
		totals[rec.Client]++
		m := perDisposition[rec.Client]
		if m == nil {
			m = make(map[models.StatusType]int)
			perDisposition[rec.Client] = m
		}
		m[rec.StatusType]++
	}

	dispositions := []models.StatusType{models.StatusAllowed, models.StatusBlocked, models.StatusOther}

	var out []models.ClientDispositionCount
	for _, client := range statistics.TopNKeys(totals, topClients) {
		for _, st := range dispositions {
			if n := perDisposition[client][st]; n > 0 {
				out = append(out, models.ClientDispositionCount{
					Client:     client,
					StatusType: st,
					Count:      n,
				})
			}
		}
	}
	return out
}

// topDomainCounts ranks domains within one disposition and pairs each with
// its shortened display label.
func topDomainCounts(records []models.NormalizedRecord, want models.StatusType, topDomains int) []models.DomainCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.StatusType != want || rec.Domain == "" {
			continue
		}
		counts[rec.Domain]++
	}

	var out []models.DomainCount
	for _, domain := range statistics.TopNKeys(counts, topDomains) {
		out = append(out, models.DomainCount{
			Domain: domain,
			Label:  models.TruncateDomain(domain),
			Count:  counts[domain],
		})
	}
	return out
}

// replyTimeByDate computes the mean |reply_time| in milliseconds per calendar
// date, dates ascending. Rows without a measurement are skipped; dates with
// no measured rows are not materialized.
func replyTimeByDate(records []models.NormalizedRecord) []models.DateReplyTime {
	type acc struct {
		date time.Time
		sum  float64
		n    int
	}
	byDate := make(map[int64]*acc)
	for _, rec := range records {
		if rec.ReplyTime == nil {
			continue
		}
		k := rec.Date.Unix()
		a := byDate[k]
		if a == nil {
			a = &acc{date: rec.Date}
			byDate[k] = a
		}
		a.sum += math.Abs(*rec.ReplyTime) * 1000
		a.n++
	}

	out := make([]models.DateReplyTime, 0, len(byDate))
	for _, a := range byDate {
		out = append(out, models.DateReplyTime{
			Date:        a.date,
			MeanReplyMs: a.sum / float64(a.n),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
