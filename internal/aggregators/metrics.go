package aggregators

import "dns-insights/internal/shared/metrics"

const (
	labelAggregation = "aggregation"

	aggregationHourly = "hourly"
	aggregationPlots  = "plots"
)

var metricAggregateDuration = metrics.NewHistogramVec(metrics.HistogramOpts{
	Namespace: metrics.Namespace,
	Subsystem: metrics.SubDashboard,
	Name:      "aggregate_duration_seconds",
	Help:      "Time spent building one pre-aggregated table.",
	Buckets:   metrics.DefBuckets,
}, []string{labelAggregation})
