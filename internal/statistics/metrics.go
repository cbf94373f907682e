package statistics

import "dns-insights/internal/shared/metrics"

var metricComputeDuration = metrics.NewHistogram(metrics.HistogramOpts{
	Namespace: metrics.Namespace,
	Subsystem: metrics.SubStatistics,
	Name:      "compute_duration_seconds",
	Help:      "Time spent reducing a normalized record set to the summary.",
	Buckets:   metrics.DefBuckets,
})
