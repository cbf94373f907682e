package dashboards

import "dns-insights/internal/shared/metrics"

var (
	metricReloads = metrics.NewCounterVec(metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubDashboard,
		Name:      "reloads_total",
		Help:      "Reload pipeline runs by outcome error code.",
	}, []string{metrics.FieldErrorCode})

	metricReloadDuration = metrics.NewHistogram(metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubDashboard,
		Name:      "reload_duration_seconds",
		Help:      "End-to-end duration of one reload pipeline run.",
		Buckets:   metrics.DefBuckets,
	})
)
