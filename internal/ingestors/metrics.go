package ingestors

import "dns-insights/internal/shared/metrics"

const labelSource = "source"

var (
	metricRowsIngested = metrics.NewCounterVec(metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubIngestion,
		Name:      "rows_total",
		Help:      "Rows read from source databases.",
	}, []string{labelSource})

	metricChunksRead = metrics.NewCounterVec(metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubIngestion,
		Name:      "chunks_total",
		Help:      "Chunks read from source databases.",
	}, []string{labelSource})

	metricIngestDuration = metrics.NewHistogram(metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubIngestion,
		Name:      "ingest_duration_seconds",
		Help:      "Time spent reading all sources for one run.",
		Buckets:   metrics.DefBuckets,
	})
)
