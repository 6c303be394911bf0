// Package obs registers the service's Prometheus collectors.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adsight_http_requests_total",
		Help: "HTTP requests served, by method, route and status class.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adsight_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	DatasetRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "adsight_dataset_rows",
		Help: "Rows currently loaded per entity table.",
	}, []string{"table"})

	PipelineRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adsight_pipeline_runs_total",
		Help: "View computations executed.",
	})

	LoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adsight_dataset_load_failures_total",
		Help: "Dataset load attempts that failed, per table.",
	}, []string{"table"})
)
