package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	matchRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matches_list_requests_total",
		Help: "Total number of match listing requests served",
	})

	predictionRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matches_prediction_requests_total",
		Help: "Total number of prediction requests served",
	})

	datasetSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "matches_dataset_size",
		Help: "Number of matches in the loaded dataset",
	})

	filterDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matches_filter_duration_seconds",
		Help:    "Duration of filter evaluation over the dataset",
		Buckets: prometheus.DefBuckets,
	})
)
