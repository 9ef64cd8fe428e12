package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Upstream YouTube Data API metrics, one increment per chunk request.
	// status is "ok", "http_<code>" or "error".
	YouTubeAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youtube_api_requests_total",
			Help: "Total number of YouTube Data API requests",
		},
		[]string{"status"},
	)

	VideosFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videos_fetched_total",
			Help: "Total number of video items returned by the YouTube Data API",
		},
	)

	VideosNotFoundTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videos_not_found_total",
			Help: "Total number of requested video IDs missing from API responses",
		},
	)
)
