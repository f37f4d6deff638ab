// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics holds the Prometheus collectors of the proxy.

Collectors are registered once on the default registry and exposed by the
API server at /metrics.

Metrics:
  - vodbrowse_http_requests_total{method,route,status}
  - vodbrowse_http_request_duration_seconds{method,route}
  - vodbrowse_upstream_requests_total{source,operation,outcome}
  - vodbrowse_upstream_request_duration_seconds{source,operation}
*/
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Upstream call outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Metrics groups every collector of the process.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
}

// Default returns the process-wide collectors, registering them on first use.
func Default() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vodbrowse_http_requests_total",
					Help: "Total number of HTTP requests served",
				},
				[]string{"method", "route", "status"},
			),

			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "vodbrowse_http_request_duration_seconds",
					Help:    "Latency of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),

			UpstreamRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vodbrowse_upstream_requests_total",
					Help: "Total number of calls made to upstream listing APIs",
				},
				[]string{"source", "operation", "outcome"},
			),

			UpstreamRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "vodbrowse_upstream_request_duration_seconds",
					Help:    "Latency of upstream listing API calls in seconds",
					Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
				},
				[]string{"source", "operation"},
			),
		}
	})

	return globalMetrics
}

// ObserveHTTP records one served request. route is the matched pattern, not
// the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveUpstream records one upstream call.
func (m *Metrics) ObserveUpstream(sourceKey, operation, outcome string, elapsed time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(sourceKey, operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(sourceKey, operation).Observe(elapsed.Seconds())
}
