// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// # HTTP Metrics

// RequestsTotal counts finished HTTP requests by method, route pattern, and
// status class. Use RegisterMetrics to register this with a Prometheus registry.
var RequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "keepsake_http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

// RequestDuration is the histogram of request latency in seconds.
// Use RegisterMetrics to register this with a Prometheus registry.
var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "keepsake_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// RegisterMetrics registers HTTP middleware metrics with the given registry.
// This must be called at startup to make metrics available on /metrics.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(RequestDuration)
}

// Metrics records a counter and latency observation for every request.
//
// Resource IDs in the path are collapsed to a placeholder so metric label
// cardinality stays bounded by the route surface, not the dataset.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request)

			path := httpRoutePattern(request)
			RequestsTotal.WithLabelValues(request.Method, path, strconv.Itoa(wrappedWriter.status)).Inc()
			RequestDuration.WithLabelValues(request.Method, path).Observe(time.Since(startTime).Seconds())
		})
	}
}

// httpRoutePattern collapses trailing resource IDs so metric label
// cardinality does not grow with the dataset.
func httpRoutePattern(request *http.Request) string {
	path := request.URL.Path

	// /api/v1/users/<uuid> → /api/v1/users/{id}
	if idx := lastSlash(path); idx > 0 && looksLikeID(path[idx+1:]) {
		return path[:idx] + "/{id}"
	}

	return path
}

func lastSlash(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return i
		}
	}
	return -1
}

// looksLikeID reports whether a path segment is a UUID-shaped identifier.
func looksLikeID(segment string) bool {
	if len(segment) != 36 {
		return false
	}
	for i, r := range segment {
		switch i {
		case 8, 13, 18, 23:
			if r != '-' {
				return false
			}
		default:
			isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
			if !isHex {
				return false
			}
		}
	}
	return true
}
