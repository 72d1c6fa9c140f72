// Package telemetry exposes prometheus metrics for the HTTP surface and
// the document/lifecycle counters.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "backbone_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backbone_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// ItemsProcessed counts successful process commits.
	ItemsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backbone_items_processed_total",
		Help: "Inbox items archived into a memory trace.",
	})

	// DocumentsGenerated counts rendered drafts.
	DocumentsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backbone_documents_generated_total",
		Help: "Draft documents rendered from templates.",
	})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, ItemsProcessed, DocumentsGenerated)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latencies. The route label uses the
// mux path template to keep cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
