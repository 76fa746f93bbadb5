package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ScoreRecomputes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "golazo", Name: "score_recomputes_total", Help: "Score recomputations by outcome",
	}, []string{"outcome"})
	SkippedRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "golazo", Name: "malformed_records_total", Help: "Records skipped during validation",
	}, []string{"kind"})
	GridBuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "golazo", Name: "occupancy_grids_total", Help: "Occupancy grids built",
	})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "golazo", Name: "http_request_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(ScoreRecomputes, SkippedRecords, GridBuilds, HTTPDuration)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRecompute(outcome string) { ScoreRecomputes.WithLabelValues(outcome).Inc() }

func ObserveSkipped(kind string, n int) {
	if n > 0 {
		SkippedRecords.WithLabelValues(kind).Add(float64(n))
	}
}

func ObserveHTTP(method string, status int, d time.Duration) {
	HTTPDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}
