package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/raysh454/linkscope/internal/model"
)

var (
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkscope_scans_total",
		Help: "Completed scans partitioned by resulting status.",
	}, []string{"status"})

	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkscope_scan_duration_seconds",
		Help:    "Wall-clock duration of scan evaluation, including any simulated latency.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeScan(result *model.ScanResult, d time.Duration) {
	scansTotal.WithLabelValues(string(result.Status)).Inc()
	scanDuration.Observe(d.Seconds())
}
