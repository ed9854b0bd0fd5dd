package repository

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const metricPrefix = "ebanking_"

var (
	storeOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ebanking_store_operations_total",
		Help: "Store operations, labeled by store, operation and outcome",
	}, []string{"store", "op", "status"})

	storeOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ebanking_store_operation_duration_seconds",
		Help:    "Latency distribution of store operations",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"store", "op"})

	storeLinesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ebanking_store_lines_skipped_total",
		Help: "Lines skipped while loading a store because they could not be decoded",
	}, []string{"store"})
)

func observe(store, op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storeOpsTotal.WithLabelValues(store, op, status).Inc()
}

func recordSkipped(store string) {
	storeLinesSkipped.WithLabelValues(store).Inc()
}

// WriteMetrics writes the store metric families gathered from g in the
// Prometheus text exposition format. Families from other collectors, such as
// the Go runtime ones on the default registry, are left out.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
