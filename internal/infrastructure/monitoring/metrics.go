package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	BillsGeneratedTotal   *prometheus.CounterVec
	PaymentsRecordedTotal prometheus.Counter
	PredictionsTotal      *prometheus.CounterVec
	ReconcileRunsTotal    *prometheus.CounterVec
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cable_billing_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		BillsGeneratedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cable_billing_bills_generated_total",
				Help: "Total number of bills written, by description.",
			},
			[]string{"description"},
		),
		PaymentsRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cable_billing_payments_recorded_total",
				Help: "Total number of payments recorded.",
			},
		),
		PredictionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cable_billing_risk_predictions_total",
				Help: "Total number of risk predictions, by scorer and outcome.",
			},
			[]string{"scorer", "outcome"},
		),
		ReconcileRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cable_billing_reconcile_runs_total",
				Help: "Total number of nightly reconciliation runs, by status.",
			},
			[]string{"status"},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordBillGenerated(description string) {
	Business.BillsGeneratedTotal.WithLabelValues(description).Inc()
}

func RecordPaymentRecorded() {
	Business.PaymentsRecordedTotal.Inc()
}

func RecordPrediction(scorer, outcome string) {
	Business.PredictionsTotal.WithLabelValues(scorer, outcome).Inc()
}

func RecordReconcileRun(status string) {
	Business.ReconcileRunsTotal.WithLabelValues(status).Inc()
}
