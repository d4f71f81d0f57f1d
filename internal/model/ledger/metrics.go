package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	appendedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "expense_tracker",
			Subsystem: "ledger",
			Name:      "appended_records_total",
		},
	)

	// skippedRows reflects the last summary, not a running sum.
	skippedRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "expense_tracker",
			Subsystem: "ledger",
			Name:      "skipped_rows",
		},
		[]string{"reason"},
	)
)

func observeSkipped(s Summary) {
	skippedRows.WithLabelValues("short").Set(float64(s.ShortRows))
	skippedRows.WithLabelValues("amount").Set(float64(s.BadAmounts))
	skippedRows.WithLabelValues("date").Set(float64(s.BadDates))
}
