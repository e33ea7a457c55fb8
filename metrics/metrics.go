package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "largarage_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "largarage_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	boardMoves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "largarage_board_moves_total",
			Help: "Board card moves by resulting phase.",
		},
		[]string{"phase"},
	)
	inventoryImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "largarage_inventory_imported_rows_total",
			Help: "Inventory rows inserted through spreadsheet import.",
		},
	)
	invoicesRendered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "largarage_invoices_rendered_total",
			Help: "Invoice PDFs generated.",
		},
	)
)

// Register adds the collectors to the default registry once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, boardMoves, inventoryImported, invoicesRendered)
	})
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveBoardMove(phase string) {
	boardMoves.WithLabelValues(phase).Inc()
}

func AddImportedRows(n int) {
	if n > 0 {
		inventoryImported.Add(float64(n))
	}
}

func IncInvoices() {
	invoicesRendered.Inc()
}
