// Package observability exposes prometheus counters for the import
// pipeline. Heuristic fallbacks are absorbed silently per row, so counters
// are the only window into how often vendor data misses the synonym tables.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsImported = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "floorpricing_rows_imported_total",
		Help: "Rows successfully persisted by batch imports.",
	})

	RowsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "floorpricing_rows_failed_total",
		Help: "Rows that failed to persist during batch imports.",
	})

	PriceParseFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "floorpricing_price_parse_failures_total",
		Help: "Price cells that failed to parse and defaulted to zero.",
	})

	UnitFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "floorpricing_unit_fallbacks_total",
		Help: "Unit tokens missing from the synonym table, defaulted to EA.",
	})

	CategoryFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "floorpricing_category_fallbacks_total",
		Help: "Records whose product type could not be resolved, defaulted to VIN.",
	})
)

// Register installs the pipeline counters into the default registry.
// Call once at startup.
func Register() {
	prometheus.MustRegister(
		RowsImported,
		RowsFailed,
		PriceParseFailures,
		UnitFallbacks,
		CategoryFallbacks,
	)
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
