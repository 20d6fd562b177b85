package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// reportsTotal counts successfully built reports by sector.
var reportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "carbonmrv",
		Name:      "reports_total",
		Help:      "Number of emission reports built, by sector.",
	},
	[]string{"sector"},
)

// reportErrorsTotal counts rejected report requests by error code.
var reportErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "carbonmrv",
		Name:      "report_errors_total",
		Help:      "Number of report requests rejected, by error code.",
	},
	[]string{"code"},
)
