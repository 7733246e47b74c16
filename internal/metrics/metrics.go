// Package metrics defines the prometheus collectors of the whitelist service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

// Submission results used as the "result" label.
const (
	ResultSuccess    = "success"
	ResultInvalid    = "invalid"
	ResultDuplicate  = "duplicate"
	ResultStoreError = "store_error"
	ResultError      = "error"
)

var (
	// SubmissionsTotal counts whitelist submissions by surface and result
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whitelist_submissions_total",
			Help: "Total number of whitelist submissions",
		},
		[]string{"surface", "result"},
	)

	// SubmissionDuration tracks end-to-end submission time including store calls
	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whitelist_submission_duration_seconds",
			Help:    "Whitelist submission duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"surface"},
	)

	// ListRequestsTotal counts entry listings by result
	ListRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whitelist_list_requests_total",
			Help: "Total number of whitelist listings",
		},
		[]string{"result"},
	)

	// ErrorsTotal counts errors by component and type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whitelist_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// Result classifies a submission outcome for the "result" label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case whitelist.IsValidationError(err):
		return ResultInvalid
	case whitelist.IsDuplicateError(err):
		return ResultDuplicate
	case whitelist.IsStoreError(err):
		return ResultStoreError
	default:
		return ResultError
	}
}

// Handler serves the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
