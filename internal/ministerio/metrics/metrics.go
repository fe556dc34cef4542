package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeValidation = "validation_error"
	OutcomeConnection = "connection_error"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

var (
	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ministerios", Name: "operations_total", Help: "Accessor operations by name and outcome."},
		[]string{"operation", "outcome"},
	)
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "ministerios", Name: "operation_duration_seconds", Help: "Accessor operation latency.", Buckets: prometheus.DefBuckets},
		[]string{"operation"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Operations)
	reg.MustRegister(OperationDuration)
}

// Classifier maps an error to one of the Outcome labels.
type Classifier func(err error) string

// Observe records one finished operation.
func Observe(operation string, seconds float64, outcome string) {
	Operations.WithLabelValues(operation, outcome).Inc()
	OperationDuration.WithLabelValues(operation).Observe(seconds)
}

// SentinelClassifier builds a Classifier from the given sentinels. Anything
// matching none of them counts as OutcomeError.
func SentinelClassifier(notFound, validation, connection, badRequest error) Classifier {
	return func(err error) string {
		switch {
		case err == nil:
			return OutcomeOK
		case errors.Is(err, notFound):
			return OutcomeNotFound
		case errors.Is(err, validation):
			return OutcomeValidation
		case errors.Is(err, connection):
			return OutcomeConnection
		case errors.Is(err, badRequest):
			return OutcomeBadRequest
		default:
			return OutcomeError
		}
	}
}
