package sql

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/revault/coordinatord/internal/coordinator/store"
)

const (
	resultOK        = "ok"
	resultDuplicate = "duplicate"
	resultError     = "error"
)

var (
	operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coordinator",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Number of store operations by result",
		},
		[]string{"operation", "result"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coordinator",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of store operations including session setup",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	sessionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coordinator",
			Subsystem: "store",
			Name:      "session_errors_total",
			Help:      "Number of connection errors reported by session supervisors",
		},
	)
)

func (s *Store) observe(operation string, start time.Time, err error) {
	result := resultOK
	switch {
	case errors.Is(err, store.ErrDuplicate):
		result = resultDuplicate
	case err != nil:
		result = resultError
	}

	operations.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(s.now().Sub(start).Seconds())
}
