package biscuit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for signature operations.
//
// Operations are labelled "keygen", "sign" and "verify". The result
// label is "ok" or "error" for key generation and signing, and
// "accepted" or "rejected" for verification.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. If
// reg is nil, the collectors are not registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biscuit_operations_total",
				Help: "Number of signature operations",
			},
			[]string{"op", "params", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "biscuit_operation_duration_seconds",
				Help:    "Duration of signature operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op", "params"},
		),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.Operations, m.Duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) observe(op string, params string, result string, start time.Time) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, params, result).Inc()
	m.Duration.WithLabelValues(op, params).Observe(time.Since(start).Seconds())
}
