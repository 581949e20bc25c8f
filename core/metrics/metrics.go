// Package metrics exposes Prometheus metrics for storage operations.
package metrics

import (
	"object-gateway/core/objectstore"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "object_gateway"
	subsystem = "storage"
)

// Collector records store events as Prometheus metrics.
type Collector struct {
	operations *prometheus.CounterVec
	retries    *prometheus.CounterVec
	reopens    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	bytes      *prometheus.CounterVec
}

// New creates the collector and registers it with reg. A nil registerer
// skips registration (tests).
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Total number of storage operations by result",
			},
			[]string{"operation", "result"},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "retries_total",
				Help:      "Total number of retried attempts by operation",
			},
			[]string{"operation"},
		),
		reopens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reopens_total",
				Help:      "Total number of client handle reopens by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_duration_seconds",
				Help:      "Duration of storage operations in seconds, retries included",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"operation"},
		),
		bytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "bytes_total",
				Help:      "Total object bytes transferred by operation",
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		for _, col := range []prometheus.Collector{c.operations, c.retries, c.reopens, c.duration, c.bytes} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// OperationDone implements objectstore.Observer.
func (c *Collector) OperationDone(ev objectstore.Event) {
	op := string(ev.Operation)

	c.operations.WithLabelValues(op, result(ev.Err)).Inc()
	c.duration.WithLabelValues(op).Observe(ev.Duration.Seconds())
	if ev.Attempts > 1 {
		c.retries.WithLabelValues(op).Add(float64(ev.Attempts - 1))
	}
	if ev.Err == nil && (ev.Operation == objectstore.OpPut || ev.Operation == objectstore.OpGet) {
		c.bytes.WithLabelValues(op).Add(float64(ev.Size))
	}
}

// ClientReopened implements objectstore.Observer.
func (c *Collector) ClientReopened(err error) {
	c.reopens.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
