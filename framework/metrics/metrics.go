// Package metrics exports Container activity to Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/km-arc/go-sui/framework/container"
)

// Config configures the Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "sui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "container").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "sui",
		Subsystem: "container",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector is a container.Observer backed by Prometheus metrics.
type Collector struct {
	instances  *prometheus.GaugeVec
	operations *prometheus.CounterVec
}

var _ container.Observer = (*Collector)(nil)

// New registers the Container metrics and returns the Collector.
func New(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		instances: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "instances",
			Help:        "Number of live component instances per component kind",
			ConstLabels: cfg.ConstLabels,
		}, []string{"component"}),

		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "operations_total",
			Help:        "Total number of Container operations by outcome",
			ConstLabels: cfg.ConstLabels,
		}, []string{"op", "component", "result"}),
	}
}

// Observe counts one operation. The result label is "ok",
// "unknown_component", "duplicate_instance", "unknown_instance" or "error".
func (c *Collector) Observe(op container.Op, kind container.Kind, err error) {
	c.operations.WithLabelValues(string(op), kind.String(), result(err)).Inc()
}

// Resize records the size of a bucket.
func (c *Collector) Resize(kind container.Kind, size int) {
	c.instances.WithLabelValues(kind.String()).Set(float64(size))
}

// Instances returns the gauge for kind (for tests and debugging).
func (c *Collector) Instances(kind container.Kind) prometheus.Gauge {
	return c.instances.WithLabelValues(kind.String())
}

// Operations returns the counter for one (op, kind, result) combination.
func (c *Collector) Operations(op container.Op, kind container.Kind, res string) prometheus.Counter {
	return c.operations.WithLabelValues(string(op), kind.String(), res)
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, container.ErrUnknownComponent):
		return "unknown_component"
	case errors.Is(err, container.ErrDuplicateInstance):
		return "duplicate_instance"
	case errors.Is(err, container.ErrUnknownInstance):
		return "unknown_instance"
	case errors.Is(err, container.ErrInvalidInstance):
		return "invalid_instance"
	default:
		return "error"
	}
}
