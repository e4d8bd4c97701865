package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wzugang/timeup"
)

type (
	// Config configures the Prometheus callback metrics.
	Config struct {
		// Namespace is the metrics namespace (default: "timeup").
		Namespace string

		// Subsystem is the metrics subsystem (default: "").
		Subsystem string

		// ConstLabels are constant labels added to all metrics.
		ConstLabels prometheus.Labels

		// Buckets are the histogram buckets for invocation duration.
		// Default: prometheus.DefBuckets
		Buckets []float64

		// Registry is the Prometheus registry to use.
		// Default: prometheus.DefaultRegisterer
		Registry prometheus.Registerer
	}

	// Option configures the Prometheus callback metrics.
	Option func(*Config)

	// Collector holds the callback metrics.
	Collector struct {
		invocations *prometheus.CounterVec
		duration    *prometheus.HistogramVec
	}

	// observed measures a single Callback.
	observed[P any] struct {
		next      timeup.Callback[P]
		collector *Collector
	}
)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
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
		Namespace: "timeup",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// New registers the callback metrics.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "callback_invocations_total",
			Help:        "Total number of callback invocations",
			ConstLabels: config.ConstLabels,
		}, []string{"callback", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "callback_duration_seconds",
			Help:        "Callback invocation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"callback"}),
	}
}

// Invocations counts invocations by callback and status.
func (c *Collector) Invocations() *prometheus.CounterVec {
	return c.invocations
}

// Duration observes invocation duration by callback.
func (c *Collector) Duration() *prometheus.HistogramVec {
	return c.duration
}

// Decorator creates a timeup.Decorator recording to collector.
func Decorator[P any](collector *Collector) timeup.Decorator[P] {
	if collector == nil {
		panic("collector cannot be nil")
	}
	return func(next timeup.Callback[P]) timeup.Callback[P] {
		return &observed[P]{next, collector}
	}
}

func (o *observed[P]) Invoke(payload P) (int, error) {
	name := o.next.String()
	start := time.Now()
	result, err := o.next.Invoke(payload)
	o.collector.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	status := "ok"
	if err != nil {
		status = "error"
	}
	o.collector.invocations.WithLabelValues(name, status).Inc()
	return result, err
}

func (o *observed[P]) String() string {
	return o.next.String()
}
