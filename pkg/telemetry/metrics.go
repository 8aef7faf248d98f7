// Package telemetry provides Recorder implementations that publish the
// component lifecycle to Prometheus and OpenTelemetry. The component
// core itself knows nothing about either; wiring a recorder is opt-in
// per instance.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sitewinder-dev/sitewinder/pkg/component"
)

// MetricsConfig configures the Prometheus recorder.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "sitewinder").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus recorder.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "sitewinder",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// PrometheusRecorder publishes render and lifecycle counts.
type PrometheusRecorder struct {
	rendersTotal     *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	activeComponents prometheus.Gauge
	mountsTotal      prometheus.Counter
	destroysTotal    prometheus.Counter
}

var _ component.Recorder = (*PrometheusRecorder)(nil)

// Prometheus creates a recorder registered against the configured
// registry. Each call registers a fresh metric set, so per-test
// registries need their own recorder.
func Prometheus(opts ...MetricsOption) *PrometheusRecorder {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &PrometheusRecorder{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of component render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		activeComponents: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_components",
			Help:        "Number of currently mounted components",
			ConstLabels: config.ConstLabels,
		}),

		mountsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of component mounts",
			ConstLabels: config.ConstLabels,
		}),

		destroysTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "destroys_total",
			Help:        "Total number of component destroys",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ActiveComponentsGauge exposes the mounted-component gauge, mainly
// for assertions.
func (r *PrometheusRecorder) ActiveComponentsGauge() prometheus.Gauge {
	return r.activeComponents
}

// RenderCompleted implements component.Recorder.
func (r *PrometheusRecorder) RenderCompleted(id uint64, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.rendersTotal.WithLabelValues(status).Inc()
	r.renderDuration.Observe(d.Seconds())
}

// ComponentMounted implements component.Recorder.
func (r *PrometheusRecorder) ComponentMounted(id uint64) {
	r.mountsTotal.Inc()
	r.activeComponents.Inc()
}

// ComponentDestroyed implements component.Recorder.
func (r *PrometheusRecorder) ComponentDestroyed(id uint64) {
	r.destroysTotal.Inc()
	r.activeComponents.Dec()
}
