package telemetry

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sitewinder-dev/sitewinder/pkg/component"
)

const defaultTracerName = "sitewinder"

// OTelConfig configures the OpenTelemetry recorder.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "sitewinder").
	TracerName string

	// Filter determines which components to trace by instance id.
	// If nil, all render passes are traced.
	Filter func(componentID uint64) bool

	// AttributeExtractor adds custom attributes to every render span.
	AttributeExtractor func(componentID uint64) []attribute.KeyValue

	// Next receives every observation after tracing, so traces and
	// metrics can share one recorder slot.
	Next component.Recorder

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry recorder.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

// WithComponentFilter sets a filter by component instance id.
func WithComponentFilter(filter func(componentID uint64) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(componentID uint64) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = extractor }
}

// WithNext chains another recorder after the tracer.
func WithNext(next component.Recorder) OTelOption {
	return func(c *OTelConfig) { c.Next = next }
}

// TracedRecorder emits one span per render pass.
type TracedRecorder struct {
	config OTelConfig
}

var _ component.Recorder = (*TracedRecorder)(nil)

// OpenTelemetry creates a recorder that traces every render pass.
// The span covers the render's actual duration: its start timestamp is
// backdated by the reported duration.
func OpenTelemetry(opts ...OTelOption) *TracedRecorder {
	config := OTelConfig{
		TracerName: defaultTracerName,
		Next:       component.NopRecorder{},
	}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &TracedRecorder{config: config}
}

// RenderCompleted implements component.Recorder.
func (r *TracedRecorder) RenderCompleted(id uint64, d time.Duration, err error) {
	defer r.config.Next.RenderCompleted(id, d, err)

	if r.config.Filter != nil && !r.config.Filter(id) {
		return
	}

	end := time.Now()
	_, span := r.config.tracer.Start(context.Background(), "component.render",
		trace.WithTimestamp(end.Add(-d)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String("sitewinder.component.id", strconv.FormatUint(id, 10)),
		attribute.Float64("sitewinder.render.duration_ms", float64(d)/float64(time.Millisecond)),
	)
	if r.config.AttributeExtractor != nil {
		span.SetAttributes(r.config.AttributeExtractor(id)...)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(end))
}

// ComponentMounted implements component.Recorder.
func (r *TracedRecorder) ComponentMounted(id uint64) {
	r.config.Next.ComponentMounted(id)
}

// ComponentDestroyed implements component.Recorder.
func (r *TracedRecorder) ComponentDestroyed(id uint64) {
	r.config.Next.ComponentDestroyed(id)
}
