package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sitewinder-dev/sitewinder/pkg/telemetry"
)

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := telemetry.Prometheus(telemetry.WithRegistry(reg))

	rec.ComponentMounted(1)
	rec.ComponentMounted(2)
	rec.RenderCompleted(1, 2*time.Millisecond, nil)
	rec.RenderCompleted(1, time.Millisecond, nil)
	rec.RenderCompleted(2, time.Millisecond, errors.New("boom"))
	rec.ComponentDestroyed(2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, name := range []string{
		"sitewinder_renders_total",
		"sitewinder_render_duration_seconds",
		"sitewinder_active_components",
		"sitewinder_mounts_total",
		"sitewinder_destroys_total",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}

	if got := testutil.ToFloat64(rec.ActiveComponentsGauge()); got != 1 {
		t.Errorf("active_components = %v, want 1", got)
	}
}

func TestPrometheusRecorderCustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := telemetry.Prometheus(
		telemetry.WithRegistry(reg),
		telemetry.WithNamespace("myapp"),
		telemetry.WithSubsystem("ui"),
	)
	rec.ComponentMounted(1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	want := "myapp_ui_mounts_total"
	for _, n := range names {
		if n == want {
			return
		}
	}
	t.Errorf("metric %s not found in %v", want, names)
}

// chainCounter verifies the otel recorder forwards to the next one.
type chainCounter struct {
	renders, mounts, destroys int
}

func (c *chainCounter) RenderCompleted(uint64, time.Duration, error) { c.renders++ }
func (c *chainCounter) ComponentMounted(uint64)                      { c.mounts++ }
func (c *chainCounter) ComponentDestroyed(uint64)                    { c.destroys++ }

func TestTracedRecorderChains(t *testing.T) {
	next := &chainCounter{}
	rec := telemetry.OpenTelemetry(
		telemetry.WithTracerName("test"),
		telemetry.WithNext(next),
		telemetry.WithAttributeExtractor(func(id uint64) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("app", "test")}
		}),
	)

	// The global tracer provider defaults to no-op; the recorder must
	// still forward everything.
	rec.ComponentMounted(1)
	rec.RenderCompleted(1, time.Millisecond, nil)
	rec.RenderCompleted(1, time.Millisecond, errors.New("boom"))
	rec.ComponentDestroyed(1)

	if next.mounts != 1 || next.renders != 2 || next.destroys != 1 {
		t.Errorf("chained recorder missed calls: %+v", next)
	}
}

func TestTracedRecorderFilterStillChains(t *testing.T) {
	next := &chainCounter{}
	rec := telemetry.OpenTelemetry(
		telemetry.WithNext(next),
		telemetry.WithComponentFilter(func(id uint64) bool { return false }),
	)

	rec.RenderCompleted(7, time.Millisecond, nil)
	if next.renders != 1 {
		t.Errorf("filtered render must still reach the next recorder, got %d", next.renders)
	}
}
