package component

import "time"

// Recorder receives render and lifecycle observations from the
// component runtime. The telemetry package provides Prometheus and
// OpenTelemetry backed implementations; the default is a no-op.
type Recorder interface {
	// RenderCompleted is called after every render pass. err is the
	// contained template error, or nil for a clean pass.
	RenderCompleted(componentID uint64, d time.Duration, err error)

	// ComponentMounted is called after the first successful render.
	ComponentMounted(componentID uint64)

	// ComponentDestroyed is called once per Destroy.
	ComponentDestroyed(componentID uint64)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

func (NopRecorder) RenderCompleted(uint64, time.Duration, error) {}
func (NopRecorder) ComponentMounted(uint64)                      {}
func (NopRecorder) ComponentDestroyed(uint64)                    {}

// Logger is the minimal logging surface the runtime needs for
// contained errors. The stdlib log package satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}
