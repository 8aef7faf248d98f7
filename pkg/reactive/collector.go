package reactive

import (
	"errors"
	"runtime"
	"sync"
)

// ErrCollectorStack reports a violated collector stack discipline: a Pop
// with no matching Push on the current goroutine. It indicates a runtime
// bug or API misuse and should be treated as fatal by the caller.
var ErrCollectorStack = errors.New("sitewinder/reactive: collector stack underflow")

// Collector accumulates the signals read during one render pass.
// Only the top-of-stack collector on the current goroutine receives
// registrations, so a nested scope never leaks reads into its parent.
type Collector struct {
	// sources holds the recorded signals in first-read order.
	sources []Source
	seen    map[uint64]bool
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[uint64]bool)}
}

// record adds a source, deduplicating by ID.
func (c *Collector) record(src Source) {
	if c.seen[src.ID()] {
		return
	}
	c.seen[src.ID()] = true
	c.sources = append(c.sources, src)
}

// Sources returns the recorded signals in first-read order.
func (c *Collector) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Len returns the number of distinct signals recorded.
func (c *Collector) Len() int {
	return len(c.sources)
}

// trackingContext holds the collector stack for one goroutine.
// Keeping the stack per goroutine instead of process-global keeps
// renders composable and testable in isolation.
type trackingContext struct {
	stack []*Collector
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID extracts the current goroutine's ID from the runtime
// stack header ("goroutine <id> ..."). Implementation detail; never
// exposed.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current
// goroutine, creating it on first use.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// trackRead records a signal read against the active collector, if any.
func trackRead(src Source) {
	ctx := getTrackingContext()
	if n := len(ctx.stack); n > 0 {
		if top := ctx.stack[n-1]; top != nil {
			top.record(src)
		}
	}
}

// Push makes c the active collector on the current goroutine.
// Every Push must be balanced by exactly one Pop; prefer WithCollector,
// which guarantees the pairing even when fn panics.
func Push(c *Collector) {
	ctx := getTrackingContext()
	ctx.stack = append(ctx.stack, c)
}

// Pop removes the active collector. It returns ErrCollectorStack when
// the stack is empty, which means Push/Pop pairing was violated.
func Pop() error {
	ctx := getTrackingContext()
	n := len(ctx.stack)
	if n == 0 {
		return ErrCollectorStack
	}
	ctx.stack[n-1] = nil
	ctx.stack = ctx.stack[:n-1]

	// Drop the goroutine entry once the stack drains so short-lived
	// goroutines do not accumulate in the map.
	if n == 1 {
		trackingContexts.Delete(getGoroutineID())
	}
	return nil
}

// WithCollector runs fn with c as the active collector. The scope is
// exception-safe: the collector is popped even when fn panics, so a
// failing child render cannot corrupt its parent's scope.
func WithCollector(c *Collector, fn func()) {
	Push(c)
	defer Pop()
	fn()
}

// Untracked runs fn with dependency tracking suppressed. Signal reads
// inside fn register with no collector, even when one is active.
func Untracked(fn func()) {
	Push(nil)
	defer Pop()
	fn()
}
