// Package reactive implements the dependency-tracking state primitives
// that drive SiteWinder component updates.
//
// The two central types are Signal and Collector. A Signal is an
// observable single-value cell: reading it through Get during an active
// Collector scope records the signal as a dependency of that scope, and
// writing it through Set notifies subscribers only when the value
// actually changed. A Collector is a render-scoped accumulator of which
// signals were read; the component runtime opens one Collector per
// render pass and subscribes a re-render callback to every signal the
// pass touched.
//
// Collector scopes are kept on a per-goroutine stack so that nested
// scopes (a child component rendering while its parent's scope is open)
// never leak reads into the parent. Use WithCollector for exception-safe
// scoping; the manual Push/Pop pair exists for the runtime and reports
// stack discipline violations as ErrCollectorStack.
package reactive
