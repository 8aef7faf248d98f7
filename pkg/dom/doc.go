// Package dom provides the live document tree SiteWinder components
// mount into, together with the single-threaded event-loop scheduler
// that coalesced re-renders are queued on.
//
// The package plays the browser's role: Document and Element model the
// mutable node tree with attributes, properties and event listeners,
// Window carries the location hash for the router, and Scheduler is the
// microtask queue. Everything is deterministic; tests drive time by
// calling Scheduler.Flush instead of waiting on real async.
//
// Only the small query surface the framework itself needs is
// implemented: #id, .class, tag and [attr="value"] selectors.
package dom
