// Package component is the SiteWinder rendering core: it orchestrates
// the render -> mount -> bind -> observe cycle for component instances.
//
// A component embeds Core and implements Template; optional capability
// interfaces (Styler, Initializer, Mounter, Updater, Destroyer) add
// styles and lifecycle hooks. Each render pass evaluates Template
// inside a fresh dependency-collector scope, rebuilds the component's
// owned DOM subtree from scratch (there is no diffing), re-attaches
// event and value bindings by marker id, mounts portal children, and
// subscribes a coalesced re-render to every signal the pass read.
// Multiple signal changes in one event-loop turn produce exactly one
// re-render on the next turn, and Destroy cancels a pending pass.
//
// Failures during a render are contained at the component boundary:
// a panicking template becomes a visible inline error node, a failing
// portal child marks only its own slot, and lifecycle hook panics are
// logged. Only host resolution errors at Mount propagate to the caller.
package component
