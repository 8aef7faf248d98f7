// Package sitewinder provides the public API for the sitewinder
// reactive UI framework.
//
// This is the recommended import for most applications:
//
//	import "github.com/sitewinder-dev/sitewinder"
//
// Usage:
//
//	win := sitewinder.NewWindow()
//	outlet := sitewinder.Outlet(win, "app")
//	app, err := sitewinder.Bootstrap(NewApp(), win, outlet)
package sitewinder

import (
	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/dom"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
	"github.com/sitewinder-dev/sitewinder/pkg/router"
)

// =============================================================================
// Reactivity
// =============================================================================

// Signal is a reactive value. Reading it inside a component template
// subscribes the component; writing it re-renders the subscribers.
type Signal[T any] = reactive.Signal[T]

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return reactive.NewSignal(initial)
}

// NewSignalFunc creates a signal with a custom equality function. Set
// calls whose new value compares equal are dropped without notifying.
func NewSignalFunc[T any](initial T, equal func(a, b T) bool) *Signal[T] {
	return reactive.NewSignal(initial).WithEquals(equal)
}

// =============================================================================
// Components
// =============================================================================

// Component is anything mountable: a struct embedding Core that
// implements Template.
type Component = component.Component

// Core is embedded in every component. It owns the render cycle,
// bindings and lifecycle state.
type Core = component.Core

// Node is one node of a template tree.
type Node = markup.Node

// Event is a dispatched DOM event.
type Event = dom.Event

// Window is a browsing context with a document, a location hash and an
// event-loop scheduler.
type Window = dom.Window

// Element is a live DOM element.
type Element = dom.Element

// NewWindow creates a window with a fresh document and scheduler.
func NewWindow() *Window {
	return dom.NewWindow()
}

// Outlet appends a div with the given id to the window's body and
// returns it. It is the conventional mount host for a root component.
func Outlet(win *Window, id string) *Element {
	el := win.Document().CreateElement("div")
	el.SetAttribute("id", id)
	win.Document().Body().AppendChild(el)
	return el
}

// Bootstrap constructs the application by mounting the root component
// into the host and returns the mounted instance. Host is either a
// selector string or an *Element.
func Bootstrap[T Component](comp T, win *Window, host any) (T, error) {
	if err := component.Mount(comp, win, host); err != nil {
		var zero T
		return zero, err
	}
	return comp, nil
}

// Mount mounts a component into a host. Most applications use
// Bootstrap; Mount is the untyped form.
func Mount(comp Component, win *Window, host any) error {
	return component.Mount(comp, win, host)
}

// =============================================================================
// Routing
// =============================================================================

// Router swaps mounted components as the location hash changes.
type Router = router.Router

// RouteFactory constructs the component for a route.
type RouteFactory = router.Factory

// NewRouter creates a router over the given outlet and route table.
func NewRouter(win *Window, outlet any, routes map[string]router.Factory, opts ...router.Option) *Router {
	return router.New(win, outlet, routes, opts...)
}
