// Package router maps location-hash fragments to component factories
// and swaps the mounted component on navigation. Exactly one routed
// component is live at a time; the old one is fully destroyed before
// the next is constructed.
package router

import (
	"log"

	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/dom"
)

// Factory builds a fresh component instance for a route. Factories run
// once per navigation; routed components are never reused.
type Factory func() component.Component

// Router dispatches hash fragments to factories.
type Router struct {
	win      *dom.Window
	outlet   any
	routes   map[string]Factory
	notFound Factory
	logf     func(format string, args ...any)

	current component.Component
	handle  dom.ListenerHandle
	started bool
}

// Option configures a Router.
type Option func(*Router)

// WithNotFound sets the factory used when no route matches.
func WithNotFound(f Factory) Option {
	return func(r *Router) { r.notFound = f }
}

// WithLogf overrides where resolution failures are reported.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(r *Router) { r.logf = logf }
}

// New creates a router over the given window. outlet is a selector
// string or a *dom.Element, resolved on every mount. Route keys are
// full fragments including the leading "#", e.g. "#/" or "#/counter".
func New(win *dom.Window, outlet any, routes map[string]Factory, opts ...Option) *Router {
	r := &Router{
		win:    win,
		outlet: outlet,
		routes: routes,
		logf:   log.Printf,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start registers the hashchange listener and immediately resolves the
// current location. Calling Start twice is a no-op.
func (r *Router) Start() {
	if r.started {
		return
	}
	r.started = true
	r.handle = r.win.AddEventListener("hashchange", func(dom.Event) {
		r.resolve()
	})
	r.resolve()
}

// Stop removes the navigation listener. The currently mounted
// component stays mounted.
func (r *Router) Stop() {
	if !r.started {
		return
	}
	r.started = false
	r.win.RemoveEventListener("hashchange", r.handle)
}

// Current returns the routed component that is mounted right now, or
// nil when nothing resolved.
func (r *Router) Current() component.Component {
	return r.current
}

// Navigate changes the window hash, which triggers resolution through
// the registered listener.
func (r *Router) Navigate(hash string) {
	r.win.Navigate(hash)
}

// resolve picks a factory for the current hash and swaps components.
// Fallback order: exact match, the not-found factory, the fragment
// without its trailing "/", then the "#/" root. When nothing resolves
// the outlet is left empty.
func (r *Router) resolve() {
	h := r.win.Hash()
	if h == "" {
		h = "#/"
	}

	factory := r.routes[h]
	if factory == nil && r.notFound != nil {
		factory = r.notFound
	}
	if factory == nil && len(h) > 1 && h[len(h)-1] == '/' {
		factory = r.routes[h[:len(h)-1]]
	}
	if factory == nil {
		factory = r.routes["#/"]
	}

	if factory == nil {
		r.unmountCurrent()
		return
	}

	// Destroy before construct: two routed components must never be
	// live at once.
	r.unmountCurrent()

	comp := factory()
	if err := component.Mount(comp, r.win, r.outlet); err != nil {
		r.logf("sitewinder/router: mount %q failed: %v", h, err)
		return
	}
	r.current = comp
}

func (r *Router) unmountCurrent() {
	if r.current == nil {
		return
	}
	r.current.Destroy()
	r.current = nil
}
