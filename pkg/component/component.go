package component

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/sitewinder-dev/sitewinder/pkg/dom"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/style"
)

// Component is anything with a Template and an embedded Core. User
// components embed Core and implement Template:
//
//	type Counter struct {
//	    component.Core
//	    count *reactive.Signal[int]
//	}
//
//	func (c *Counter) Template() *markup.Node { ... }
//
// The unexported base method is provided by the embedded Core, so only
// Core-embedding types satisfy the interface.
type Component interface {
	// Template returns the markup for the current state. It is
	// re-invoked on every render pass; signals read inside it become
	// the component's dependencies for that pass.
	Template() *markup.Node

	// Destroy unmounts the component and releases everything it owns.
	// Provided by the embedded Core.
	Destroy()

	base() *Core
}

// Styler is implemented by components that carry styles. The returned
// CSS is scoped to the instance and injected once per component into
// the document head, its content replaced on every render.
type Styler interface {
	Styles() style.CSS
}

// Initializer is implemented by components with setup logic. OnInit
// runs exactly once, synchronously, before the first render.
type Initializer interface {
	OnInit()
}

// Mounter is implemented by components that react to their first
// successful render.
type Mounter interface {
	OnMount()
}

// Updater is implemented by components that react to re-renders.
type Updater interface {
	OnUpdate()
}

// Destroyer is implemented by components with teardown logic.
type Destroyer interface {
	OnDestroy()
}

// State is the component mount state. Transitions only move forward:
// re-mounting a destroyed instance is unsupported.
type State uint8

const (
	Unmounted State = iota
	Mounted
	Destroyed
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case Unmounted:
		return "Unmounted"
	case Mounted:
		return "Mounted"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Marker attributes the runtime stamps on live elements.
const (
	// MarkerAttr identifies elements with event or value bindings.
	MarkerAttr = "data-sw-id"
	// PortalAttr identifies child component placeholder slots.
	PortalAttr = "data-sw-portal"
	// ScopeAttr carries the instance id used for style scoping.
	ScopeAttr = "data-sw-cid"
	// RootAttr tags the subtree root the component owns.
	RootAttr = "data-sw-root"
)

var (
	instanceCounter uint64
	markerCounter   uint64
	portalCounter   uint64
)

// Core carries the runtime state of one component instance: identity,
// mount state, the owned DOM subtree, and the per-render registries of
// event bindings, value bindings, portals and signal subscriptions.
// Embed it by value and let the runtime manage it.
type Core struct {
	id   uint64
	self Component

	win     *dom.Window
	host    *dom.Element
	root    *dom.Element
	styleEl *dom.Element

	mu            sync.Mutex
	state         State
	pendingRender bool
	initialized   bool
	everRendered  bool

	// Per-render registries. Cleared and rebuilt on every pass; no list
	// ever holds both a stale and a fresh entry.
	events   []*eventBinding
	values   []*valueBinding
	portals  []*portalBinding
	unsubs   []func()
	children []Component

	logger              Logger
	recorder            Recorder
	disableScopedStyles bool
}

// base implements Component for every embedding type.
func (c *Core) base() *Core { return c }

// ensureID assigns the instance id on first use.
func (c *Core) ensureID() {
	if c.id == 0 {
		c.id = atomic.AddUint64(&instanceCounter, 1)
	}
}

// InstanceID returns the component's monotonically assigned id.
func (c *Core) InstanceID() uint64 {
	c.ensureID()
	return c.id
}

// State returns the current mount state.
func (c *Core) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Root returns the live subtree root this instance owns, or nil before
// the first mount.
func (c *Core) Root() *dom.Element { return c.root }

// Window returns the window this instance is mounted into.
func (c *Core) Window() *dom.Window { return c.win }

// SetLogger overrides the logger used for contained errors.
func (c *Core) SetLogger(l Logger) { c.logger = l }

// SetRecorder installs a telemetry recorder for this instance.
func (c *Core) SetRecorder(r Recorder) { c.recorder = r }

// DisableScopedStyles turns off per-instance style scoping, injecting
// the component's CSS globally instead.
func (c *Core) DisableScopedStyles() { c.disableScopedStyles = true }

// scopeSelector is the attribute selector prefixed onto scoped rules.
func (c *Core) scopeSelector() string {
	return `[` + ScopeAttr + `="` + strconv.FormatUint(c.id, 10) + `"]`
}

func (c *Core) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (c *Core) record() Recorder {
	if c.recorder != nil {
		return c.recorder
	}
	return NopRecorder{}
}

// Mount resolves host and performs the component's first render pass.
// host may be a selector string or a *dom.Element. Mount is the only
// place resolution failures propagate; everything later is contained.
func Mount(comp Component, win *dom.Window, host any) error {
	c := comp.base()
	c.ensureID()

	c.mu.Lock()
	switch c.state {
	case Mounted:
		c.mu.Unlock()
		return &AlreadyMountedError{ID: c.id}
	case Destroyed:
		c.mu.Unlock()
		return &DestroyedError{ID: c.id}
	}
	c.self = comp
	c.win = win
	c.mu.Unlock()

	el, err := resolveHost(win, host)
	if err != nil {
		return err
	}
	c.host = el

	// OnInit runs once, synchronously, before the first render.
	// Unlike the later hooks its failure propagates: an instance that
	// cannot initialize never mounts.
	if !c.initialized {
		if init, ok := comp.(Initializer); ok {
			if err := runInit(c, init); err != nil {
				return err
			}
		}
		c.initialized = true
	}

	c.mu.Lock()
	c.state = Mounted
	c.mu.Unlock()

	c.renderAndMount(true)
	return nil
}

// runInit converts an OnInit panic into a mount error.
func runInit(c *Core, init Initializer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &LifecycleHookError{ComponentID: c.id, Hook: "OnInit", Recovered: r}
		}
	}()
	init.OnInit()
	return nil
}

// resolveHost turns a selector or element into a live anchor.
func resolveHost(win *dom.Window, host any) (*dom.Element, error) {
	switch h := host.(type) {
	case string:
		if win == nil {
			return nil, &HostResolutionError{Host: h}
		}
		el := win.Document().QuerySelector(h)
		if el == nil {
			return nil, &HostResolutionError{Host: h}
		}
		return el, nil
	case *dom.Element:
		if h == nil {
			return nil, &HostResolutionError{Host: "nil element"}
		}
		return h, nil
	default:
		return nil, &HostResolutionError{Host: "unsupported host type"}
	}
}

// scheduleRerender queues one coalesced render pass on the event loop.
// Multiple signal notifications before the next turn collapse into a
// single pass; a destroyed component never renders again.
func (c *Core) scheduleRerender() {
	c.mu.Lock()
	if c.pendingRender || c.state != Mounted {
		c.mu.Unlock()
		return
	}
	c.pendingRender = true
	win := c.win
	c.mu.Unlock()

	win.Scheduler().Schedule(func() {
		c.mu.Lock()
		c.pendingRender = false
		if c.state != Mounted {
			// Destroyed while the render was pending; the stale
			// callback must not resurrect the component.
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		c.renderAndMount(false)
	})
}

// Destroy unmounts the component and releases everything it owns:
// bindings, signal subscriptions, portal children, the subtree root and
// the injected style element. Destroying twice is a no-op; a pending
// re-render scheduled before Destroy never runs.
func (c *Core) Destroy() {
	c.mu.Lock()
	if c.state == Destroyed {
		c.mu.Unlock()
		return
	}
	c.state = Destroyed
	c.mu.Unlock()

	c.detachBindings()
	c.destroyChildren()
	c.unsubscribeSignals()

	if c.root != nil && c.host != nil {
		c.host.RemoveChild(c.root)
	}
	if c.styleEl != nil && c.styleEl.Parent() != nil {
		c.styleEl.Parent().RemoveChild(c.styleEl)
	}

	if d, ok := c.self.(Destroyer); ok {
		c.runHook("OnDestroy", d.OnDestroy)
	}
	c.record().ComponentDestroyed(c.id)
}

// runHook invokes a lifecycle hook with panic containment.
func (c *Core) runHook(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := &LifecycleHookError{ComponentID: c.id, Hook: name, Recovered: r}
			c.logf("%v", err)
		}
	}()
	fn()
}
