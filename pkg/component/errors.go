package component

import (
	"fmt"

	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
)

// HostResolutionError is returned when Mount cannot resolve its target
// to a live element. It is fatal to that Mount call; the caller must
// handle it.
type HostResolutionError struct {
	// Host is the selector or description of what failed to resolve.
	Host string
}

func (e *HostResolutionError) Error() string {
	return fmt.Sprintf("sitewinder: mount host not found: %s", e.Host)
}

// AlreadyMountedError is returned when Mount is called on an instance
// that is already mounted.
type AlreadyMountedError struct{ ID uint64 }

func (e *AlreadyMountedError) Error() string {
	return fmt.Sprintf("sitewinder: component %d is already mounted", e.ID)
}

// DestroyedError is returned when Mount is called on a destroyed
// instance. Re-mounting a destroyed instance is unsupported; construct
// a new one.
type DestroyedError struct{ ID uint64 }

func (e *DestroyedError) Error() string {
	return fmt.Sprintf("sitewinder: component %d is destroyed", e.ID)
}

// BindingScopeError reports violated collector stack discipline during
// a render pass. It indicates a framework bug or API misuse and is
// deliberately loud: the runtime panics with it rather than logging.
type BindingScopeError struct {
	Err error
}

func (e *BindingScopeError) Error() string {
	return fmt.Sprintf("sitewinder: binding scope violated: %v", e.Err)
}

func (e *BindingScopeError) Unwrap() error { return e.Err }

// newBindingScopeError wraps the reactive stack error.
func newBindingScopeError(err error) *BindingScopeError {
	if err == nil {
		err = reactive.ErrCollectorStack
	}
	return &BindingScopeError{Err: err}
}

// TemplateRenderError records a panic recovered from a user Template.
// It is logged and replaced with a visible fallback node, never
// propagated: a broken component must not crash the page.
type TemplateRenderError struct {
	ComponentID uint64
	Recovered   any
}

func (e *TemplateRenderError) Error() string {
	return fmt.Sprintf("sitewinder: component %d template panic: %v", e.ComponentID, e.Recovered)
}

// ChildMountError records a failure mounting a portal child. It is
// contained to that slot: the parent's render continues and the slot
// shows an inline error marker.
type ChildMountError struct {
	PortalID string
	Err      error
}

func (e *ChildMountError) Error() string {
	return fmt.Sprintf("sitewinder: portal %s child mount failed: %v", e.PortalID, e.Err)
}

func (e *ChildMountError) Unwrap() error { return e.Err }

// LifecycleHookError records a panic recovered from OnMount, OnUpdate
// or OnDestroy. Hook failures are logged and never propagated.
type LifecycleHookError struct {
	ComponentID uint64
	Hook        string
	Recovered   any
}

func (e *LifecycleHookError) Error() string {
	return fmt.Sprintf("sitewinder: component %d %s panic: %v", e.ComponentID, e.Hook, e.Recovered)
}
