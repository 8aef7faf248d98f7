package component

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/sitewinder-dev/sitewinder/pkg/dom"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
)

// eventBinding is one declared DOM-event binding, scoped to the render
// generation that declared it.
type eventBinding struct {
	elemID  string
	event   string
	handler func(dom.Event)

	attachedTo *dom.Element
	handle     dom.ListenerHandle
}

// valueBinding is one declared two-way binding between a live node
// property and a signal, type-erased so string and bool bindings share
// the reconciliation path.
type valueBinding struct {
	elemID string
	prop   string
	event  string

	// readSignal returns the signal's current value untracked.
	readSignal func() any
	// writeSignal stores a value read back from the node property.
	writeSignal func(any)
	// watch subscribes to external signal changes.
	watch func(fn func()) func()

	attachedTo *dom.Element
	handle     dom.ListenerHandle
}

// portalBinding reserves a slot for a child component.
type portalBinding struct {
	portalID string
	factory  func() Component
}

// ensureMarker stamps the element with its binding marker, reusing an
// existing one so multiple bindings on one element share a node.
func ensureMarker(el *markup.Node) string {
	if id, ok := el.Attribute(MarkerAttr); ok && id != "" {
		return id
	}
	id := "swe-" + strconv.FormatUint(atomic.AddUint64(&markerCounter, 1), 10)
	el.SetAttribute(MarkerAttr, id)
	return id
}

// On declares a DOM event binding on an element built inside Template.
// The handler is attached after the tree materializes; an element the
// template conditionally omitted is silently skipped.
func (c *Core) On(el *markup.Node, event string, handler func(dom.Event)) *markup.Node {
	if el == nil || handler == nil {
		return el
	}
	c.events = append(c.events, &eventBinding{
		elemID:  ensureMarker(el),
		event:   event,
		handler: handler,
	})
	return el
}

// BindOption adjusts a value binding declaration.
type BindOption func(*valueBinding)

// WithEvent selects the DOM event that writes the node property back
// into the signal. The default is "input"; checkboxes typically use
// "change".
func WithEvent(event string) BindOption {
	return func(vb *valueBinding) { vb.event = event }
}

// BindValue two-way binds a text-like control's "value" property to a
// string signal: the property follows signal changes, and the
// configured event writes the property back into the signal. The
// template attribute is initialized from the signal so serialized
// markup matches; the read is tracked, making the signal a dependency.
func (c *Core) BindValue(el *markup.Node, sig *reactive.Signal[string], opts ...BindOption) *markup.Node {
	if el == nil || sig == nil {
		return el
	}
	vb := &valueBinding{
		elemID:     ensureMarker(el),
		prop:       "value",
		event:      "input",
		readSignal: func() any { return sig.Peek() },
		writeSignal: func(v any) {
			if s, ok := v.(string); ok {
				sig.Set(s)
			}
		},
		watch: func(fn func()) func() { return sig.Watch(fn) },
	}
	for _, opt := range opts {
		opt(vb)
	}
	el.SetAttribute("value", sig.Get())
	c.values = append(c.values, vb)
	return el
}

// BindChecked two-way binds a checkbox's "checked" property to a bool
// signal. The write-back event defaults to "change".
func (c *Core) BindChecked(el *markup.Node, sig *reactive.Signal[bool], opts ...BindOption) *markup.Node {
	if el == nil || sig == nil {
		return el
	}
	vb := &valueBinding{
		elemID:     ensureMarker(el),
		prop:       "checked",
		event:      "change",
		readSignal: func() any { return sig.Peek() },
		writeSignal: func(v any) {
			if b, ok := v.(bool); ok {
				sig.Set(b)
			}
		},
		watch: func(fn func()) func() { return sig.Watch(fn) },
	}
	for _, opt := range opts {
		opt(vb)
	}
	if sig.Get() {
		el.SetAttribute("checked", "checked")
	}
	c.values = append(c.values, vb)
	return el
}

// Portal reserves a placeholder slot that a new child component fills
// after this component's own bindings attach. The factory runs once
// per render generation; mount failures are contained to the slot.
func (c *Core) Portal(factory func() Component) *markup.Node {
	id := "swp-" + strconv.FormatUint(atomic.AddUint64(&portalCounter, 1), 10)
	placeholder := markup.Div(markup.Custom(PortalAttr, id))
	c.portals = append(c.portals, &portalBinding{portalID: id, factory: factory})
	return placeholder
}

// Use is an alias for Portal.
func (c *Core) Use(factory func() Component) *markup.Node {
	return c.Portal(factory)
}

// applyEventBindings attaches this generation's event handlers by
// marker lookup. Elements omitted by conditional template logic are
// skipped, not errors.
func (c *Core) applyEventBindings() {
	for _, eb := range c.events {
		el := c.root.QueryByAttr(MarkerAttr, eb.elemID)
		if el == nil {
			continue
		}
		eb.attachedTo = el
		eb.handle = el.AddEventListener(eb.event, eb.handler)
	}
}

// applyValueBindings wires both directions of each value binding:
// initialize the property from the signal, write the property back on
// the configured event, and follow external signal changes.
func (c *Core) applyValueBindings() {
	for _, vb := range c.values {
		el := c.root.QueryByAttr(MarkerAttr, vb.elemID)
		if el == nil {
			continue
		}

		el.SetProperty(vb.prop, vb.readSignal())

		binding := vb
		vb.attachedTo = el
		vb.handle = el.AddEventListener(vb.event, func(ev dom.Event) {
			if v, ok := ev.Target.Property(binding.prop); ok {
				binding.writeSignal(v)
			}
		})

		// External signal changes flow into the node property. The
		// subscription dies with the render generation.
		node := el
		c.unsubs = append(c.unsubs, vb.watch(func() {
			node.SetProperty(binding.prop, binding.readSignal())
		}))
	}
}

// mountPortalChildren mounts one child instance per reserved slot.
// A panicking factory or failing mount is logged and replaced with an
// inline error marker in that slot only.
func (c *Core) mountPortalChildren() {
	for _, pb := range c.portals {
		slot := c.root.QueryByAttr(PortalAttr, pb.portalID)
		if slot == nil {
			continue
		}
		if err := c.mountChild(pb, slot); err != nil {
			c.logf("%v", err)
			slot.SetText(fmt.Sprintf("[sitewinder] failed to mount child: %v", err))
		}
	}
}

// mountChild constructs and mounts one portal child, converting panics
// and mount errors into a ChildMountError.
func (c *Core) mountChild(pb *portalBinding, slot *dom.Element) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ChildMountError{PortalID: pb.portalID, Err: fmt.Errorf("%v", r)}
		}
	}()

	child := pb.factory()
	if child == nil {
		return &ChildMountError{PortalID: pb.portalID, Err: fmt.Errorf("factory returned nil")}
	}
	if mountErr := Mount(child, c.win, slot); mountErr != nil {
		return &ChildMountError{PortalID: pb.portalID, Err: mountErr}
	}
	c.children = append(c.children, child)
	return nil
}

// detachBindings removes every live listener of the previous render
// generation. No binding survives its owning node's removal.
func (c *Core) detachBindings() {
	for _, eb := range c.events {
		if eb.attachedTo != nil {
			eb.attachedTo.RemoveEventListener(eb.event, eb.handle)
			eb.attachedTo = nil
		}
	}
	for _, vb := range c.values {
		if vb.attachedTo != nil {
			vb.attachedTo.RemoveEventListener(vb.event, vb.handle)
			vb.attachedTo = nil
		}
	}
}

// destroyChildren tears down the previous generation's portal children.
func (c *Core) destroyChildren() {
	for _, child := range c.children {
		child.base().Destroy()
	}
	c.children = nil
}

// unsubscribeSignals releases every signal subscription of the previous
// render generation.
func (c *Core) unsubscribeSignals() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
}
