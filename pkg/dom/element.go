package dom

import (
	"sort"
	"strings"
	"sync/atomic"
)

// listenerIDCounter issues handles for event listener registrations.
var listenerIDCounter uint64

// nextListenerHandle returns the next unique listener handle value.
func nextListenerHandle() uint64 {
	return atomic.AddUint64(&listenerIDCounter, 1)
}

// ListenerHandle identifies one event listener registration on one
// element. Removal by handle detaches exactly that registration.
type ListenerHandle uint64

// Event is a dispatched DOM event.
type Event struct {
	Type   string
	Target *Element
}

// listenerReg pairs a handle with its callback.
type listenerReg struct {
	handle ListenerHandle
	fn     func(Event)
}

// Element is one live node in the document tree. Text nodes are
// elements with an empty tag and a non-nil text payload.
type Element struct {
	tag    string
	isText bool
	text   string

	attrs     map[string]string
	props     map[string]any
	children  []*Element
	parent    *Element
	listeners map[string][]listenerReg
}

// newElement creates a detached element with the given tag.
func newElement(tag string) *Element {
	return &Element{
		tag:       tag,
		attrs:     make(map[string]string),
		props:     make(map[string]any),
		listeners: make(map[string][]listenerReg),
	}
}

// newText creates a detached text node.
func newText(text string) *Element {
	return &Element{isText: true, text: text}
}

// Tag returns the element's tag name, or "" for a text node.
func (e *Element) Tag() string { return e.tag }

// IsText reports whether this node is a text node.
func (e *Element) IsText() bool { return e.isText }

// Parent returns the parent element, or nil for a detached root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	if e.isText {
		return
	}
	e.attrs[name] = value
}

// Attribute returns an attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Attributes returns a copy of the attribute map.
func (e *Element) Attributes() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// AttributeNames returns the attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AddClass appends class names to the class attribute.
func (e *Element) AddClass(names ...string) {
	existing := strings.Fields(e.attrs["class"])
	for _, n := range names {
		if n == "" {
			continue
		}
		found := false
		for _, have := range existing {
			if have == n {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, n)
		}
	}
	e.attrs["class"] = strings.Join(existing, " ")
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	for _, have := range strings.Fields(e.attrs["class"]) {
		if have == name {
			return true
		}
	}
	return false
}

// SetProperty sets a live node property such as "value" or "checked".
// Properties are distinct from attributes, mirroring how form controls
// behave in a real document.
func (e *Element) SetProperty(name string, value any) {
	if e.isText {
		return
	}
	e.props[name] = value
}

// Property returns a live node property and whether it is set.
func (e *Element) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// AppendChild attaches child as the last child of e. A child attached
// elsewhere is detached from its old parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || e.isText {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. Unknown children are ignored.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// RemoveChildren detaches every child, the equivalent of clearing
// innerHTML.
func (e *Element) RemoveChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// SetText replaces the node's own text payload. On a non-text element
// it replaces all children with a single text node.
func (e *Element) SetText(text string) {
	if e.isText {
		e.text = text
		return
	}
	e.RemoveChildren()
	e.AppendChild(newText(text))
}

// TextContent returns the concatenated text of this node and all of its
// descendants.
func (e *Element) TextContent() string {
	if e.isText {
		return e.text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// AddEventListener registers a callback for the given event type and
// returns the handle used to remove it.
func (e *Element) AddEventListener(event string, fn func(Event)) ListenerHandle {
	if e.isText {
		return 0
	}
	h := ListenerHandle(nextListenerHandle())
	e.listeners[event] = append(e.listeners[event], listenerReg{handle: h, fn: fn})
	return h
}

// RemoveEventListener removes exactly the registration identified by
// the handle. Removing an unknown handle is harmless.
func (e *Element) RemoveEventListener(event string, h ListenerHandle) {
	regs := e.listeners[event]
	for i, reg := range regs {
		if reg.handle == h {
			e.listeners[event] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of live registrations for an event
// type. Exposed for lifecycle assertions in tests.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// DispatchEvent synchronously invokes every listener registered for the
// event's type on this element.
func (e *Element) DispatchEvent(ev Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	regs := make([]listenerReg, len(e.listeners[ev.Type]))
	copy(regs, e.listeners[ev.Type])
	for _, reg := range regs {
		reg.fn(ev)
	}
}

// Click is shorthand for dispatching a "click" event.
func (e *Element) Click() {
	e.DispatchEvent(Event{Type: "click", Target: e})
}

// walk visits e and all descendants until visit returns false.
func (e *Element) walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}
