package dom

// Window ties together a document, the location hash and the event-loop
// scheduler. One Window stands in for one browsing context; tests and
// the router each get their own.
type Window struct {
	doc       *Document
	scheduler *Scheduler

	hash      string
	listeners map[string][]listenerReg
}

// NewWindow creates a window with a fresh document and scheduler. The
// location hash starts empty, which the router treats as the root key.
func NewWindow() *Window {
	return &Window{
		doc:       NewDocument(),
		scheduler: NewScheduler(),
		listeners: make(map[string][]listenerReg),
	}
}

// Document returns the window's document.
func (w *Window) Document() *Document { return w.doc }

// Scheduler returns the window's event-loop scheduler.
func (w *Window) Scheduler() *Scheduler { return w.scheduler }

// Hash returns the current location hash, including the leading "#"
// when non-empty.
func (w *Window) Hash() string { return w.hash }

// Navigate changes the location hash and synchronously fires the
// "hashchange" listeners, matching how a hash assignment behaves in a
// browser. Navigating to the current hash does nothing.
func (w *Window) Navigate(hash string) {
	if hash == w.hash {
		return
	}
	w.hash = hash
	regs := make([]listenerReg, len(w.listeners["hashchange"]))
	copy(regs, w.listeners["hashchange"])
	for _, reg := range regs {
		reg.fn(Event{Type: "hashchange"})
	}
}

// AddEventListener registers a window-level event callback (the router
// uses "hashchange") and returns the removal handle.
func (w *Window) AddEventListener(event string, fn func(Event)) ListenerHandle {
	h := ListenerHandle(nextListenerHandle())
	w.listeners[event] = append(w.listeners[event], listenerReg{handle: h, fn: fn})
	return h
}

// RemoveEventListener removes exactly the registration identified by
// the handle.
func (w *Window) RemoveEventListener(event string, h ListenerHandle) {
	regs := w.listeners[event]
	for i, reg := range regs {
		if reg.handle == h {
			w.listeners[event] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of live window registrations for an
// event type.
func (w *Window) ListenerCount(event string) int {
	return len(w.listeners[event])
}
