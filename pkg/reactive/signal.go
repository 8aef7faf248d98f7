package reactive

import (
	"log"
	"reflect"
	"sync"
)

// Source is the type-erased view of a Signal that a Collector records.
// The component runtime only needs identity and a way to watch for
// changes; it never needs the value itself.
type Source interface {
	// ID returns the unique identifier for this source.
	ID() uint64

	// Watch registers a callback invoked after every accepted value
	// change. It returns the function that removes exactly this
	// registration.
	Watch(fn func()) (unwatch func())
}

// subscription pairs a registration ID with its typed callback.
type subscription[T any] struct {
	id uint64
	fn func(old, new T)
}

// Signal is a reactive value container.
//
// Reading a Signal through Get during an active Collector scope records
// the signal as a dependency of that scope. Setting a value that compares
// equal to the current one is a no-op: no subscriber runs.
type Signal[T any] struct {
	id uint64

	// value is the current signal value, guarded by mu.
	value T
	mu    sync.RWMutex

	// subs are the active subscriptions, guarded by subMu.
	subs  []subscription[T]
	subMu sync.RWMutex

	// equal overrides the default equality check when non-nil.
	equal func(T, T) bool
}

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
	}
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value and records this signal as a dependency
// of the active Collector scope, if any. It never fails.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	// Track after releasing the value lock to keep Get reentrant from
	// subscriber callbacks.
	trackRead(s)

	return value
}

// Peek returns the current value without recording a dependency.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores a new value and notifies every subscriber with the old and
// new values. When the new value compares equal to the current one, Set
// does nothing. A panicking subscriber is recovered and logged; the
// remaining subscribers still run.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	old := s.value
	changed := !s.equals(old, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.notify(old, value)
	}
}

// Update atomically derives the new value from the current one.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	old := s.value
	next := fn(old)
	changed := !s.equals(old, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.notify(old, next)
	}
}

// Subscribe registers a change callback and returns the function that
// removes exactly this registration. Each call creates an independent
// registration, so the returned unsubscribe never detaches anyone else,
// and re-subscribing after unsubscribing works. Calling the returned
// function more than once is harmless.
func (s *Signal[T]) Subscribe(fn func(old, new T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	id := nextID()

	s.subMu.Lock()
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Watch implements Source. The callback fires on every accepted change
// without seeing the values.
func (s *Signal[T]) Watch(fn func()) (unwatch func()) {
	return s.Subscribe(func(T, T) { fn() })
}

// WithEquals configures a custom equality function and returns the
// signal for chaining. Useful when reflect.DeepEqual is too expensive
// or has the wrong semantics for T.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// notify invokes every current subscriber with copy-before-notify so no
// lock is held while user code runs.
func (s *Signal[T]) notify(old, new T) {
	s.subMu.RLock()
	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		invokeSubscriber(sub.fn, old, new)
	}
}

// invokeSubscriber runs one subscriber, containing panics so one broken
// subscriber cannot starve the others.
func invokeSubscriber[T any](fn func(old, new T), old, new T) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sitewinder/reactive: signal subscriber panic: %v", r)
		}
	}()
	fn(old, new)
}

// equals applies the configured or default equality check.
func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate structural equality: == for
// the primitive comparables, reflect.DeepEqual for everything else
// (slices, maps, structs).
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
