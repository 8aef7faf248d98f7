package reactive

import (
	"log"
	"sync"
)

// Emitter is a minimal typed event channel for component outputs.
// Unlike Signal it holds no value: Emit pushes an event to every
// current subscriber and nothing is retained.
type Emitter[T any] struct {
	subs  []subscription[T]
	subMu sync.RWMutex
}

// NewEmitter returns an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe registers a callback and returns the function that removes
// exactly this registration.
func (e *Emitter[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	id := nextID()

	e.subMu.Lock()
	e.subs = append(e.subs, subscription[T]{id: id, fn: func(_, v T) { fn(v) }})
	e.subMu.Unlock()

	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		for i, sub := range e.subs {
			if sub.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers v to every current subscriber. A panicking subscriber
// is recovered and logged; the remaining subscribers still run.
func (e *Emitter[T]) Emit(v T) {
	e.subMu.RLock()
	subs := make([]subscription[T], len(e.subs))
	copy(subs, e.subs)
	e.subMu.RUnlock()

	var zero T
	for _, sub := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("sitewinder/reactive: emitter subscriber panic: %v", r)
				}
			}()
			sub.fn(zero, v)
		}()
	}
}
