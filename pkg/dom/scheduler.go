package dom

import "sync"

// Scheduler is the single-threaded event-loop model: callbacks queued
// with Schedule run on a future "turn", never synchronously. Components
// use it to coalesce re-renders; tests use Flush to advance time
// deterministically.
type Scheduler struct {
	mu    sync.Mutex
	queue []func()
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule enqueues fn for a future turn.
func (s *Scheduler) Schedule(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
}

// Len returns the number of queued callbacks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Pump runs the single oldest queued callback, if any. It reports
// whether one ran.
func (s *Scheduler) Pump() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	fn := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()

	fn()
	return true
}

// Flush runs queued callbacks until the queue is empty, including
// callbacks enqueued by earlier ones in the same flush. This is the
// test counterpart of letting the browser event loop settle.
func (s *Scheduler) Flush() {
	for s.Pump() {
	}
}
