// Package persist captures named signal state into msgpack snapshots
// and stores them on disk. The dev server uses it to carry application
// state across hot reloads; applications can use it for their own
// save/restore.
package persist

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
)

// Snapshot is the named state of a set of signals at one point in
// time. Values are whatever msgpack can round trip.
type Snapshot map[string]any

// Encode serializes a snapshot.
func Encode(s Snapshot) ([]byte, error) {
	return msgpack.Marshal(map[string]any(s))
}

// Decode deserializes a snapshot.
func Decode(data []byte) (Snapshot, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return Snapshot(m), nil
}

// entry adapts a typed signal to the untyped snapshot surface.
type entry struct {
	capture func() any
	restore func(raw []byte) error
}

// Registry tracks signals by name for capture and restore.
type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a signal under a unique name. Registering the same
// name twice replaces the earlier signal.
func Register[T any](r *Registry, name string, sig *reactive.Signal[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry{
		capture: func() any { return sig.Peek() },
		restore: func(raw []byte) error {
			var v T
			if err := msgpack.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("restore %q: %w", name, err)
			}
			sig.Set(v)
			return nil
		},
	}
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Capture reads every registered signal without creating dependencies.
func (r *Registry) Capture() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(Snapshot, len(r.entries))
	for name, e := range r.entries {
		snap[name] = e.capture()
	}
	return snap
}

// Restore writes snapshot values back into the registered signals.
// Snapshot keys with no registered signal are skipped; a value that
// does not fit its signal's type is an error. Each Set goes through
// the signal's normal notification path, so dependent components
// re-render.
func (r *Registry) Restore(snap Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, value := range snap {
		e, ok := r.entries[name]
		if !ok {
			continue
		}
		// Round trip through msgpack to convert the decoded any
		// (int64, map[string]any, ...) into the signal's own type.
		raw, err := msgpack.Marshal(value)
		if err != nil {
			return fmt.Errorf("restore %q: %w", name, err)
		}
		if err := e.restore(raw); err != nil {
			return err
		}
	}
	return nil
}
