package reactive

import (
	"errors"
	"testing"
)

func TestCollectorRecordsReads(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal("x")
	c := NewSignal(true)

	col := NewCollector()
	WithCollector(col, func() {
		_ = a.Get()
		_ = b.Get()
		// c deliberately not read.
	})

	if col.Len() != 2 {
		t.Fatalf("expected 2 recorded sources, got %d", col.Len())
	}

	ids := map[uint64]bool{}
	for _, src := range col.Sources() {
		ids[src.ID()] = true
	}
	if !ids[a.ID()] || !ids[b.ID()] {
		t.Error("collector missing a read signal")
	}
	if ids[c.ID()] {
		t.Error("collector recorded a signal that was never read")
	}
}

func TestCollectorDeduplicatesReads(t *testing.T) {
	a := NewSignal(0)

	col := NewCollector()
	WithCollector(col, func() {
		_ = a.Get()
		_ = a.Get()
		_ = a.Get()
	})

	if col.Len() != 1 {
		t.Errorf("expected 1 distinct source, got %d", col.Len())
	}
}

func TestCollectorNoScopeNoTracking(t *testing.T) {
	a := NewSignal(0)

	// Reading outside any scope must not panic or record anywhere.
	_ = a.Get()

	col := NewCollector()
	WithCollector(col, func() {})
	if col.Len() != 0 {
		t.Errorf("expected empty collector, got %d", col.Len())
	}
}

func TestNestedCollectorDoesNotLeakToParent(t *testing.T) {
	parentSig := NewSignal(1)
	childSig := NewSignal(2)

	parent := NewCollector()
	child := NewCollector()

	WithCollector(parent, func() {
		_ = parentSig.Get()
		WithCollector(child, func() {
			_ = childSig.Get()
		})
		// Back in the parent scope.
		_ = parentSig.Get()
	})

	if parent.Len() != 1 {
		t.Errorf("parent should only hold its own read, got %d", parent.Len())
	}
	if parent.Sources()[0].ID() != parentSig.ID() {
		t.Error("parent recorded the wrong signal")
	}
	if child.Len() != 1 || child.Sources()[0].ID() != childSig.ID() {
		t.Error("child scope did not record its own read")
	}
}

func TestCollectorScopeSurvivesPanic(t *testing.T) {
	outer := NewSignal(1)

	col := NewCollector()
	func() {
		defer func() { recover() }()
		WithCollector(NewCollector(), func() {
			panic("template blew up")
		})
	}()

	// The panicked scope must have been popped: reads now land in the
	// next scope, not a stale one.
	WithCollector(col, func() {
		_ = outer.Get()
	})
	if col.Len() != 1 {
		t.Errorf("expected 1 source after recovered panic, got %d", col.Len())
	}
}

func TestPopUnderflow(t *testing.T) {
	if err := Pop(); !errors.Is(err, ErrCollectorStack) {
		t.Errorf("expected ErrCollectorStack, got %v", err)
	}
}

func TestUntracked(t *testing.T) {
	a := NewSignal(1)

	col := NewCollector()
	WithCollector(col, func() {
		Untracked(func() {
			_ = a.Get()
		})
	})

	if col.Len() != 0 {
		t.Errorf("untracked read leaked into collector, got %d", col.Len())
	}
}

func TestWatchFiresOnChange(t *testing.T) {
	a := NewSignal(0)

	fired := 0
	unwatch := a.Watch(func() { fired++ })

	a.Set(1)
	a.Set(1) // gated
	a.Set(2)

	if fired != 2 {
		t.Errorf("expected 2 watch notifications, got %d", fired)
	}

	unwatch()
	a.Set(3)
	if fired != 2 {
		t.Errorf("watch fired after unwatch, got %d", fired)
	}
}
