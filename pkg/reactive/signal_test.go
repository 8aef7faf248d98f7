package reactive

import (
	"testing"
)

func TestSignalBasic(t *testing.T) {
	count := NewSignal(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestSignalEqualityGating(t *testing.T) {
	count := NewSignal(1)

	calls := 0
	count.Subscribe(func(old, new int) { calls++ })

	// Same value: no notification.
	count.Set(1)
	if calls != 0 {
		t.Errorf("set to current value should not notify, got %d calls", calls)
	}

	// Different value: exactly one notification per subscriber.
	count.Set(2)
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestSignalSubscribeOldNew(t *testing.T) {
	name := NewSignal("a")

	var gotOld, gotNew string
	name.Subscribe(func(old, new string) {
		gotOld, gotNew = old, new
	})

	name.Set("b")
	if gotOld != "a" || gotNew != "b" {
		t.Errorf("expected (a, b), got (%s, %s)", gotOld, gotNew)
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	count := NewSignal(0)

	calls := 0
	unsub := count.Subscribe(func(old, new int) { calls++ })

	count.Set(1)
	unsub()
	count.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}

	// Unsubscribing twice is harmless.
	unsub()

	// Re-subscribing after unsubscribe works.
	count.Subscribe(func(old, new int) { calls++ })
	count.Set(3)
	if calls != 2 {
		t.Errorf("expected 2 calls after re-subscribe, got %d", calls)
	}
}

func TestSignalUnsubscribeRemovesExactlyOne(t *testing.T) {
	count := NewSignal(0)

	var a, b int
	unsubA := count.Subscribe(func(old, new int) { a++ })
	count.Subscribe(func(old, new int) { b++ })

	unsubA()
	count.Set(1)

	if a != 0 {
		t.Errorf("unsubscribed callback ran %d times", a)
	}
	if b != 1 {
		t.Errorf("remaining callback should run once, got %d", b)
	}
}

func TestSignalSubscriberPanicIsolated(t *testing.T) {
	count := NewSignal(0)

	ran := false
	count.Subscribe(func(old, new int) { panic("boom") })
	count.Subscribe(func(old, new int) { ran = true })

	// Must not panic the caller of Set.
	count.Set(1)

	if !ran {
		t.Error("subscriber after a panicking one did not run")
	}
	if count.Get() != 1 {
		t.Errorf("value should still be stored, got %d", count.Get())
	}
}

func TestSignalStructuralEquality(t *testing.T) {
	s := NewSignal([]int{1, 2})

	calls := 0
	s.Subscribe(func(old, new []int) { calls++ })

	// Structurally equal slice: gated.
	s.Set([]int{1, 2})
	if calls != 0 {
		t.Errorf("structurally equal slice should not notify, got %d", calls)
	}

	s.Set([]int{1, 2, 3})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestSignalWithEquals(t *testing.T) {
	// Compare case-insensitively.
	s := NewSignal("go").WithEquals(func(a, b string) bool {
		return len(a) == len(b)
	})

	calls := 0
	s.Subscribe(func(old, new string) { calls++ })

	s.Set("GO") // same length, treated as equal
	if calls != 0 {
		t.Errorf("custom equality should gate, got %d calls", calls)
	}

	s.Set("gopher")
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestSignalPeekDoesNotTrack(t *testing.T) {
	count := NewSignal(42)

	c := NewCollector()
	WithCollector(c, func() {
		_ = count.Peek()
	})

	if c.Len() != 0 {
		t.Errorf("Peek should not record a dependency, got %d", c.Len())
	}
}

func TestSignalUpdateEqualityGated(t *testing.T) {
	count := NewSignal(7)

	calls := 0
	count.Subscribe(func(old, new int) { calls++ })

	count.Update(func(n int) int { return n })
	if calls != 0 {
		t.Errorf("identity update should not notify, got %d", calls)
	}
}

func TestEmitter(t *testing.T) {
	e := NewEmitter[string]()

	var got []string
	unsub := e.Subscribe(func(v string) { got = append(got, v) })

	e.Emit("a")
	e.Emit("b")
	unsub()
	e.Emit("c")

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected events: %v", got)
	}
}
