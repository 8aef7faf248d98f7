package component_test

import (
	"strings"
	"testing"

	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
)

type badge struct {
	component.Core
	label     string
	destroyed *int
}

func (b *badge) Template() *markup.Node {
	return markup.Span(markup.Class("badge"), b.label)
}

func (b *badge) OnDestroy() {
	if b.destroyed != nil {
		*b.destroyed++
	}
}

type panel struct {
	component.Core
	title          *reactive.Signal[string]
	childDestroyed *int
}

func (p *panel) Template() *markup.Node {
	return markup.Div(
		markup.H2(p.title.Get()),
		p.Portal(func() component.Component {
			return &badge{label: "inner", destroyed: p.childDestroyed}
		}),
	)
}

func TestPortalMountsChild(t *testing.T) {
	win := newHost(t)
	p := &panel{title: reactive.NewSignal("top")}

	if err := component.Mount(p, win, "#app"); err != nil {
		t.Fatal(err)
	}
	if got := p.Root().TextContent(); !strings.Contains(got, "inner") {
		t.Errorf("child output missing, got %q", got)
	}
	if p.Root().QuerySelector(".badge") == nil {
		t.Error("child subtree not present inside parent root")
	}
}

func TestPortalChildRebuiltOnParentRender(t *testing.T) {
	win := newHost(t)
	var destroyed int
	p := &panel{title: reactive.NewSignal("a"), childDestroyed: &destroyed}

	if err := component.Mount(p, win, "#app"); err != nil {
		t.Fatal(err)
	}
	p.title.Set("b")
	win.Scheduler().Flush()

	// The old child instance is torn down before the factory makes a
	// fresh one, so its signal subscriptions cannot leak.
	if destroyed != 1 {
		t.Errorf("expected old child destroyed once, got %d", destroyed)
	}
	if got := p.Root().TextContent(); !strings.Contains(got, "inner") {
		t.Errorf("rebuilt child output missing, got %q", got)
	}
}

func TestPortalChildDestroyedWithParent(t *testing.T) {
	win := newHost(t)
	var destroyed int
	p := &panel{title: reactive.NewSignal("a"), childDestroyed: &destroyed}

	if err := component.Mount(p, win, "#app"); err != nil {
		t.Fatal(err)
	}
	p.Destroy()
	if destroyed != 1 {
		t.Errorf("expected child destroyed with parent, got %d", destroyed)
	}
}

// brokenParent hosts a child whose template panics.
type brokenParent struct {
	component.Core
}

func (b *brokenParent) Template() *markup.Node {
	return markup.Div(
		markup.P("before"),
		b.Portal(func() component.Component { return &broken{} }),
		markup.P("after"),
	)
}

func TestPortalChildFailureIsContained(t *testing.T) {
	win := newHost(t)
	b := &brokenParent{}

	// A child that cannot mount must not take the parent down.
	if err := component.Mount(b, win, "#app"); err != nil {
		t.Fatalf("child failure escaped parent mount: %v", err)
	}
	got := b.Root().TextContent()
	if !strings.Contains(got, "before") || !strings.Contains(got, "after") {
		t.Errorf("parent content lost around failing child, got %q", got)
	}
}

// nested mounts a panel inside another component through Use.
type nested struct {
	component.Core
}

func (n *nested) Template() *markup.Node {
	return markup.Div(
		n.Use(func() component.Component {
			return &panel{title: reactive.NewSignal("deep")}
		}),
	)
}

func TestNestedPortals(t *testing.T) {
	win := newHost(t)
	n := &nested{}

	if err := component.Mount(n, win, "#app"); err != nil {
		t.Fatal(err)
	}
	got := n.Root().TextContent()
	if !strings.Contains(got, "deep") || !strings.Contains(got, "inner") {
		t.Errorf("nested child chain incomplete, got %q", got)
	}
}
