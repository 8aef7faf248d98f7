package component_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
	"github.com/sitewinder-dev/sitewinder/pkg/style"
)

func TestScopeCSSPrefixesSelectors(t *testing.T) {
	in := ".x {\n  color: red;\n}\n"
	want := `[data-sw-cid="7"] .x {` + "\n  color: red;\n}\n"

	got := component.ScopeCSS(in, `[data-sw-cid="7"]`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scoped css mismatch (-want +got):\n%s", diff)
	}
}

func TestScopeCSSSelectorList(t *testing.T) {
	in := ".a, .b {\n  margin: 0;\n}\n"
	got := component.ScopeCSS(in, "[data-sw-cid=\"1\"]")

	if !strings.Contains(got, `[data-sw-cid="1"] .a, [data-sw-cid="1"] .b {`) {
		t.Errorf("every selector in the list should be prefixed, got %q", got)
	}
}

func TestScopeCSSAtRulePassthrough(t *testing.T) {
	in := "@media (max-width: 600px) {\n.x {\n  display: none;\n}\n}\n"
	got := component.ScopeCSS(in, "[data-sw-cid=\"2\"]")

	if !strings.Contains(got, "@media (max-width: 600px) {") {
		t.Errorf("at-rule prelude must pass through unscoped, got %q", got)
	}
	if !strings.Contains(got, `[data-sw-cid="2"] .x {`) {
		t.Errorf("rule inside at-rule body should still be scoped, got %q", got)
	}
}

func TestScopeCSSBlankLines(t *testing.T) {
	in := "\n.x {\n  color: red;\n}\n\n"
	got := component.ScopeCSS(in, "[data-sw-cid=\"3\"]")
	if strings.Contains(got, "[data-sw-cid=\"3\"] \n") {
		t.Errorf("blank lines must not be prefixed, got %q", got)
	}
}

// styled carries a stylesheet built with the style package.
type styled struct {
	component.Core
}

func (s *styled) Template() *markup.Node {
	return markup.Div(markup.Class("card"), "hello")
}

func (s *styled) Styles() style.CSS {
	return style.New().
		Rule(".card", style.D("color", "red"), style.D("padding", "4px"))
}

func TestComponentStylesInjectedScoped(t *testing.T) {
	win := newHost(t)
	s := &styled{}

	if err := component.Mount(s, win, "#app"); err != nil {
		t.Fatal(err)
	}

	styleEl := win.Document().Head().QuerySelector("style")
	if styleEl == nil {
		t.Fatal("style element not injected into head")
	}
	css := styleEl.TextContent()
	scope, _ := s.Root().Attribute(component.ScopeAttr)
	if scope == "" {
		t.Fatal("root missing scope attribute")
	}
	wantPrefix := `[` + component.ScopeAttr + `="` + scope + `"] .card`
	if !strings.Contains(css, wantPrefix) {
		t.Errorf("css not scoped to instance, want prefix %q in %q", wantPrefix, css)
	}
}

func TestComponentStylesUnscopedOptOut(t *testing.T) {
	win := newHost(t)
	s := &styled{}
	s.DisableScopedStyles()

	if err := component.Mount(s, win, "#app"); err != nil {
		t.Fatal(err)
	}

	css := win.Document().Head().QuerySelector("style").TextContent()
	if strings.Contains(css, component.ScopeAttr) {
		t.Errorf("opt-out styles must stay unscoped, got %q", css)
	}
	if !strings.Contains(css, ".card {") {
		t.Errorf("raw selector missing, got %q", css)
	}
}

func TestStyleElementRemovedOnDestroy(t *testing.T) {
	win := newHost(t)
	s := &styled{}

	if err := component.Mount(s, win, "#app"); err != nil {
		t.Fatal(err)
	}
	s.Destroy()
	if win.Document().Head().QuerySelector("style") != nil {
		t.Error("style element should be removed with its component")
	}
}

// styledCounter re-renders while carrying styles, to observe style
// element reuse.
type styledCounter struct {
	component.Core
	n *reactive.Signal[int]
}

func (s *styledCounter) Template() *markup.Node {
	return markup.Div(markup.Textf("%d", s.n.Get()))
}

func (s *styledCounter) Styles() style.CSS {
	return style.Text(".x {\n  color: blue;\n}\n")
}

func TestStyleElementReusedAcrossRenders(t *testing.T) {
	win := newHost(t)
	s := &styledCounter{n: reactive.NewSignal(0)}

	if err := component.Mount(s, win, "#app"); err != nil {
		t.Fatal(err)
	}
	s.n.Set(1)
	win.Scheduler().Flush()
	s.n.Set(2)
	win.Scheduler().Flush()

	if got := len(win.Document().Head().QuerySelectorAll("style")); got != 1 {
		t.Errorf("expected a single reused style element, got %d", got)
	}
}
