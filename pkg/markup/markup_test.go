package markup

import (
	"testing"

	"github.com/sitewinder-dev/sitewinder/pkg/dom"
)

func TestRenderToMarkup(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "simple element",
			node: Div(Class("card"), "hello"),
			want: `<div class="card">hello</div>`,
		},
		{
			name: "nested elements",
			node: Ul(Li("a"), Li("b")),
			want: `<ul><li>a</li><li>b</li></ul>`,
		},
		{
			name: "attributes sorted",
			node: El("div", Attr{Key: "z", Value: "1"}, Attr{Key: "a", Value: "2"}),
			want: `<div a="2" z="1"></div>`,
		},
		{
			name: "void element",
			node: Input(Type("text"), Value("x")),
			want: `<input type="text" value="x">`,
		},
		{
			name: "text escaping",
			node: P("a < b & c"),
			want: `<p>a &lt; b &amp; c</p>`,
		},
		{
			name: "attribute escaping",
			node: Div(Title(`say "hi"`)),
			want: `<div title="say &quot;hi&quot;"></div>`,
		},
		{
			name: "raw passthrough",
			node: Div(Raw("<b>bold</b>")),
			want: `<div><b>bold</b></div>`,
		},
		{
			name: "fragment",
			node: Fragment(Span("a"), Span("b")),
			want: `<span>a</span><span>b</span>`,
		},
		{
			name: "nil children ignored",
			node: Div(If(false, Span("hidden")), Span("shown")),
			want: `<div><span>shown</span></div>`,
		},
		{
			name: "textf",
			node: P(Textf("Count: %d", 3)),
			want: `<p>Count: 3</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.RenderToMarkup(); got != tt.want {
				t.Errorf("RenderToMarkup() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeAttributeAPI(t *testing.T) {
	n := Div()
	n.SetAttribute("data-sw-id", "swe-1")
	n.AddClass("a")
	n.AddClass("a", "b")

	if v, ok := n.Attribute("data-sw-id"); !ok || v != "swe-1" {
		t.Errorf("expected marker attribute, got %q (%v)", v, ok)
	}
	if got := n.Attrs["class"]; got != "a b" {
		t.Errorf("expected class %q, got %q", "a b", got)
	}

	attrs := n.Attributes()
	attrs["class"] = "mutated"
	if n.Attrs["class"] != "a b" {
		t.Error("Attributes() must return a copy")
	}
}

func TestMap(t *testing.T) {
	items := []string{"x", "y"}
	node := Ul(Map(items, func(s string) *Node { return Li(s) }))
	if got := node.RenderToMarkup(); got != "<ul><li>x</li><li>y</li></ul>" {
		t.Errorf("unexpected markup: %q", got)
	}
}

func TestMaterialize(t *testing.T) {
	d := dom.NewDocument()

	node := Div(
		Class("root"),
		H1("Title"),
		Fragment(Span("a"), Span("b")),
	)

	created := node.Materialize(d.Body())
	if len(created) != 1 {
		t.Fatalf("expected 1 top-level element, got %d", len(created))
	}

	root := created[0]
	if root.Tag() != "div" || !root.HasClass("root") {
		t.Error("materialized root has wrong tag or class")
	}
	if got := root.TextContent(); got != "Titleab" {
		t.Errorf("unexpected text content %q", got)
	}
	if len(root.Children()) != 3 {
		t.Errorf("expected 3 children (h1 + 2 spans), got %d", len(root.Children()))
	}
}

func TestMaterializeFragmentTopLevel(t *testing.T) {
	d := dom.NewDocument()

	created := Fragment(Div(), Div()).Materialize(d.Body())
	if len(created) != 2 {
		t.Errorf("fragment should contribute each child, got %d", len(created))
	}
	if len(d.Body().Children()) != 2 {
		t.Errorf("expected 2 body children, got %d", len(d.Body().Children()))
	}
}
