package markup

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with an arbitrary tag.
func El(tag string, args ...any) *Node { return createElement(tag, args) }

// Sectioning and headings

func Header(args ...any) *Node  { return createElement("header", args) }
func Footer(args ...any) *Node  { return createElement("footer", args) }
func Main(args ...any) *Node    { return createElement("main", args) }
func Nav(args ...any) *Node     { return createElement("nav", args) }
func Section(args ...any) *Node { return createElement("section", args) }
func Article(args ...any) *Node { return createElement("article", args) }
func Aside(args ...any) *Node   { return createElement("aside", args) }
func H1(args ...any) *Node      { return createElement("h1", args) }
func H2(args ...any) *Node      { return createElement("h2", args) }
func H3(args ...any) *Node      { return createElement("h3", args) }
func H4(args ...any) *Node      { return createElement("h4", args) }

// Grouping content

func Div(args ...any) *Node        { return createElement("div", args) }
func P(args ...any) *Node          { return createElement("p", args) }
func Pre(args ...any) *Node        { return createElement("pre", args) }
func Blockquote(args ...any) *Node { return createElement("blockquote", args) }
func Ul(args ...any) *Node         { return createElement("ul", args) }
func Ol(args ...any) *Node         { return createElement("ol", args) }
func Li(args ...any) *Node         { return createElement("li", args) }
func Hr(args ...any) *Node         { return createElement("hr", args) }

// Text-level semantics

func Span(args ...any) *Node   { return createElement("span", args) }
func A(args ...any) *Node      { return createElement("a", args) }
func Strong(args ...any) *Node { return createElement("strong", args) }
func Em(args ...any) *Node     { return createElement("em", args) }
func Small(args ...any) *Node  { return createElement("small", args) }
func Code(args ...any) *Node   { return createElement("code", args) }
func Br(args ...any) *Node     { return createElement("br", args) }

// Forms

func Form(args ...any) *Node     { return createElement("form", args) }
func Label(args ...any) *Node    { return createElement("label", args) }
func Input(args ...any) *Node    { return createElement("input", args) }
func Textarea(args ...any) *Node { return createElement("textarea", args) }
func Select(args ...any) *Node   { return createElement("select", args) }
func Option(args ...any) *Node   { return createElement("option", args) }
func Button(args ...any) *Node   { return createElement("button", args) }

// Tables

func Table(args ...any) *Node { return createElement("table", args) }
func Thead(args ...any) *Node { return createElement("thead", args) }
func Tbody(args ...any) *Node { return createElement("tbody", args) }
func Tr(args ...any) *Node    { return createElement("tr", args) }
func Th(args ...any) *Node    { return createElement("th", args) }
func Td(args ...any) *Node    { return createElement("td", args) }

// Embedded content

func Img(args ...any) *Node { return createElement("img", args) }
