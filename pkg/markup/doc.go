// Package markup is the declarative HTML builder components return
// from Template.
//
// Nodes are plain values built with variadic element constructors:
//
//	markup.Div(
//	    markup.Class("card"),
//	    markup.H1("Hello"),
//	    markup.Button(markup.Class("primary"), "Click me"),
//	)
//
// Constructor arguments may be attributes, child nodes, strings
// (shorthand for text nodes) or nil (ignored, which makes conditional
// pieces cheap). A finished tree either serializes to an HTML string
// with RenderToMarkup or materializes into the live document with
// Materialize. The component runtime owns the materialized output; the
// Node tree itself is inert data.
package markup
