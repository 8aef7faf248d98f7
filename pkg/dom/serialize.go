package dom

import "strings"

// voidTags lists elements serialized without a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true, "track": true,
	"wbr": true,
}

// OuterHTML serializes the element and its subtree to an HTML string.
// Attributes are written in sorted order so output is deterministic.
// Listeners and properties are not represented.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	e.serialize(&b)
	return b.String()
}

// InnerHTML serializes the element's children only.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, child := range e.children {
		child.serialize(&b)
	}
	return b.String()
}

func (e *Element) serialize(b *strings.Builder) {
	if e.isText {
		b.WriteString(escapeText(e.text))
		return
	}

	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, name := range e.AttributeNames() {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escapeText(e.attrs[name]))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if voidTags[e.tag] {
		return
	}
	// style and script hold raw text in HTML.
	rawText := e.tag == "style" || e.tag == "script"
	for _, child := range e.children {
		if rawText && child.isText {
			b.WriteString(child.text)
			continue
		}
		child.serialize(b)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
