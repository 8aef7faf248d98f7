package markup

import (
	"strconv"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with
// style elements).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") -> data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Custom creates an attribute with an arbitrary name.
func Custom(key, value string) Attr { return attr(key, value) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Title sets the title attribute.
func Title(text string) Attr { return attr("title", text) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Form control attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(n string) Attr { return attr("name", n) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// For sets the for attribute on a label.
func For(id string) Attr { return attr("for", id) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr {
	if !checked {
		return Attr{}
	}
	return attr("checked", "checked")
}

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr {
	if !disabled {
		return Attr{}
	}
	return attr("disabled", "disabled")
}

// Min sets the min attribute.
func Min(v int) Attr { return attr("min", strconv.Itoa(v)) }

// Max sets the max attribute.
func Max(v int) Attr { return attr("max", strconv.Itoa(v)) }
