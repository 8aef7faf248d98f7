package dom

import "strings"

// matchesSelector reports whether el matches one simple selector:
// "#id", ".class", "tag", "[attr]" or `[attr="value"]`.
func matchesSelector(el *Element, selector string) bool {
	if el.isText || selector == "" {
		return false
	}

	switch selector[0] {
	case '#':
		id, _ := el.Attribute("id")
		return id == selector[1:]
	case '.':
		return el.HasClass(selector[1:])
	case '[':
		body := strings.TrimSuffix(strings.TrimPrefix(selector, "["), "]")
		name, want, hasValue := strings.Cut(body, "=")
		if !hasValue {
			_, ok := el.Attribute(name)
			return ok
		}
		want = strings.Trim(want, `"'`)
		got, ok := el.Attribute(name)
		return ok && got == want
	default:
		return el.tag == selector
	}
}

// QuerySelector returns the first descendant of e (including e itself)
// matching the simple selector, or nil.
func (e *Element) QuerySelector(selector string) *Element {
	var found *Element
	e.walk(func(el *Element) bool {
		if matchesSelector(el, selector) {
			found = el
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns every descendant of e (including e itself)
// matching the simple selector, in document order.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	var found []*Element
	e.walk(func(el *Element) bool {
		if matchesSelector(el, selector) {
			found = append(found, el)
		}
		return true
	})
	return found
}

// QueryByAttr returns the first descendant carrying attribute name with
// the exact value. This is the lookup the binding and portal steps use
// for their marker attributes.
func (e *Element) QueryByAttr(name, value string) *Element {
	var found *Element
	e.walk(func(el *Element) bool {
		if el.isText {
			return true
		}
		if got, ok := el.Attribute(name); ok && got == value {
			found = el
			return false
		}
		return true
	})
	return found
}
