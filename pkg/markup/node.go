package markup

import (
	"sort"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // plain text node
	KindFragment             // grouping without a wrapper
	KindRaw                  // raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is one node of a declarative markup tree.
type Node struct {
	Kind     Kind
	Tag      string            // element tag name
	Attrs    map[string]string // element attributes
	Children []*Node
	Text     string // for KindText and KindRaw
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// SetAttribute sets an attribute on an element node and returns the
// node for chaining. Non-element nodes are left untouched.
func (n *Node) SetAttribute(name, value string) *Node {
	if n.Kind != KindElement {
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

// Attribute returns an attribute value and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// Attributes returns a copy of the attribute map.
func (n *Node) Attributes() map[string]string {
	out := make(map[string]string, len(n.Attrs))
	for k, v := range n.Attrs {
		out[k] = v
	}
	return out
}

// AddClass appends class names to the node's class attribute.
func (n *Node) AddClass(names ...string) *Node {
	if n.Kind != KindElement {
		return n
	}
	existing := strings.Fields(n.Attrs["class"])
	for _, name := range names {
		if name == "" {
			continue
		}
		found := false
		for _, have := range existing {
			if have == name {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, name)
		}
	}
	return n.SetAttribute("class", strings.Join(existing, " "))
}

// Append adds child nodes, skipping nils.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// sortedAttrNames returns attribute names in deterministic order for
// serialization.
func (n *Node) sortedAttrNames() []string {
	names := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// createElement builds an element node from variadic arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string.
func createElement(tag string, args []any) *Node {
	node := &Node{
		Kind:  KindElement,
		Tag:   tag,
		Attrs: make(map[string]string),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil, which allows conditional pieces.
			continue

		case Attr:
			if v.Key != "" {
				node.Attrs[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Attrs[a.Key] = a.Value
				}
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}
