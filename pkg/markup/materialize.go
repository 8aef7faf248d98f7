package markup

import "github.com/sitewinder-dev/sitewinder/pkg/dom"

// Materialize builds live DOM for the node tree and appends it under
// parent. It returns the top-level live elements it created (a fragment
// contributes all of its children).
//
// Raw nodes become text nodes carrying the raw string verbatim: the
// live tree has no HTML parser, so raw markup round-trips through
// RenderToMarkup only.
func (n *Node) Materialize(parent *dom.Element) []*dom.Element {
	if n == nil || parent == nil {
		return nil
	}

	switch n.Kind {
	case KindText:
		el := dom.NewTextNode(n.Text)
		parent.AppendChild(el)
		return []*dom.Element{el}

	case KindRaw:
		el := dom.NewTextNode(n.Text)
		parent.AppendChild(el)
		return []*dom.Element{el}

	case KindFragment:
		var out []*dom.Element
		for _, c := range n.Children {
			out = append(out, c.Materialize(parent)...)
		}
		return out

	case KindElement:
		el := dom.NewElement(n.Tag)
		for _, name := range n.sortedAttrNames() {
			el.SetAttribute(name, n.Attrs[name])
		}
		for _, c := range n.Children {
			c.Materialize(el)
		}
		parent.AppendChild(el)
		return []*dom.Element{el}
	}

	return nil
}
