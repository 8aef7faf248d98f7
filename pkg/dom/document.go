package dom

// NewElement creates a detached live element. Builders that
// materialize markup into an existing tree use this; application code
// normally goes through Document.CreateElement.
func NewElement(tag string) *Element {
	return newElement(tag)
}

// NewTextNode creates a detached live text node.
func NewTextNode(text string) *Element {
	return newText(text)
}

// Document is the root of a live node tree, with the head/body split
// the style injection and mounting steps rely on.
type Document struct {
	root *Element
	head *Element
	body *Element
}

// NewDocument creates an empty document with head and body.
func NewDocument() *Document {
	root := newElement("html")
	head := newElement("head")
	body := newElement("body")
	root.AppendChild(head)
	root.AppendChild(body)
	return &Document{root: root, head: head, body: body}
}

// Head returns the document head, where component styles are injected.
func (d *Document) Head() *Element { return d.head }

// Body returns the document body.
func (d *Document) Body() *Element { return d.body }

// Root returns the document root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return newElement(tag)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Element {
	return newText(text)
}

// QuerySelector searches the whole document for the first element
// matching the simple selector.
func (d *Document) QuerySelector(selector string) *Element {
	return d.root.QuerySelector(selector)
}

// QuerySelectorAll searches the whole document for every element
// matching the simple selector.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	return d.root.QuerySelectorAll(selector)
}
