package component

import (
	"strconv"
	"time"

	"github.com/sitewinder-dev/sitewinder/pkg/dom"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
)

// renderAndMount is the full render pass, used for both the first
// mount and every subsequent update. The system deliberately has no
// diffing: the owned subtree is torn down and rebuilt every pass.
func (c *Core) renderAndMount(firstMount bool) {
	start := time.Now()

	// 1. Previous generation teardown: listeners off, children down,
	// subscriptions released, registries reset. Detachment always
	// precedes re-collection, so no registry ever mixes generations.
	c.detachBindings()
	c.destroyChildren()
	c.unsubscribeSignals()
	c.events = nil
	c.values = nil
	c.portals = nil

	// 2-4. Evaluate the template inside a fresh collector scope, then
	// subscribe a coalesced re-render to every signal it read.
	col := reactive.NewCollector()
	reactive.Push(col)
	node, tmplErr := c.invokeTemplate()
	if popErr := reactive.Pop(); popErr != nil {
		panic(newBindingScopeError(popErr))
	}
	if tmplErr != nil {
		c.logf("%v", tmplErr)
		node = renderErrorNode(tmplErr)
	}

	for _, src := range col.Sources() {
		c.unsubs = append(c.unsubs, src.Watch(c.scheduleRerender))
	}

	// 5. The dedicated subtree root, created once, tagged for style
	// scoping, reused on every later pass.
	if firstMount {
		c.host.RemoveChildren()
		root := dom.NewElement("div")
		root.SetAttribute(RootAttr, "root-"+strconv.FormatUint(c.id, 10))
		root.SetAttribute(ScopeAttr, strconv.FormatUint(c.id, 10))
		c.host.AppendChild(root)
		c.root = root
	}

	// 6. Styles: one owned style element, content replaced per pass.
	c.mountStyles()

	// 7. Materialize the new tree under the root.
	c.root.RemoveChildren()
	node.Materialize(c.root)

	// 8-10. Bindings before portals: a child's first render never
	// races its parent's DOM insertion.
	c.applyEventBindings()
	c.applyValueBindings()
	c.mountPortalChildren()

	// 11. Lifecycle hook, contained.
	if !c.everRendered {
		c.everRendered = true
		if m, ok := c.self.(Mounter); ok {
			c.runHook("OnMount", m.OnMount)
		}
		c.record().ComponentMounted(c.id)
	} else {
		if u, ok := c.self.(Updater); ok {
			c.runHook("OnUpdate", u.OnUpdate)
		}
	}

	c.record().RenderCompleted(c.id, time.Since(start), tmplErr)
}

// invokeTemplate runs the user template with panic containment. A
// panic becomes a TemplateRenderError and the caller substitutes a
// visible fallback node; the host page never crashes.
func (c *Core) invokeTemplate() (node *markup.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			node = nil
			err = &TemplateRenderError{ComponentID: c.id, Recovered: r}
		}
	}()

	node = c.self.Template()
	if node == nil {
		node = markup.Fragment()
	}
	return node, nil
}

// renderErrorNode is the visible placeholder for a failed template: a
// broken component shows a readable error in its own slot instead of
// blanking the page.
func renderErrorNode(err error) *markup.Node {
	return markup.Div(
		markup.Class("sw-render-error"),
		markup.Textf("component render failed: %v", err),
	)
}

// mountStyles injects or refreshes the component's style element. The
// element is created once in the document head and owned by this
// instance; scoping is applied unless disabled.
func (c *Core) mountStyles() {
	styler, ok := c.self.(Styler)
	if !ok {
		return
	}
	css := styler.Styles()
	if css == nil {
		return
	}
	text := css.ToCSSText()
	if text == "" {
		return
	}

	if !c.disableScopedStyles {
		text = ScopeCSS(text, c.scopeSelector())
	}

	if c.styleEl == nil {
		c.styleEl = dom.NewElement("style")
		c.styleEl.SetAttribute("type", "text/css")
		c.win.Document().Head().AppendChild(c.styleEl)
	}
	c.styleEl.SetText(text)
}
