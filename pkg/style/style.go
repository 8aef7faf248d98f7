// Package style is the declarative CSS builder components may return
// from Styles. A Stylesheet accumulates rules, at-rules and keyframes
// and serializes them with ToCSSText; the component runtime then scopes
// and injects the text. Components that prefer literal CSS can return
// style.Text instead.
package style

import "strings"

// CSS is anything that can serialize itself to CSS text.
type CSS interface {
	ToCSSText() string
}

// Text adapts a literal CSS string to the CSS interface.
type Text string

// ToCSSText returns the literal text unchanged.
func (t Text) ToCSSText() string { return string(t) }

// Decl is a single CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// D builds a declaration.
func D(prop, value string) Decl {
	return Decl{Prop: prop, Value: value}
}

// Rule is one style rule: a selector and its declarations.
type Rule struct {
	Selector string
	Decls    []Decl
}

// writeTo serializes the rule with the given indentation prefix. The
// opener and closer sit on their own lines so the line-oriented scoper
// in the component runtime can prefix selectors.
func (r Rule) writeTo(b *strings.Builder, pad string) {
	b.WriteString(pad)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Decls {
		b.WriteString(pad)
		b.WriteString("  ")
		b.WriteString(d.Prop)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString(pad)
	b.WriteString("}\n")
}

// node is one top-level stylesheet entry.
type node interface {
	writeNode(b *strings.Builder)
}

type ruleNode struct{ rule Rule }

func (n ruleNode) writeNode(b *strings.Builder) { n.rule.writeTo(b, "") }

type atRuleNode struct {
	name    string
	prelude string
	rules   []Rule
}

func (n atRuleNode) writeNode(b *strings.Builder) {
	b.WriteString("@")
	b.WriteString(n.name)
	if n.prelude != "" {
		b.WriteString(" ")
		b.WriteString(n.prelude)
	}
	b.WriteString(" {\n")
	for _, r := range n.rules {
		r.writeTo(b, "  ")
	}
	b.WriteString("}\n")
}

// Stylesheet is an ordered collection of rules and at-rules.
type Stylesheet struct {
	nodes []node
}

// New returns an empty stylesheet.
func New() *Stylesheet {
	return &Stylesheet{}
}

// Rule appends a style rule and returns the sheet for chaining.
func (s *Stylesheet) Rule(selector string, decls ...Decl) *Stylesheet {
	s.nodes = append(s.nodes, ruleNode{rule: Rule{Selector: selector, Decls: decls}})
	return s
}

// AtRule appends an at-rule (e.g. "media", "(max-width: 600px)") whose
// body holds the given rules.
func (s *Stylesheet) AtRule(name, prelude string, rules ...Rule) *Stylesheet {
	s.nodes = append(s.nodes, atRuleNode{name: name, prelude: prelude, rules: rules})
	return s
}

// Keyframes appends a @keyframes block. Each frame is a Rule whose
// selector is the frame position ("from", "to", "50%").
func (s *Stylesheet) Keyframes(name string, frames ...Rule) *Stylesheet {
	s.nodes = append(s.nodes, atRuleNode{name: "keyframes", prelude: name, rules: frames})
	return s
}

// Frame builds one keyframe for Keyframes.
func Frame(position string, decls ...Decl) Rule {
	return Rule{Selector: position, Decls: decls}
}

// ToCSSText serializes the whole sheet.
func (s *Stylesheet) ToCSSText() string {
	var b strings.Builder
	for _, n := range s.nodes {
		n.writeNode(&b)
	}
	return b.String()
}
