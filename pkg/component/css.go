package component

import "strings"

// ScopeCSS prefixes every selector in cssText with the given scope
// selector. The transformation is deliberately line-oriented, not a
// CSS parser: a non-empty line containing a "{" has the text before
// the brace split on commas and each selector prefixed. Empty lines
// and lines starting an at-rule (@media, @keyframes, ...) pass through
// unchanged, so the bodies of nested at-rules are not recursively
// scoped. Good enough for component styles; documents with full
// at-rule nesting should disable scoping.
func ScopeCSS(cssText, scopeSelector string) string {
	lines := strings.Split(cssText, "\n")
	scoped := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "@") {
			scoped = append(scoped, line)
			continue
		}
		if !strings.Contains(line, "{") {
			scoped = append(scoped, line)
			continue
		}

		before, after, _ := strings.Cut(line, "{")
		var prefixed []string
		for _, sel := range strings.Split(before, ",") {
			sel = strings.TrimSpace(sel)
			if sel == "" {
				continue
			}
			prefixed = append(prefixed, scopeSelector+" "+sel)
		}
		scoped = append(scoped, strings.Join(prefixed, ", ")+" {"+after)
	}

	return strings.Join(scoped, "\n")
}
