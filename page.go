package sitewinder

import "strings"

// Page describes the document shell around a prerendered application.
type Page struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Stylesheets are link href values added to the head.
	Stylesheets []string

	// Scripts are script src values added before the closing body tag.
	Scripts []string
}

// RenderPage serializes the window into a complete HTML document.
// The head carries the page metadata plus whatever mounted components
// injected into it, and the body is the window's current body content.
func RenderPage(win *Window, page Page) string {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + lang + "\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		b.WriteString("<title>" + escapeTitle(page.Title) + "</title>\n")
	}
	for _, href := range page.Stylesheets {
		b.WriteString(`<link rel="stylesheet" href="` + href + "\">\n")
	}
	if head := win.Document().Head().InnerHTML(); head != "" {
		b.WriteString(head)
		b.WriteString("\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(win.Document().Body().InnerHTML())
	b.WriteString("\n")
	for _, src := range page.Scripts {
		b.WriteString(`<script src="` + src + "\"></script>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func escapeTitle(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
