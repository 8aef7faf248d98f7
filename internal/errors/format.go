package errors

import (
	"fmt"
	"os"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() { colorEnabled = false }

// EnableColors enables ANSI color output.
func EnableColors() { colorEnabled = true }

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

// Format renders the error for terminal output: a header line with the
// code and message, then indented sections for the location, detail,
// wrapped cause, hint, example, and documentation link. Sections with
// no content are omitted.
func (e *SiteError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(ansiRed+ansiBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(" " + paint(ansiBold, e.Code))
	}
	b.WriteString(paint(ansiBold, ": "+e.Message))
	b.WriteString("\n")

	if e.Location != nil {
		b.WriteString("  " + paint(ansiCyan, "at "+e.Location.String()) + "\n")
	}

	if e.Detail != "" {
		b.WriteString("\n")
		for _, line := range wrapText(e.Detail, 72) {
			b.WriteString("  " + line + "\n")
		}
	}

	if e.Wrapped != nil {
		b.WriteString("\n  " + paint(ansiGray, "caused by: "+e.Wrapped.Error()) + "\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n  " + paint(ansiYellow, "Hint: "))
		lines := wrapText(e.Suggestion, 64)
		b.WriteString(lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString("        " + line + "\n")
		}
	}

	if e.Example != "" {
		b.WriteString("\n  Example:\n")
		for _, line := range strings.Split(e.Example, "\n") {
			b.WriteString("    " + paint(ansiCyan, line) + "\n")
		}
	}

	if e.DocURL != "" {
		b.WriteString("\n  " + paint(ansiGray, "Learn more: "+e.DocURL) + "\n")
	}

	return b.String()
}

// FormatCompact renders the error as a single line, suitable for logs.
func (e *SiteError) FormatCompact() string {
	parts := make([]string, 0, 3)
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// wrapText breaks text into lines no longer than width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// PrintError writes a formatted error to stderr. SiteErrors get the
// full multi-section rendering; anything else prints as-is.
func PrintError(err error) {
	if se, ok := err.(*SiteError); ok {
		fmt.Fprint(os.Stderr, se.Format())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
