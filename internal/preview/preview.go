// Package preview renders a generated document for display next to the
// form, highlighting the lines owned by the focused form field.
//
// Matching is textual: a field's token is the last segment of its
// document key followed by a colon, and every line containing that token
// lights up. Tokens shared by several keys produce extra highlighted
// lines, which is accepted over tracking line provenance through the
// serializer.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LineClass describes how a document line is colored.
type LineClass int

const (
	LineComment LineClass = iota
	LineKeyValue
	LinePlain
)

// Classify inspects one document line. Comment detection looks at the
// first non-space character; key detection requires a colon before any
// comment marker.
func Classify(line string) LineClass {
	trimmed := strings.TrimLeft(line, " ")
	if strings.HasPrefix(trimmed, "#") {
		return LineComment
	}
	if strings.Contains(line, ":") {
		return LineKeyValue
	}
	return LinePlain
}

var (
	commentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
)

// Render colors the whole document, highlighting every line containing
// token. An empty token highlights nothing.
func Render(doc, token string) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderLine(line, token)
	}
	return strings.Join(out, "\n")
}

func renderLine(line, token string) string {
	if token != "" && strings.Contains(line, token) {
		return highlightStyle.Render(line)
	}
	switch Classify(line) {
	case LineComment:
		return commentStyle.Render(line)
	case LineKeyValue:
		key, value, _ := strings.Cut(line, ":")
		return keyStyle.Render(key+":") + valueStyle.Render(value)
	default:
		return valueStyle.Render(line)
	}
}

// FirstMatch returns the index of the first line containing token, or -1.
func FirstMatch(doc, token string) int {
	if token == "" {
		return -1
	}
	for i, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, token) {
			return i
		}
	}
	return -1
}

// ScrollOffset computes the viewport offset that centers the first
// matching line, clamped to the document bounds. Every rendered line is
// one terminal row, so line index and viewport offset share units.
func ScrollOffset(doc, token string, viewportHeight int) int {
	line := FirstMatch(doc, token)
	if line < 0 || viewportHeight <= 0 {
		return 0
	}
	total := strings.Count(doc, "\n") + 1
	offset := line - viewportHeight/2
	if max := total - viewportHeight; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
