package inline

import (
	"strings"

	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/span"
)

// classifyReference implements spec.md §4.8 "Reference classification":
// the first matching rule, evaluated in order, determines node.RefKind.
func classifyReference(node *ast.Inline, src []byte) {
	text := node.Literal.Text(src)

	switch {
	case isTK(text):
		node.RefKind = ast.TK
	case strings.HasPrefix(text, "@"):
		node.RefKind = ast.Citation
		parseCitation(node, src)
	case strings.HasPrefix(text, "^"):
		node.RefKind = ast.FootnoteLabeled
	case startsWithSessionRef(text):
		node.RefKind = ast.SessionRef
	case strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") || strings.HasPrefix(text, "mailto:"):
		node.RefKind = ast.Url
	case strings.HasPrefix(text, ".") || strings.HasPrefix(text, "/"):
		node.RefKind = ast.File
	case isPureNumeric(text):
		node.RefKind = ast.FootnoteNumbered
	case containsAlnum(text):
		node.RefKind = ast.General
	default:
		node.RefKind = ast.Unsure
	}
}

func isTK(s string) bool {
	if len(s) < 2 {
		return strings.EqualFold(s, "TK")
	}
	upper := strings.ToUpper(s)
	return upper == "TK" || strings.HasPrefix(upper, "TK-")
}

// startsWithSessionRef reports "#" followed by digits/dots/dashes.
func startsWithSessionRef(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	rest := s[1:]
	if rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if !(c >= '0' && c <= '9') && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

func isPureNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func containsAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if isAlnum(s[i]) {
			return true
		}
	}
	return false
}

// parseCitation implements the "@key[;,]@key, p./pp. locator" grammar:
// semicolon- or comma-separated "@key" entries, with an optional trailing
// page locator.
func parseCitation(node *ast.Inline, src []byte) {
	text := node.Literal.Text(src)
	base := node.Literal.Start

	locatorIdx := findLocator(text)
	keysText := text
	if locatorIdx >= 0 {
		keysText = text[:locatorIdx]
		locStart := base + locatorIdx
		node.Locator = span.New(locStart, node.Literal.End)
	}

	i := 0
	for i < len(keysText) {
		if keysText[i] != '@' {
			i++
			continue
		}
		j := i + 1
		for j < len(keysText) && keysText[j] != ';' && keysText[j] != ',' {
			j++
		}
		node.Citations = append(node.Citations, ast.CitationKey{Span: span.New(base+i+1, base+j)})
		i = j
	}
}

// findLocator returns the byte offset of a trailing ", p." or ", pp."
// locator within text, or -1 if none is present.
func findLocator(text string) int {
	for _, marker := range []string{", pp.", ", p."} {
		if idx := strings.LastIndex(text, marker); idx >= 0 {
			return idx
		}
	}
	return -1
}
