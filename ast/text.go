package ast

import "github.com/lexfmt/lex/span"

// InlineKind is one of the span-level inline constructs S8 recognizes
// (spec.md §3 "TextContent").
type InlineKind int

// InlineKind constants.
const (
	Text InlineKind = iota
	Strong
	Emphasis
	Code
	Math
	Reference
)

func (k InlineKind) String() string {
	switch k {
	case Text:
		return "Text"
	case Strong:
		return "Strong"
	case Emphasis:
		return "Emphasis"
	case Code:
		return "Code"
	case Math:
		return "Math"
	case Reference:
		return "Reference"
	default:
		return "InvalidInlineKind"
	}
}

// Literal reports whether inlines of this kind may not nest further inline
// constructs (spec.md §3: "Code, Math, Reference are literal").
func (k InlineKind) Literal() bool {
	switch k {
	case Code, Math, Reference:
		return true
	default:
		return false
	}
}

// ReferenceKind classifies a Reference's inner raw text (spec.md §4.8
// "Reference classification").
type ReferenceKind int

// ReferenceKind constants.
const (
	Unsure ReferenceKind = iota
	TK
	Citation
	FootnoteLabeled
	FootnoteNumbered
	SessionRef
	Url
	File
	General
)

func (k ReferenceKind) String() string {
	switch k {
	case TK:
		return "TK"
	case Citation:
		return "Citation"
	case FootnoteLabeled:
		return "FootnoteLabeled"
	case FootnoteNumbered:
		return "FootnoteNumbered"
	case SessionRef:
		return "Session"
	case Url:
		return "Url"
	case File:
		return "File"
	case General:
		return "General"
	default:
		return "Unsure"
	}
}

// CitationKey is one "@key" entry of a Citation reference.
type CitationKey struct {
	Span span.Span // covers the key text, without the leading '@'
}

// Inline is one node of the tree S8 builds inside a TextContent leaf.
// Strong and Emphasis are non-literal and may hold further Inline children;
// Code, Math, and Reference are literal and hold only their raw Literal
// span.
type Inline struct {
	Kind     InlineKind
	Span     span.Span // full span, including any delimiters
	Children []Inline  // non-empty only for Strong/Emphasis

	// Literal is the content span for Code/Math/Reference: for Code/Math
	// it excludes the surrounding backtick/hash delimiters; for Reference
	// it excludes the surrounding brackets and is the raw text that
	// RefKind was classified from.
	Literal span.Span

	// RefKind and its sub-fields are populated only when Kind == Reference.
	RefKind      ReferenceKind
	Citations    []CitationKey // populated when RefKind == Citation
	Locator      span.Span     // populated when RefKind == Citation and a "p./pp." locator follows
}

// TextContent is the homogeneous leaf type every text-carrying node (S8)
// holds: a tree of Inline nodes rooted at a sequence, so a plain run of
// text is represented identically to one that contains formatting (spec.md
// glossary "TextContent").
type TextContent struct {
	Span    span.Span
	Content []Inline
}

// PlainText wraps a raw span as a single Text inline: the "identity wrap"
// S6 uses before S8 has run (spec.md §4.8).
func PlainText(sp span.Span) TextContent {
	return TextContent{
		Span:    sp,
		Content: []Inline{{Kind: Text, Span: sp}},
	}
}
