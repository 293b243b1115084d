// Package ast defines the lex Element node types (S6 output) and the
// TextContent/Inline tree (S8 output), per spec.md §3 "Element node" and
// "TextContent".
//
// Per spec.md §9 "Dynamic dispatch over elements", the tree is a single sum
// type: Node is a thin interface implemented by one struct per variant,
// rather than a class hierarchy. A visitor walks it with a type switch
// (see attach and inline, S7/S8).
package ast

import "github.com/lexfmt/lex/span"

// Node is any Element in the content tree. Every element type below,
// ListItem included, implements it; the helper structs VerbatimPair,
// AnnotationBody, HeaderParam and DataHeader do not.
type Node interface {
	// NodeSpan returns the node's full source span; parent spans always
	// contain every child span (spec.md §8).
	NodeSpan() span.Span
	node()
}

// Document is the AST root.
type Document struct {
	Span        span.Span
	Title       *TextContent // promoted single-line-then-blank paragraph, or nil
	Children    []Node
	Annotations []*Annotation
}

func (d *Document) NodeSpan() span.Span { return d.Span }
func (*Document) node()                 {}

// Session is a Subject/SubjectOrListItem line followed by a blank line and
// indented children; children may include nested sessions (spec.md §4.6
// rule 5).
type Session struct {
	Span        span.Span
	Title       TextContent
	Children    []Node
	Annotations []*Annotation
}

func (s *Session) NodeSpan() span.Span { return s.Span }
func (*Session) node()                 {}

// Definition is a Subject/SubjectOrListItem line immediately followed by
// indented children; children exclude Session (spec.md §4.6 rule 4).
type Definition struct {
	Span        span.Span
	Subject     TextContent
	Children    []Node
	Annotations []*Annotation
}

func (d *Definition) NodeSpan() span.Span { return d.Span }
func (*Definition) node()                 {}

// ListStyle names the marker shape that defines a List's reported style: the
// first item's marker (spec.md §4.6 rule 3).
type ListStyle int

// ListStyle constants, mirroring classify.MarkerKind without importing it —
// ast has no dependency on the classification layer.
const (
	StyleDash ListStyle = iota
	StyleNumber
	StyleLetter
	StyleRoman
	StyleParenNumber
	StyleParenLetter
)

func (s ListStyle) String() string {
	switch s {
	case StyleDash:
		return "Dash"
	case StyleNumber:
		return "Number"
	case StyleLetter:
		return "Letter"
	case StyleRoman:
		return "Roman"
	case StyleParenNumber:
		return "ParenNumber"
	case StyleParenLetter:
		return "ParenLetter"
	default:
		return "InvalidListStyle"
	}
}

// List holds at least 2 ListItems (spec.md §8 "A List node always has
// len(items) >= 2"); a singleton is reparsed as a Paragraph by the
// assembler.
type List struct {
	Span        span.Span
	Style       ListStyle
	Items       []*ListItem
	Annotations []*Annotation
}

func (l *List) NodeSpan() span.Span { return l.Span }
func (*List) node()                 {}

// ListItem is one entry of a List.
type ListItem struct {
	Span        span.Span
	MarkerSpan  span.Span
	Head        TextContent
	Children    []Node // nested content at deeper indent; may be empty
	Annotations []*Annotation
}

func (i *ListItem) NodeSpan() span.Span { return i.Span }
func (*ListItem) node()                 {}

// Paragraph preserves each original source line as a separate TextContent
// entry for round-trip fidelity (spec.md §4.6 rule 6).
type Paragraph struct {
	Span        span.Span
	Lines       []TextContent
	Annotations []*Annotation
}

func (p *Paragraph) NodeSpan() span.Span { return p.Span }
func (*Paragraph) node()                 {}

// VerbatimPair is one (subject, raw body) pair captured by a Verbatim
// block; multiple pairs may share a single closing DataHeader (spec.md
// §4.6 rule 1).
type VerbatimPair struct {
	Subject TextContent
	Body    span.Span // raw span: Body.Text(src) reproduces the original bytes exactly
}

// Verbatim is a subject-introduced raw block terminated by a DataHeader at
// the subject's own indent.
type Verbatim struct {
	Span        span.Span
	Pairs       []VerbatimPair
	Closing     DataHeader
	Annotations []*Annotation
}

func (v *Verbatim) NodeSpan() span.Span { return v.Span }
func (*Verbatim) node()                 {}

// AnnotationBodyKind distinguishes an Annotation's three forms (spec.md
// §4.6 rule 2).
type AnnotationBodyKind int

// AnnotationBodyKind constants.
const (
	NoBody AnnotationBodyKind = iota
	InlineBody
	BlockBody
)

// AnnotationBody is either absent, a single inline TextContent, or a block
// of children (which reject Session and nested Annotation, spec.md §3).
type AnnotationBody struct {
	Kind   AnnotationBodyKind
	Inline TextContent
	Block  []Node
}

// Annotation carries a DataHeader and an optional body. After S7 it is
// removed from its container's Children and appears only in the target
// node's Annotations slice (spec.md §4.7).
type Annotation struct {
	Span span.Span
	Data DataHeader
	Body AnnotationBody
}

func (a *Annotation) NodeSpan() span.Span { return a.Span }
func (*Annotation) node()                 {}

// HeaderParam is one ordered "key=value" pair of a DataHeader.
type HeaderParam struct {
	Key      string
	Value    string
	KeySpan  span.Span
	ValueSpan span.Span
	Quoted   bool
}

// DataHeader is the reusable ":: label (params)?" prefix used by
// annotations and verbatim closers (spec.md §3).
type DataHeader struct {
	Span      span.Span
	Label     string
	LabelSpan span.Span
	Params    []HeaderParam
}
