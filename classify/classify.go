// Package classify implements S4 (line classification) and S5 (the dialog
// pass) of the lex pipeline, per spec.md §4.4-§4.5.
package classify

import (
	"github.com/lexfmt/lex/line"
	"github.com/lexfmt/lex/span"
	"github.com/lexfmt/lex/token"
)

// LineType is exactly one of the variants in spec.md §3 "LineType".
type LineType int

// LineType constants, in classifier precedence order (spec.md §4.4): first
// match wins when evaluating a line.
const (
	Blank LineType = iota
	AnnotationEnd
	AnnotationStart
	DataHeader
	SubjectOrListItem
	ListItem
	Subject
	Paragraph

	// Dialog is assigned only by the S5 pass (RunDialogPass), never by
	// Classify itself.
	Dialog
)

func (t LineType) String() string {
	switch t {
	case Blank:
		return "Blank"
	case AnnotationEnd:
		return "AnnotationEnd"
	case AnnotationStart:
		return "AnnotationStart"
	case DataHeader:
		return "DataHeader"
	case SubjectOrListItem:
		return "SubjectOrListItem"
	case ListItem:
		return "ListItem"
	case Subject:
		return "Subject"
	case Paragraph:
		return "Paragraph"
	case Dialog:
		return "Dialog"
	default:
		return "InvalidLineType"
	}
}

// MarkerKind names the shape of a recognized list-item marker.
type MarkerKind int

// MarkerKind constants.
const (
	NoMarker MarkerKind = iota
	DashMarker
	NumberMarker
	LetterMarker
	RomanMarker
	ParenNumberMarker
	ParenLetterMarker
)

// Marker describes a recognized list-item marker prefix.
type Marker struct {
	Kind MarkerKind
	Span span.Span // covers the marker and its one required trailing space
}

// Param is one "key=value" pair from a data header.
type Param struct {
	Key   span.Span
	Value span.Span
	// Quoted reports whether Value's source text is still wrapped in the
	// surrounding double quotes (callers wanting the unquoted value strip
	// them, un-escaping \").
	Quoted bool
}

// ClassifiedLine is one Line tagged with its LineType and any grammar it
// parsed along the way, so the assembler (S6) never has to re-derive it.
type ClassifiedLine struct {
	Line line.Line
	Type LineType

	// Label and Params are populated for DataHeader and AnnotationStart.
	Label  span.Span
	Params []Param

	// InlineText is populated for AnnotationStart's single-line form: the
	// trailing text span after the closing "::". Zero span otherwise.
	InlineText span.Span

	// Marker is populated for SubjectOrListItem and ListItem.
	Marker Marker

	// Body is the line's content span with leading indentation and (for
	// list items) the marker trimmed off, and the trailing newline/CR
	// trimmed off. It is what the inline parser (S8) and paragraph/subject
	// text ultimately cover.
	Body span.Span
}

// Classify assigns a LineType to every line, evaluating the precedence order
// from spec.md §4.4. src is the original source buffer the lines' spans
// reference.
func Classify(lines []line.Line, src []byte) []ClassifiedLine {
	out := make([]ClassifiedLine, len(lines))
	for i, l := range lines {
		out[i] = classifyOne(l, src)
	}
	return out
}

func classifyOne(l line.Line, src []byte) ClassifiedLine {
	cl := ClassifiedLine{Line: l}

	if l.Blank() {
		cl.Type = Blank
		return cl
	}

	bodyStart, bodyEnd := bodyBounds(l)
	body := src[bodyStart:bodyEnd]

	// AnnotationEnd: "::" possibly followed by trailing whitespace only.
	if len(body) >= 2 && body[0] == ':' && body[1] == ':' {
		rest := body[2:]
		if isAllSpace(rest) {
			cl.Type = AnnotationEnd
			cl.Body = span.New(bodyStart, bodyEnd)
			return cl
		}
	}

	// AnnotationStart / DataHeader share a "::  label (params)?" prefix.
	if hdr, ok := parseDataHeader(body, bodyStart); ok {
		cl.Body = span.New(bodyStart, bodyEnd)
		if hdr.closed {
			cl.Type = AnnotationStart
			cl.Label = hdr.label
			cl.Params = hdr.params
			cl.InlineText = hdr.trailingText
			return cl
		}
		cl.Type = DataHeader
		cl.Label = hdr.label
		cl.Params = hdr.params
		return cl
	}

	// List markers: SubjectOrListItem / ListItem.
	if m, rest, restStart, ok := matchMarker(body, bodyStart); ok {
		cl.Marker = m
		trimmed := trimTrailingSpace(rest)
		if len(trimmed) > 0 && trimmed[len(trimmed)-1] == ':' {
			cl.Type = SubjectOrListItem
		} else {
			cl.Type = ListItem
		}
		cl.Body = span.New(restStart, restStart+len(rest))
		return cl
	}

	// Subject: last non-whitespace byte is ':'.
	trimmed := trimTrailingSpace(body)
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == ':' {
		cl.Type = Subject
		cl.Body = span.New(bodyStart, bodyEnd)
		return cl
	}

	cl.Type = Paragraph
	cl.Body = span.New(bodyStart, bodyEnd)
	return cl
}

// bodyBounds returns the span of a line's content with leading whitespace
// and the trailing Newline (and any CR it absorbed) excluded.
func bodyBounds(l line.Line) (start, end int) {
	toks := l.Tokens
	i := 0
	for i < len(toks) && toks[i].Kind == token.Whitespace {
		i++
	}
	j := len(toks)
	if j > i && toks[j-1].Kind == token.Newline {
		j--
	}
	if i >= j {
		if i < len(toks) {
			return toks[i].Span.Start, toks[i].Span.Start
		}
		return l.Span.End, l.Span.End
	}
	return toks[i].Span.Start, toks[j-1].Span.End
}

func isAllSpace(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func trimTrailingSpace(b []byte) []byte {
	i := len(b)
	for i > 0 && (b[i-1] == ' ' || b[i-1] == '\t') {
		i--
	}
	return b[:i]
}
