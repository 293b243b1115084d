// Package span implements byte-range arithmetic over a single UTF-8 source
// buffer. Every token and AST node in lex carries a Span; this package is
// the one place that understands how spans merge, contain, and slice.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into some source buffer.
type Span struct {
	Start int
	End   int
}

// Zero is the empty span at offset 0, used as the zero value for nodes that
// have not yet been assigned a real range.
var Zero = Span{}

// New returns the span [start, end). Panics if end < start.
func New(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("span: invalid range [%v:%v]", start, end))
	}
	return Span{start, end}
}

// At returns the zero-width span at offset, used for synthetic tokens
// (Indent, Dedent, BlankLine) that summarize an event rather than content.
func At(offset int) Span {
	return Span{offset, offset}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.End == s.Start }

// Contains reports whether s fully encloses o.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Overlaps reports whether s and o share at least one byte, or touch at a
// boundary (needed for Mergeable below with zero-width spans).
func (s Span) Overlaps(o Span) bool {
	return s.Start <= o.End && o.Start <= s.End
}

// Mergeable reports whether s and o are contiguous or overlapping, and so
// may be combined by Merge without silently absorbing an unrelated gap.
func (s Span) Mergeable(o Span) bool {
	return s.Overlaps(o)
}

// Merge returns the min/max envelope of a and b.
func Merge(a, b Span) Span {
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Span{start, end}
}

// MergeAll folds Merge across every given span. Panics if spans is empty.
func MergeAll(spans ...Span) Span {
	out := spans[0]
	for _, s := range spans[1:] {
		out = Merge(out, s)
	}
	return out
}

// Slice returns the bytes of the source buffer covered by s.
// Panics if s falls outside src.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End]
}

// Text returns a string copy of the source bytes covered by s.
func (s Span) Text(src []byte) string {
	return string(s.Slice(src))
}

// Format implements fmt.Formatter, printing "[start:end)".
func (s Span) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "[%d:%d)", s.Start, s.End)
}
