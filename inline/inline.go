// Package inline implements S8 of the lex pipeline (spec.md §4.8): parsing
// the span-level inline grammar (strong, emphasis, code, math, reference)
// inside every TextContent leaf the assembler produced as an identity wrap.
package inline

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/span"
)

// delimiter describes one single-character wrapper token. Reference is
// handled separately below since its open/close characters differ.
type delimiter struct {
	kind    ast.InlineKind
	ch      byte
	literal bool
}

var delimiters = [...]delimiter{
	{ast.Strong, '*', false},
	{ast.Emphasis, '_', false},
	{ast.Code, '`', true},
	{ast.Math, '#', true},
}

// Parse runs the inline grammar over sp (a sub-range of src) and returns the
// TextContent leaf S8 produces. If no inline tokens are present, the result
// is the identity wrap (spec.md §4.8).
func Parse(src []byte, sp span.Span) ast.TextContent {
	return ast.TextContent{Span: sp, Content: parseRun(src, sp.Start, sp.End)}
}

func parseRun(src []byte, start, end int) []ast.Inline {
	var out []ast.Inline
	plainStart := start
	i := start

	flushPlain := func(upto int) {
		if upto > plainStart {
			out = append(out, ast.Inline{Kind: ast.Text, Span: span.New(plainStart, upto)})
		}
	}

	for i < end {
		c := src[i]

		if c == '\\' {
			if i+1 < end {
				i += 2
			} else {
				i++
			}
			continue
		}

		if c == '[' {
			if node, next, ok := tryReference(src, i, end); ok {
				flushPlain(i)
				out = append(out, node)
				i = next
				plainStart = i
				continue
			}
			i++
			continue
		}

		if d, ok := matchDelimiter(c); ok {
			if node, next, ok := tryDelimiter(src, i, end, d); ok {
				flushPlain(i)
				out = append(out, node)
				i = next
				plainStart = i
				continue
			}
		}

		i++
	}
	flushPlain(end)

	if len(out) == 0 {
		return []ast.Inline{{Kind: ast.Text, Span: span.New(start, end)}}
	}
	return out
}

func matchDelimiter(c byte) (delimiter, bool) {
	for _, d := range delimiters {
		if d.ch == c {
			return d, true
		}
	}
	return delimiter{}, false
}

// tryDelimiter attempts to lex one Strong/Emphasis/Code/Math pair starting
// at open (src[open] == d.ch). It returns the constructed Inline and the
// index just past the closing delimiter.
func tryDelimiter(src []byte, open, end int, d delimiter) (ast.Inline, int, bool) {
	if !startValid(src, open, end, false) {
		return ast.Inline{}, 0, false
	}

	for close := open + 1; close < end; close++ {
		if src[close] != d.ch {
			continue
		}
		if close == open+1 {
			// Empty contents remain literal (spec.md §4.8).
			return ast.Inline{}, 0, false
		}
		if !endValid(src, close, end, d.literal) {
			continue
		}

		node := ast.Inline{Kind: d.kind, Span: span.New(open, close+1)}
		contentStart, contentEnd := open+1, close
		if d.literal {
			node.Literal = span.New(contentStart, contentEnd)
		} else {
			node.Children = parseRun(src, contentStart, contentEnd)
		}
		return node, close + 1, true
	}
	return ast.Inline{}, 0, false
}

// tryReference lexes one "[ … ]" literal reference and classifies its
// contents per spec.md §4.8.
func tryReference(src []byte, open, end int) (ast.Inline, int, bool) {
	if !startValid(src, open, end, true) {
		return ast.Inline{}, 0, false
	}

	for close := open + 1; close < end; close++ {
		if src[close] != ']' {
			continue
		}
		if close == open+1 {
			return ast.Inline{}, 0, false
		}
		if !endValid(src, close, end, true) {
			continue
		}

		literal := span.New(open+1, close)
		node := ast.Inline{Kind: ast.Reference, Span: span.New(open, close+1), Literal: literal}
		classifyReference(&node, src)
		return node, close + 1, true
	}
	return ast.Inline{}, 0, false
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// startValid implements spec.md §4.8 "Start validity": previous char is a
// boundary (not alphanumeric, or BOF) and next char is alphanumeric
// (non-reference) or any char (reference).
func startValid(src []byte, pos, end int, reference bool) bool {
	if pos > 0 && isAlnum(src[pos-1]) {
		return false
	}
	if reference {
		return true
	}
	return pos+1 < end && isAlnum(src[pos+1])
}

// endValid implements spec.md §4.8 "End validity": previous char (the last
// content byte) non-whitespace for non-literal kinds, or unconstrained for
// literal kinds; next char (after the closer) is not alphanumeric or is
// EOF.
func endValid(src []byte, closePos, end int, literal bool) bool {
	if !literal && isSpace(src[closePos-1]) {
		return false
	}
	if closePos+1 >= end {
		return true
	}
	return !isAlnum(src[closePos+1])
}
