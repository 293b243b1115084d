// Package scan implements S1 of the lex pipeline: turning a UTF-8 source
// buffer into the flat core token stream described by spec.md §3-§4.1.
//
// Scan never fails. Any byte sequence is representable: invalid UTF-8 is
// decoded rune-by-rune via utf8.DecodeRune, which substitutes
// utf8.RuneError and advances by one byte, so scanning always terminates
// and always reconstructs the original bytes via token spans.
package scan

import (
	"unicode/utf8"

	"github.com/lexfmt/lex/span"
	"github.com/lexfmt/lex/token"
)

// Scan tokenizes src into the core token stream. The returned tokens' spans,
// concatenated in order, reproduce src exactly (spec.md §8 "Universal
// invariants").
func Scan(src []byte) []token.Token {
	var toks []token.Token
	i := 0
	for i < len(src) {
		switch c := src[i]; c {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				toks = append(toks, token.Token{Kind: token.Newline, Span: span.New(i, i+2)})
				i += 2
			} else {
				toks = append(toks, token.MakeChar(span.New(i, i+1)))
				i++
			}

		case '\n':
			toks = append(toks, token.Token{Kind: token.Newline, Span: span.New(i, i+1)})
			i++

		case ':':
			if i+1 < len(src) && src[i+1] == ':' {
				toks = append(toks, token.Token{Kind: token.DoubleColon, Span: span.New(i, i+2)})
				i += 2
			} else {
				toks = append(toks, token.Token{Kind: token.Colon, Span: span.New(i, i+1)})
				i++
			}

		case '-':
			toks = append(toks, token.Token{Kind: token.Dash, Span: span.New(i, i+1)})
			i++

		case '.':
			toks = append(toks, token.Token{Kind: token.Period, Span: span.New(i, i+1)})
			i++

		case '(':
			toks = append(toks, token.Token{Kind: token.OpenParen, Span: span.New(i, i+1)})
			i++

		case ')':
			toks = append(toks, token.Token{Kind: token.CloseParen, Span: span.New(i, i+1)})
			i++

		case ' ', '\t':
			run := spaceRun
			if c == '\t' {
				run = tabRun
			}
			start := i
			for i < len(src) && src[i] == c {
				i++
			}
			toks = append(toks, token.MakeWhitespace(span.New(start, i), run))

		default:
			_, width := utf8.DecodeRune(src[i:])
			if width == 0 {
				width = 1
			}
			toks = append(toks, token.MakeChar(span.New(i, i+width)))
			i += width
		}
	}
	return toks
}

const (
	spaceRun = token.Spaces
	tabRun   = token.Tabs
)
