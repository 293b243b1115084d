// Package line implements S3 of the lex pipeline: grouping the indent-lifted
// token stream into logical lines, per spec.md §3 "Logical line" and §4.3.
package line

import (
	"github.com/lexfmt/lex/span"
	"github.com/lexfmt/lex/token"
)

// Line is a contiguous slice of tokens from a line start up to and including
// the terminating Newline (or to EOF, for a final unterminated line).
// Leading Indent/Dedent tokens are detached into Prefix; trailing
// Indent/Dedent tokens (only plausible at EOF) are detached into Suffix.
type Line struct {
	Prefix []token.Token // structural opens/closes before this line's content
	Tokens []token.Token // the line's own tokens, Newline included if present
	Suffix []token.Token // structural closes after this line (EOF only)
	Span   span.Span
}

// Blank reports whether the line has no content besides whitespace and its
// terminating newline.
func (l Line) Blank() bool {
	for _, t := range l.Tokens {
		if t.Kind != token.Whitespace && t.Kind != token.Newline {
			return false
		}
	}
	return true
}

// Group splits an indent-lifted token stream into logical lines. No
// semantic decisions occur here (spec.md §4.3) — only delimiter-driven
// regrouping.
func Group(tokens []token.Token) []Line {
	var lines []Line
	i := 0
	for i < len(tokens) {
		prefixStart := i
		for i < len(tokens) && tokens[i].Structural() {
			i++
		}
		prefix := tokens[prefixStart:i]

		if i >= len(tokens) {
			if len(prefix) > 0 && len(lines) > 0 {
				last := &lines[len(lines)-1]
				last.Suffix = append(last.Suffix, prefix...)
				last.Span = span.Merge(last.Span, span.MergeAll(spansOf(prefix)...))
			}
			break
		}

		contentStart := i
		for i < len(tokens) && tokens[i].Kind != token.Newline {
			i++
		}
		if i < len(tokens) {
			i++ // include the Newline
		}
		content := tokens[contentStart:i]

		all := append(append([]span.Span{}, spansOf(prefix)...), spansOf(content)...)
		lines = append(lines, Line{
			Prefix: prefix,
			Tokens: content,
			Span:   span.MergeAll(all...),
		})
	}
	return lines
}

func spansOf(toks []token.Token) []span.Span {
	out := make([]span.Span, len(toks))
	for i, t := range toks {
		out[i] = t.Span
	}
	return out
}
