// Package indent implements S2 of the lex pipeline: materializing leading
// whitespace columns into synthetic Indent/Dedent tokens, per spec.md §4.2.
//
// A tab counts as 4 columns; the indent step is 4 columns. Remainder
// whitespace (column mod 4) is never consumed — the original Whitespace
// token(s) pass through untouched in the line body, satisfying the rule
// that no stage mutates an earlier stage's tokens (spec.md §2).
package indent

import (
	"github.com/lexfmt/lex/internal/textwidth"
	"github.com/lexfmt/lex/token"
)

// Lift walks tokens line by line and returns a new stream with synthetic
// Indent/Dedent tokens spliced in before each line that changes structural
// depth. Blank lines never alter the depth stack and never carry
// Indent/Dedent (spec.md §4.2).
func Lift(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	stack := []int{0}

	i := 0
	for i < len(tokens) {
		lineStart := i

		// find the end of this line (inclusive of a trailing Newline, if any)
		j := i
		for j < len(tokens) && tokens[j].Kind != token.Newline {
			j++
		}
		end := j
		if end < len(tokens) {
			end++ // include the Newline token
		}
		line := tokens[lineStart:end]

		if blank, column := classifyLine(line); !blank {
			offset := lineOffset(tokens, lineStart)
			d := textwidth.Depth(column)

			for d < stack[len(stack)-1] {
				out = append(out, token.MakeDedent(offset))
				stack = stack[:len(stack)-1]
			}
			if top := stack[len(stack)-1]; d > top {
				for s := top + 1; s <= d; s++ {
					out = append(out, token.MakeIndent(offset))
					stack = append(stack, s)
				}
			}
		}

		out = append(out, line...)
		i = end
	}

	// EOF: close every level still open above 0
	eof := sourceEnd(tokens)
	for len(stack) > 1 {
		out = append(out, token.MakeDedent(eof))
		stack = stack[:len(stack)-1]
	}

	return out
}

// classifyLine reports whether line is blank, and if not, its leading
// indentation column (tabs counted per textwidth.Step).
func classifyLine(line []token.Token) (blank bool, column int) {
	i := 0
	for i < len(line) && line[i].Kind == token.Whitespace {
		i++
	}
	if i >= len(line) || line[i].Kind == token.Newline {
		return true, 0
	}
	return false, textwidth.Column(line)
}

func lineOffset(tokens []token.Token, lineStart int) int {
	if lineStart < len(tokens) {
		return tokens[lineStart].Span.Start
	}
	return sourceEnd(tokens)
}

func sourceEnd(tokens []token.Token) int {
	if len(tokens) == 0 {
		return 0
	}
	return tokens[len(tokens)-1].Span.End
}
