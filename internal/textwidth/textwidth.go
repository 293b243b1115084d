// Package textwidth computes the column width of leading whitespace runs
// under lex's indentation rule (spec.md §4.2): a tab counts as 4 columns,
// same as the indent step.
package textwidth

import "github.com/lexfmt/lex/token"

// Step is the indent step, in columns; also the column width of a tab.
const Step = 4

// Column returns the indentation column reached after consuming the
// leading Whitespace tokens of line (any non-Whitespace token, including
// Newline, ends the run).
func Column(line []token.Token) int {
	column := 0
	for _, t := range line {
		if t.Kind != token.Whitespace {
			break
		}
		if t.Run == token.Tabs {
			column += t.Span.Len() * Step
		} else {
			column += t.Span.Len()
		}
	}
	return column
}

// Depth converts a column to its indent-stack depth (column / Step,
// truncating any remainder the "forgiveness rule" leaves in the line
// body).
func Depth(column int) int { return column / Step }
