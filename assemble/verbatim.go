package assemble

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/span"
)

// tryVerbatim implements spec.md §4.6 rule 1: a Subject line followed
// (optionally, after one Blank) by raw content, terminated by a DataHeader
// at the subject's own indent. Multiple (subject, body) pairs may share one
// closing DataHeader. If no closing DataHeader is ever found at this depth,
// the whole candidate fails and the cursor is left untouched, so the next
// precedence rule (Definition/Session) gets a clean look at the same lines.
//
// Subject matching is restricted to classify.Subject, not
// SubjectOrListItem: a verbatim's introducing line is never itself a list
// marker in the corpus this grammar was built from, and admitting
// SubjectOrListItem here would make Verbatim and List ambiguous over the
// same "- Code:" line with no principled tie-break. Recorded as an Open
// Question resolution in DESIGN.md.
func (c *cursor) tryVerbatim(depth int) *ast.Verbatim {
	if c.atEOF() || c.curLine().Type != classify.Subject {
		return nil
	}

	start := c.pos
	pos := c.pos
	var pairs []ast.VerbatimPair
	var closing classify.ClassifiedLine
	found := false

	for {
		if pos >= len(c.lines) || c.depths[pos] != depth {
			break
		}
		cur := c.lines[pos]

		if cur.Type == classify.DataHeader {
			closing = cur
			pos++
			found = true
			break
		}
		if cur.Type != classify.Subject {
			break
		}

		subj := cur
		subjEnd := subj.Line.Span.End
		pos++
		if pos < len(c.lines) && c.lines[pos].Type == classify.Blank {
			pos++
		}

		bodyStart := subjEnd
		firstBodyIdx := pos
		fullwidth := firstBodyIdx < len(c.lines) &&
			c.depths[firstBodyIdx] <= depth &&
			c.lines[firstBodyIdx].Type != classify.DataHeader

		if fullwidth {
			for pos < len(c.lines) && c.lines[pos].Type != classify.DataHeader {
				pos++
			}
		} else {
			for pos < len(c.lines) && c.depths[pos] > depth {
				pos++
			}
		}

		var bodyEnd int
		if pos < len(c.lines) {
			bodyEnd = c.lines[pos].Line.Span.Start
		} else {
			bodyEnd = c.sourceEnd()
		}
		if bodyEnd < bodyStart {
			bodyEnd = bodyStart
		}

		pairs = append(pairs, ast.VerbatimPair{
			Subject: c.textContentOf(subj.Body),
			Body:    span.New(bodyStart, bodyEnd),
		})
	}

	if !found || len(pairs) == 0 {
		return nil
	}

	c.pos = pos
	v := &ast.Verbatim{
		Pairs:   pairs,
		Closing: c.buildDataHeader(closing),
	}
	v.Span = c.spanSoFar(c.lines[start].Line.Span, start)
	return v
}

// sourceEnd returns the offset just past the last line's span, used when a
// verbatim body runs to the end of input without a closing DataHeader ever
// showing up (the candidate still fails in that case; this is only reached
// while searching).
func (c *cursor) sourceEnd() int {
	if len(c.lines) == 0 {
		return 0
	}
	return c.lines[len(c.lines)-1].Line.Span.End
}
