package assemble

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
)

// tryHeader implements spec.md §4.6 rules 4 and 5: a Subject or
// SubjectOrListItem line becomes a Definition when immediately (no Blank)
// followed by indented children, or a Session when followed by one or more
// Blanks and then indented children. Neither pattern matching leaves the
// cursor untouched, falling through to the paragraph fallback.
func (c *cursor) tryHeader(depth int, restrict restrictions) ast.Node {
	if c.atEOF() {
		return nil
	}
	cl := c.curLine()
	if cl.Type != classify.Subject && cl.Type != classify.SubjectOrListItem {
		return nil
	}
	start := c.pos
	headSpan := cl.Line.Span
	headText := c.textContentOf(cl.Body)
	next := start + 1

	// Definition: no intervening blank, immediate indent.
	if next < len(c.lines) && c.lines[next].Type != classify.Blank && c.depths[next] == depth+1 {
		c.pos = next
		children := c.assembleChildren(depth+1, restrictions{NoSession: true, NoAnnotation: restrict.NoAnnotation})
		def := &ast.Definition{Subject: headText, Children: children}
		def.Span = c.spanSoFar(headSpan, start)
		return def
	}

	// Session: one or more Blanks, then indent.
	if next < len(c.lines) && c.lines[next].Type == classify.Blank {
		j := next
		for j < len(c.lines) && c.lines[j].Type == classify.Blank {
			j++
		}
		if j < len(c.lines) && c.depths[j] == depth+1 {
			if restrict.NoSession {
				c.pos = j
				lines := append([]ast.TextContent{headText}, c.consumeSubtreeAsLines(depth+1)...)
				c.diag.Cautionf(headSpan, "session not allowed at this depth; demoted to paragraph")
				return &ast.Paragraph{Span: c.spanSoFar(headSpan, start), Lines: lines}
			}
			c.pos = j
			children := c.assembleChildren(depth+1, restrictions{})
			sess := &ast.Session{Title: headText, Children: children}
			sess.Span = c.spanSoFar(headSpan, start)
			return sess
		}
	}

	return nil
}
