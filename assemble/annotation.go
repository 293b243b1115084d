package assemble

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/span"
)

// tryAnnotation implements spec.md §4.6 rule 2's three forms: single-line
// (trailing text after the closing "::"), marker-only (no body), and block
// (indented children terminated by a bare "::" AnnotationEnd at the
// annotation's own indent). A block whose closing AnnotationEnd never
// arrives degrades to the marker form with a StructuralWarning, per spec.md
// §7.1.
func (c *cursor) tryAnnotation(depth int) *ast.Annotation {
	cl := c.curLine()
	if cl.Type != classify.AnnotationStart {
		return nil
	}
	start := c.pos
	hdr := c.buildDataHeader(cl)
	ann := &ast.Annotation{Data: hdr}

	if !cl.InlineText.Empty() {
		ann.Body = ast.AnnotationBody{Kind: ast.InlineBody, Inline: c.textContentOf(cl.InlineText)}
		ann.Span = cl.Line.Span
		c.pos = start + 1
		return ann
	}

	next := start + 1
	if next < len(c.lines) && c.depths[next] == depth+1 {
		c.pos = next
		block := c.assembleChildren(depth+1, restrictions{NoSession: true, NoAnnotation: true})
		if !c.atEOF() && c.depths[c.pos] == depth && c.curLine().Type == classify.AnnotationEnd {
			endSpan := c.curLine().Line.Span
			c.pos++
			ann.Body = ast.AnnotationBody{Kind: ast.BlockBody, Block: block}
			ann.Span = span.Merge(cl.Line.Span, endSpan)
			return ann
		}
		c.pos = start
		c.diag.Warnf(cl.Line.Span, "annotation block missing closing '::'; treated as marker")
	}

	ann.Body = ast.AnnotationBody{Kind: ast.NoBody}
	ann.Span = cl.Line.Span
	c.pos = start + 1
	return ann
}
