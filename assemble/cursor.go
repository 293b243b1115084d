// Package assemble implements S6 of the lex pipeline: assembling classified
// lines into the hierarchical ast.Document, per spec.md §4.6.
//
// The assembler is a cursor over the classified line stream (one shared
// position index), recursing into deeper indent levels across
// Indent/Dedent boundaries rather than mutating already-returned state —
// the "rewindable cursor" spec.md §9 calls for, so a failed lookahead
// (verbatim, annotation-block, definition-vs-session) can always backtrack
// by simply not advancing the cursor.
package assemble

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/diag"
	"github.com/lexfmt/lex/span"
)

// restrictions narrows what an assembleChildren call may produce, enforcing
// the invariants in spec.md §3: a Definition subtree excludes Session; an
// Annotation.Block body excludes both Session and nested Annotation.
type restrictions struct {
	NoSession    bool
	NoAnnotation bool
}

// cursor walks one document's classified lines, alongside a precomputed
// depth for each line (the indent-stack depth in effect once that line's
// own Indent/Dedent prefix has been applied).
type cursor struct {
	lines  []classify.ClassifiedLine
	depths []int
	src    []byte
	diag   *diag.Reporter
	pos    int
}

func newCursor(lines []classify.ClassifiedLine, src []byte, r *diag.Reporter) *cursor {
	depths := make([]int, len(lines))
	cur := 0
	for i, cl := range lines {
		for _, t := range cl.Line.Prefix {
			cur += t.Level
		}
		depths[i] = cur
	}
	return &cursor{lines: lines, depths: depths, src: src, diag: r}
}

func (c *cursor) atEOF() bool { return c.pos >= len(c.lines) }

func (c *cursor) curLine() classify.ClassifiedLine { return c.lines[c.pos] }

// textContentOf wraps a body span as the S8 "identity wrap" (spec.md
// §4.8): inline parsing runs later, as an independent pass over the
// assembled tree.
func (c *cursor) textContentOf(sp span.Span) ast.TextContent {
	return ast.PlainText(sp)
}

// spanSoFar merges head with the span of the last line consumed since
// startIdx, or returns head unchanged if nothing further was consumed.
func (c *cursor) spanSoFar(head span.Span, startIdx int) span.Span {
	if c.pos <= startIdx {
		return head
	}
	return span.Merge(head, c.lines[c.pos-1].Line.Span)
}

// assembleChildren consumes lines at exactly the given depth (and their
// nested content) into a sequence of Nodes, until the depth drops below
// `depth` or input is exhausted. Contiguous, non-blank fallback paragraphs
// are merged into a single Paragraph node (spec.md §4.6 rule 6), exactly
// reproducing the "intro\n- a\n- b" trifecta scenario from spec.md §8 when
// no blank precedes a would-be list.
func (c *cursor) assembleChildren(depth int, restrict restrictions) []ast.Node {
	var nodes []ast.Node
	prevBlank := true // beginning-of-container counts as blank (spec.md §4.6 rule 3)

	for !c.atEOF() && c.depths[c.pos] >= depth {
		if c.depths[c.pos] > depth {
			c.diag.Invariantf(c.curLine().Line.Span,
				"indent depth %d exceeds container depth %d", c.depths[c.pos], depth)
			break
		}

		cl := c.curLine()
		if cl.Type == classify.Blank {
			c.pos++
			prevBlank = true
			continue
		}

		node := c.assembleOne(depth, prevBlank, restrict)
		if node != nil {
			if para, ok := node.(*ast.Paragraph); ok && !prevBlank && len(nodes) > 0 {
				if prev, ok := nodes[len(nodes)-1].(*ast.Paragraph); ok {
					prev.Lines = append(prev.Lines, para.Lines...)
					prev.Span = span.Merge(prev.Span, para.Span)
					prevBlank = false
					continue
				}
			}
			nodes = append(nodes, node)
		}
		prevBlank = false
	}
	return nodes
}

// assembleOne attempts the element forms in the fixed precedence order from
// spec.md §4.6, falling back to a single-line paragraph.
func (c *cursor) assembleOne(depth int, prevBlank bool, restrict restrictions) ast.Node {
	if n := c.tryVerbatim(depth); n != nil {
		return n
	}

	cl := c.curLine()
	if cl.Type == classify.AnnotationStart {
		if restrict.NoAnnotation {
			c.diag.Cautionf(cl.Line.Span, "nested annotation not allowed here; demoted to paragraph")
			return c.demoteDisallowedAnnotation(depth)
		}
		if n := c.tryAnnotation(depth); n != nil {
			return n
		}
	}

	if n := c.tryList(depth, prevBlank); n != nil {
		return n
	}

	if n := c.tryHeader(depth, restrict); n != nil {
		return n
	}

	return c.oneLineParagraph()
}

func (c *cursor) oneLineParagraph() *ast.Paragraph {
	cl := c.curLine()
	body := cl.Body
	if cl.Marker.Kind != classify.NoMarker {
		// A list-looking line kept as paragraph text keeps its marker.
		body = span.New(cl.Marker.Span.Start, cl.Body.End)
	}
	text := c.textContentOf(body)
	p := &ast.Paragraph{Span: cl.Line.Span, Lines: []ast.TextContent{text}}
	c.pos++
	return p
}

// consumeSubtreeAsLines advances the cursor past every line at depth or
// deeper, collecting each non-Blank line's body text in source order. Used
// by restricted contexts that discard a disallowed node's structure but
// must still preserve every line it would have consumed (spec.md §4.6 rule
// 6, §7.2 "kept as a paragraph") and must still move the cursor past the
// whole subtree so the caller's depth bookkeeping stays in sync.
func (c *cursor) consumeSubtreeAsLines(depth int) []ast.TextContent {
	var lines []ast.TextContent
	for !c.atEOF() && c.depths[c.pos] >= depth {
		cl := c.curLine()
		if cl.Type != classify.Blank {
			lines = append(lines, c.textContentOf(cl.Body))
		}
		c.pos++
	}
	return lines
}

// demoteDisallowedAnnotation degrades an AnnotationStart line that isn't
// permitted at this position into a Paragraph, consuming its full span —
// including a block form's indented body and closing AnnotationEnd, if
// present — rather than just the opening line, so the caller never sees a
// depth it doesn't expect.
func (c *cursor) demoteDisallowedAnnotation(depth int) *ast.Paragraph {
	cl := c.curLine()
	start := c.pos
	lines := []ast.TextContent{c.textContentOf(cl.Body)}
	c.pos++

	if cl.InlineText.Empty() && !c.atEOF() && c.depths[c.pos] == depth+1 {
		lines = append(lines, c.consumeSubtreeAsLines(depth+1)...)
		if !c.atEOF() && c.depths[c.pos] == depth && c.curLine().Type == classify.AnnotationEnd {
			lines = append(lines, c.textContentOf(c.curLine().Body))
			c.pos++
		}
	}

	return &ast.Paragraph{Span: c.spanSoFar(cl.Line.Span, start), Lines: lines}
}
