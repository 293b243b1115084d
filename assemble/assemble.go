package assemble

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/diag"
)

// Assemble implements S6: it turns classified, dialog-passed lines into an
// ast.Document. Annotation attachment (S7) and inline parsing (S8) are
// separate passes over the returned tree.
func Assemble(lines []classify.ClassifiedLine, src []byte, r *diag.Reporter) *ast.Document {
	doc := &ast.Document{}

	start := 0
	if title, ok := titleCandidate(lines); ok {
		doc.Title = &title
		start = titleSkip(lines)
	}

	c := newCursor(lines[start:], src, r)
	doc.Children = c.assembleChildren(0, restrictions{})

	if len(lines) > 0 {
		doc.Span = lines[0].Line.Span
		if last := len(lines) - 1; last >= 0 {
			doc.Span.End = lines[last].Line.Span.End
		}
	}
	return doc
}

// titleCandidate implements spec.md §4.6's document title promotion: the
// very first element is a single unindented paragraph line, immediately
// followed by a Blank.
func titleCandidate(lines []classify.ClassifiedLine) (ast.TextContent, bool) {
	if len(lines) < 2 {
		return ast.TextContent{}, false
	}
	first := lines[0]
	if first.Type != classify.Paragraph {
		return ast.TextContent{}, false
	}
	if len(first.Line.Prefix) != 0 {
		return ast.TextContent{}, false
	}
	if lines[1].Type != classify.Blank {
		return ast.TextContent{}, false
	}
	return ast.PlainText(first.Body), true
}

func titleSkip(lines []classify.ClassifiedLine) int {
	skip := 2
	if skip > len(lines) {
		skip = len(lines)
	}
	return skip
}
