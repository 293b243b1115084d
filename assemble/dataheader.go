package assemble

import (
	"strings"

	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/span"
)

// buildDataHeader converts a classified DataHeader/AnnotationStart line's
// grammar output into the reusable ast.DataHeader shape.
func (c *cursor) buildDataHeader(cl classify.ClassifiedLine) ast.DataHeader {
	hdr := ast.DataHeader{
		Span:      cl.Body,
		Label:     cl.Label.Text(c.src),
		LabelSpan: cl.Label,
	}
	for _, p := range cl.Params {
		hdr.Params = append(hdr.Params, ast.HeaderParam{
			Key:       p.Key.Text(c.src),
			Value:     unquoteValue(p.Value, p.Quoted, c.src),
			KeySpan:   p.Key,
			ValueSpan: p.Value,
			Quoted:    p.Quoted,
		})
	}
	return hdr
}

// unquoteValue strips a quoted param value's surrounding quotes and
// unescapes \" and \\, leaving an unquoted value untouched.
func unquoteValue(sp span.Span, quoted bool, src []byte) string {
	text := sp.Text(src)
	if !quoted {
		return text
	}
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	text = strings.ReplaceAll(text, `\"`, `"`)
	text = strings.ReplaceAll(text, `\\`, `\`)
	return text
}
