package assemble

import (
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
)

// tryList implements spec.md §4.6 rule 3: two or more consecutive
// ListItem/SubjectOrListItem lines at this depth, preceded by a Blank (or
// beginning-of-container). Items at a deeper indent become the preceding
// item's children; a Blank or a dedent terminates the list without being
// consumed. A run of fewer than 2 items backtracks entirely, leaving the
// single line for tryHeader/paragraph to reinterpret. Without a preceding
// Blank no list is attempted at all — this is what makes "intro\n- a\n- b"
// merge into one paragraph rather than splitting at the dash.
func (c *cursor) tryList(depth int, prevBlank bool) *ast.List {
	if !prevBlank || c.atEOF() {
		return nil
	}
	cl := c.curLine()
	if cl.Type != classify.ListItem && cl.Type != classify.SubjectOrListItem {
		return nil
	}

	start := c.pos
	style := styleFromMarker(cl.Marker.Kind)
	var items []*ast.ListItem

	for {
		if c.atEOF() || c.depths[c.pos] != depth {
			break
		}
		cur := c.curLine()
		if cur.Type == classify.Blank {
			break
		}
		if cur.Type != classify.ListItem && cur.Type != classify.SubjectOrListItem {
			break
		}

		itemStart := c.pos
		item := &ast.ListItem{
			MarkerSpan: cur.Marker.Span,
			Head:       c.textContentOf(cur.Body),
		}
		c.pos++
		item.Children = c.assembleChildren(depth+1, restrictions{})
		item.Span = c.spanSoFar(cur.Line.Span, itemStart)
		items = append(items, item)
	}

	if len(items) < 2 {
		c.pos = start
		return nil
	}

	l := &ast.List{Style: style, Items: items}
	l.Span = c.spanSoFar(c.lines[start].Line.Span, start)
	return l
}

func styleFromMarker(k classify.MarkerKind) ast.ListStyle {
	switch k {
	case classify.NumberMarker:
		return ast.StyleNumber
	case classify.LetterMarker:
		return ast.StyleLetter
	case classify.RomanMarker:
		return ast.StyleRoman
	case classify.ParenNumberMarker:
		return ast.StyleParenNumber
	case classify.ParenLetterMarker:
		return ast.StyleParenLetter
	default:
		return ast.StyleDash
	}
}
