package lex

import "github.com/lexfmt/lex/ast"

// cloneDocument deep-copies doc so PreInline can keep the pre-S8 identity
// wraps around while inline.Run mutates the live tree's TextContent leaves
// in place.
func cloneDocument(doc *ast.Document) *ast.Document {
	out := &ast.Document{Span: doc.Span}
	if doc.Title != nil {
		t := *doc.Title
		out.Title = &t
	}
	out.Children = cloneNodes(doc.Children)
	out.Annotations = cloneAnnotations(doc.Annotations)
	return out
}

func cloneNodes(nodes []ast.Node) []ast.Node {
	if nodes == nil {
		return nil
	}
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.Paragraph:
		return &ast.Paragraph{
			Span:        v.Span,
			Lines:       append([]ast.TextContent(nil), v.Lines...),
			Annotations: cloneAnnotations(v.Annotations),
		}
	case *ast.Definition:
		return &ast.Definition{
			Span:        v.Span,
			Subject:     v.Subject,
			Children:    cloneNodes(v.Children),
			Annotations: cloneAnnotations(v.Annotations),
		}
	case *ast.Session:
		return &ast.Session{
			Span:        v.Span,
			Title:       v.Title,
			Children:    cloneNodes(v.Children),
			Annotations: cloneAnnotations(v.Annotations),
		}
	case *ast.List:
		items := make([]*ast.ListItem, len(v.Items))
		for i, it := range v.Items {
			items[i] = &ast.ListItem{
				Span:        it.Span,
				MarkerSpan:  it.MarkerSpan,
				Head:        it.Head,
				Children:    cloneNodes(it.Children),
				Annotations: cloneAnnotations(it.Annotations),
			}
		}
		return &ast.List{
			Span:        v.Span,
			Style:       v.Style,
			Items:       items,
			Annotations: cloneAnnotations(v.Annotations),
		}
	case *ast.Verbatim:
		return &ast.Verbatim{
			Span:        v.Span,
			Pairs:       append([]ast.VerbatimPair(nil), v.Pairs...),
			Closing:     v.Closing,
			Annotations: cloneAnnotations(v.Annotations),
		}
	case *ast.Annotation:
		return cloneAnnotation(v)
	default:
		return n
	}
}

func cloneAnnotations(anns []*ast.Annotation) []*ast.Annotation {
	if anns == nil {
		return nil
	}
	out := make([]*ast.Annotation, len(anns))
	for i, a := range anns {
		out[i] = cloneAnnotation(a)
	}
	return out
}

func cloneAnnotation(a *ast.Annotation) *ast.Annotation {
	body := a.Body
	if body.Kind == ast.BlockBody {
		body.Block = cloneNodes(body.Block)
	}
	return &ast.Annotation{Span: a.Span, Data: a.Data, Body: body}
}
