// Package attach implements S7 of the lex pipeline (spec.md §4.7): moving
// each Annotation node out of its container's children and onto a target's
// ordered annotation list.
package attach

import "github.com/lexfmt/lex/ast"

// Run walks doc in place, attaching every Annotation node it finds,
// top-down: each container's own children list is resolved first, then the
// walk descends into the children it kept.
func Run(doc *ast.Document) {
	doc.Children = attachLevel(doc.Children, doc)
	for _, child := range doc.Children {
		recurse(child)
	}
}

func recurse(n ast.Node) {
	switch v := n.(type) {
	case *ast.Session:
		v.Children = attachLevel(v.Children, v)
		for _, c := range v.Children {
			recurse(c)
		}
	case *ast.Definition:
		v.Children = attachLevel(v.Children, v)
		for _, c := range v.Children {
			recurse(c)
		}
	case *ast.List:
		for _, item := range v.Items {
			item.Children = attachLevel(item.Children, item)
			for _, c := range item.Children {
				recurse(c)
			}
		}
	case *ast.Annotation:
		if v.Body.Kind == ast.BlockBody {
			v.Body.Block = attachLevel(v.Body.Block, nil)
			for _, c := range v.Body.Block {
				recurse(c)
			}
		}
	}
}

// attachLevel applies the rule-1/2/3 precedence from spec.md §4.7 to one
// container's children list, returning the children with every Annotation
// removed. parent is the enclosing node rule 3 attaches to when there is no
// eligible previous sibling and this isn't the document-level first
// element; it may be nil when the enclosing node has nowhere to record
// annotations (an Annotation's own block body — ast.Annotation carries no
// Annotations slice of its own).
func attachLevel(children []ast.Node, parent ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	var lastNonBlank ast.Node // Paragraph is the closest analogue to "non-Blank"; every retained node here already is one, since Blank lines never reach the AST as nodes.

	for i, n := range children {
		ann, ok := n.(*ast.Annotation)
		if !ok {
			out = append(out, n)
			lastNonBlank = n
			continue
		}

		switch {
		case lastNonBlank != nil:
			appendAnnotation(lastNonBlank, ann)
		case i == 0 && parent == nil:
			// First element with no enclosing node to fall back to: keep
			// the annotation in place rather than drop it silently.
			out = append(out, n)
			lastNonBlank = n
		case parent != nil:
			appendAnnotation(parent, ann)
		}
	}
	return out
}

// appendAnnotation pushes ann onto target's annotation list via a type
// switch, since ast.Node has no shared annotations() method (spec.md §9
// keeps Node a minimal sum-type interface).
func appendAnnotation(target ast.Node, ann *ast.Annotation) {
	switch v := target.(type) {
	case *ast.Document:
		v.Annotations = append(v.Annotations, ann)
	case *ast.Session:
		v.Annotations = append(v.Annotations, ann)
	case *ast.Definition:
		v.Annotations = append(v.Annotations, ann)
	case *ast.List:
		v.Annotations = append(v.Annotations, ann)
	case *ast.Paragraph:
		v.Annotations = append(v.Annotations, ann)
	case *ast.Verbatim:
		v.Annotations = append(v.Annotations, ann)
	case *ast.ListItem:
		v.Annotations = append(v.Annotations, ann)
	}
}
