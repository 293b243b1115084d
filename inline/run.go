package inline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lexfmt/lex/ast"
)

// leaf identifies one TextContent field S8 must overwrite in place.
type leaf struct {
	set func(ast.TextContent)
	get func() ast.TextContent
}

// Run walks doc and replaces every text-carrying leaf's identity wrap with
// its fully parsed inline tree (spec.md §4.8). It does not descend into
// Verbatim raw bodies.
func Run(src []byte, doc *ast.Document) {
	leaves := collect(doc)
	for _, l := range leaves {
		l.set(Parse(src, l.get().Span))
	}
}

// RunParallel is the worker-pool variant from spec.md §5: each leaf is
// independent, so leaves may be parsed concurrently. No cross-leaf state is
// read or written; cancellation via ctx is cooperative — a worker finishes
// its current leaf before observing ctx.Done(), and results for
// not-yet-started leaves are simply never written.
func RunParallel(ctx context.Context, src []byte, doc *ast.Document, workers int) error {
	leaves := collect(doc)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers <= 1 || len(leaves) <= 1 {
		Run(src, doc)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, l := range leaves {
		l := l
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			l.set(Parse(src, l.get().Span))
			return nil
		})
	}
	return g.Wait()
}

// collect walks doc depth-first and gathers every TextContent leaf,
// skipping Verbatim raw bodies (spec.md §4.8: "Not run inside Verbatim raw
// bodies").
func collect(doc *ast.Document) []leaf {
	var leaves []leaf

	if doc.Title != nil {
		title := doc.Title
		leaves = append(leaves, leaf{
			get: func() ast.TextContent { return *title },
			set: func(t ast.TextContent) { *title = t },
		})
	}
	for _, ann := range doc.Annotations {
		leaves = append(leaves, annotationLeaves(ann)...)
	}
	leaves = append(leaves, collectNodes(doc.Children)...)
	return leaves
}

func collectNodes(nodes []ast.Node) []leaf {
	var leaves []leaf
	for _, n := range nodes {
		leaves = append(leaves, nodeLeaves(n)...)
	}
	return leaves
}

func nodeLeaves(n ast.Node) []leaf {
	var leaves []leaf
	switch v := n.(type) {
	case *ast.Paragraph:
		for i := range v.Lines {
			i := i
			leaves = append(leaves, leaf{
				get: func() ast.TextContent { return v.Lines[i] },
				set: func(t ast.TextContent) { v.Lines[i] = t },
			})
		}
		for _, ann := range v.Annotations {
			leaves = append(leaves, annotationLeaves(ann)...)
		}
	case *ast.Definition:
		leaves = append(leaves, leaf{
			get: func() ast.TextContent { return v.Subject },
			set: func(t ast.TextContent) { v.Subject = t },
		})
		leaves = append(leaves, collectNodes(v.Children)...)
		for _, ann := range v.Annotations {
			leaves = append(leaves, annotationLeaves(ann)...)
		}
	case *ast.Session:
		leaves = append(leaves, leaf{
			get: func() ast.TextContent { return v.Title },
			set: func(t ast.TextContent) { v.Title = t },
		})
		leaves = append(leaves, collectNodes(v.Children)...)
		for _, ann := range v.Annotations {
			leaves = append(leaves, annotationLeaves(ann)...)
		}
	case *ast.List:
		for _, item := range v.Items {
			item := item
			leaves = append(leaves, leaf{
				get: func() ast.TextContent { return item.Head },
				set: func(t ast.TextContent) { item.Head = t },
			})
			leaves = append(leaves, collectNodes(item.Children)...)
			for _, ann := range item.Annotations {
				leaves = append(leaves, annotationLeaves(ann)...)
			}
		}
		for _, ann := range v.Annotations {
			leaves = append(leaves, annotationLeaves(ann)...)
		}
	case *ast.Verbatim:
		// Subjects are parsed; raw bodies are not (spec.md §4.8).
		for i := range v.Pairs {
			i := i
			leaves = append(leaves, leaf{
				get: func() ast.TextContent { return v.Pairs[i].Subject },
				set: func(t ast.TextContent) { v.Pairs[i].Subject = t },
			})
		}
		for _, ann := range v.Annotations {
			leaves = append(leaves, annotationLeaves(ann)...)
		}
	case *ast.Annotation:
		leaves = append(leaves, annotationLeaves(v)...)
	}
	return leaves
}

func annotationLeaves(ann *ast.Annotation) []leaf {
	switch ann.Body.Kind {
	case ast.InlineBody:
		return []leaf{{
			get: func() ast.TextContent { return ann.Body.Inline },
			set: func(t ast.TextContent) { ann.Body.Inline = t },
		}}
	case ast.BlockBody:
		return collectNodes(ann.Body.Block)
	default:
		return nil
	}
}
