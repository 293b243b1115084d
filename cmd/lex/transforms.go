package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/alecthomas/repr"

	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/lex"
	"github.com/lexfmt/lex/token"
)

// transform renders one view of a lex.Result to w (spec.md §6 "CLI
// surface"). The enumerated names are stable external contracts even
// though the core package names differ internally.
type transform func(w io.Writer, res *lex.Result) error

var transforms = map[string]transform{
	"token-core-json":   tokenCoreJSON,
	"token-core-simple": tokenCoreSimple,
	"token-core-pprint": tokenCorePprint,
	"token-simple":      tokenSimple,
	"token-pprint":      tokenPprint,
	"token-line-json":   tokenLineJSON,
	"token-line-simple": tokenLineSimple,
	"token-line-pprint": tokenLinePprint,
	"ir-json":           irJSON,
	"ast-json":          astJSON,
	"ast-tag":           astTag,
	"ast-treeviz":       astTreeviz,
}

func listTransforms(w io.Writer) error {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

func tokenCoreJSON(w io.Writer, res *lex.Result) error {
	return jsonOut(w, res.Tokens)
}

func tokenCoreSimple(w io.Writer, res *lex.Result) error {
	return simpleTokens(w, res.Tokens)
}

func tokenCorePprint(w io.Writer, res *lex.Result) error {
	repr.New(w).Print(res.Tokens)
	return nil
}

func tokenSimple(w io.Writer, res *lex.Result) error {
	return simpleTokens(w, res.LiftedTokens)
}

func tokenPprint(w io.Writer, res *lex.Result) error {
	repr.New(w).Print(res.LiftedTokens)
	return nil
}

func simpleTokens(w io.Writer, toks []token.Token) error {
	for _, t := range toks {
		fmt.Fprintf(w, "%v\n", t)
	}
	return nil
}

func tokenLineJSON(w io.Writer, res *lex.Result) error {
	return jsonOut(w, res.Lines)
}

func tokenLineSimple(w io.Writer, res *lex.Result) error {
	for i, l := range res.Lines {
		fmt.Fprintf(w, "%d: blank=%v span=%v tokens=%d\n", i, l.Blank(), l.Span, len(l.Tokens))
	}
	return nil
}

func tokenLinePprint(w io.Writer, res *lex.Result) error {
	repr.New(w).Print(res.Lines)
	return nil
}

func irJSON(w io.Writer, res *lex.Result) error {
	return jsonOut(w, res.ClassifiedLines)
}

func astJSON(w io.Writer, res *lex.Result) error {
	return jsonOut(w, res.Document)
}

func astTag(w io.Writer, res *lex.Result) error {
	walkNode(w, res.Document, 0)
	return nil
}

func astTreeviz(w io.Writer, res *lex.Result) error {
	fmt.Fprintf(w, "Document %v\n", res.Document.Span)
	if res.Document.Title != nil {
		fmt.Fprintf(w, "  title %v\n", res.Document.Title.Span)
	}
	for _, n := range res.Document.Children {
		walkNode(w, n, 1)
	}
	return nil
}

func jsonOut(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// walkNode prints one node per line, indented by depth, shared by both
// ast-tag and ast-treeviz: the two transforms differ only in how the
// Document root itself is rendered above.
func walkNode(w io.Writer, n ast.Node, depth int) {
	indentPrint(w, depth, "%s %v\n", tagOf(n), n.NodeSpan())
	for _, child := range childrenOf(n) {
		walkNode(w, child, depth+1)
	}
}

func indentPrint(w io.Writer, depth int, format string, args ...any) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintf(w, format, args...)
}

func tagOf(n ast.Node) string {
	switch n.(type) {
	case *ast.Document:
		return "Document"
	case *ast.Session:
		return "Session"
	case *ast.Definition:
		return "Definition"
	case *ast.List:
		return "List"
	case *ast.Paragraph:
		return "Paragraph"
	case *ast.Verbatim:
		return "Verbatim"
	case *ast.Annotation:
		return "Annotation"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func childrenOf(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Document:
		return v.Children
	case *ast.Session:
		return v.Children
	case *ast.Definition:
		return v.Children
	case *ast.List:
		var out []ast.Node
		for _, item := range v.Items {
			out = append(out, item.Children...)
		}
		return out
	default:
		return nil
	}
}
