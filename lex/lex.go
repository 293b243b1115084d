// Package lex is the facade that runs S1-S8 over one source buffer and
// returns the resulting document plus every intermediate product, per
// spec.md §6 "External interfaces".
package lex

import (
	"context"

	"github.com/lexfmt/lex/assemble"
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/attach"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/diag"
	"github.com/lexfmt/lex/indent"
	"github.com/lexfmt/lex/inline"
	"github.com/lexfmt/lex/line"
	"github.com/lexfmt/lex/scan"
	"github.com/lexfmt/lex/token"
)

// Result is the full output of one Parse call: the final document plus
// every intermediate product a tool might want to inspect (spec.md §6
// "Optional intermediate products exposed for tooling").
type Result struct {
	Name string
	Src  []byte

	Tokens          []token.Token
	LiftedTokens    []token.Token
	Lines           []line.Line
	ClassifiedLines []classify.ClassifiedLine

	// PreInline is the document as S6/S7 left it, before S8 replaced every
	// leaf's identity wrap with a parsed inline tree.
	PreInline *ast.Document
	Document  *ast.Document

	Reporter *diag.Reporter
}

// Diagnostics returns every diagnostic collected across the run, in report
// order.
func (r *Result) Diagnostics() []diag.Diagnostic { return r.Reporter.All() }

// Parse runs the full S1-S8 pipeline over src. The only error it can return
// is the combined InvariantViolation error from the reporter (spec.md §7);
// every other structural mismatch degrades in place and shows up as a
// diagnostic instead.
func Parse(src []byte, name string) (*Result, error) {
	r := &diag.Reporter{}

	tokens := scan.Scan(src)
	lifted := indent.Lift(tokens)
	lines := line.Group(lifted)
	classified := classify.Classify(lines, src)
	classified = classify.RunDialogPass(classified)

	doc := assemble.Assemble(classified, src, r)
	attach.Run(doc)

	pre := cloneDocument(doc)
	inline.Run(src, doc)

	res := &Result{
		Name:             name,
		Src:              src,
		Tokens:           tokens,
		LiftedTokens:     lifted,
		Lines:            lines,
		ClassifiedLines:  classified,
		PreInline:        pre,
		Document:         doc,
		Reporter:         r,
	}
	return res, r.InvariantErr()
}

// ParseParallel is Parse, but runs S8 with inline.RunParallel instead of
// inline.Run (spec.md §5).
func ParseParallel(ctx context.Context, src []byte, name string, workers int) (*Result, error) {
	r := &diag.Reporter{}

	tokens := scan.Scan(src)
	lifted := indent.Lift(tokens)
	lines := line.Group(lifted)
	classified := classify.Classify(lines, src)
	classified = classify.RunDialogPass(classified)

	doc := assemble.Assemble(classified, src, r)
	attach.Run(doc)

	pre := cloneDocument(doc)
	if err := inline.RunParallel(ctx, src, doc, workers); err != nil {
		return nil, err
	}

	res := &Result{
		Name:             name,
		Src:              src,
		Tokens:           tokens,
		LiftedTokens:     lifted,
		Lines:            lines,
		ClassifiedLines:  classified,
		PreInline:        pre,
		Document:         doc,
		Reporter:         r,
	}
	return res, r.InvariantErr()
}
