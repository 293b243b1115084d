package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lex/assemble"
	"github.com/lexfmt/lex/ast"
	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/diag"
	"github.com/lexfmt/lex/indent"
	"github.com/lexfmt/lex/line"
	"github.com/lexfmt/lex/scan"
)

func parseDoc(t *testing.T, src string) (*ast.Document, *diag.Reporter) {
	t.Helper()
	b := []byte(src)
	lines := line.Group(indent.Lift(scan.Scan(b)))
	cls := classify.RunDialogPass(classify.Classify(lines, b))
	r := &diag.Reporter{}
	return assemble.Assemble(cls, b, r), r
}

func text(t *testing.T, tc ast.TextContent, src string) string {
	t.Helper()
	return tc.Span.Text([]byte(src))
}

// S1/S2: a Subject immediately followed by indented content is a
// Definition; the same Subject followed by a blank line then indented
// content is a Session instead.
func TestAssembleDefinitionVsSession(t *testing.T) {
	src := "Term:\n    a definition body\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	def, ok := doc.Children[0].(*ast.Definition)
	require.True(t, ok, "expected *ast.Definition, got %T", doc.Children[0])
	assert.Equal(t, "Term:", text(t, def.Subject, src))
	require.Len(t, def.Children, 1)
	para, ok := def.Children[0].(*ast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "a definition body", text(t, para.Lines[0], src))
}

func TestAssembleSessionBecauseOfBlankLine(t *testing.T) {
	src := "Term:\n\n    a session body\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	sess, ok := doc.Children[0].(*ast.Session)
	require.True(t, ok, "expected *ast.Session, got %T", doc.Children[0])
	assert.Equal(t, "Term:", text(t, sess.Title, src))
	require.Len(t, sess.Children, 1)
}

// S3: a lone "- item" with no sibling list item degrades to a paragraph.
// The one-line "intro line" followed by a blank is promoted to the title.
func TestAssembleSingleDashDegradesToParagraph(t *testing.T) {
	src := "intro line\n\n- only one item\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)

	require.NotNil(t, doc.Title)
	assert.Equal(t, "intro line", text(t, *doc.Title, src))

	para, ok := doc.Children[0].(*ast.Paragraph)
	require.True(t, ok, "expected the singleton list item to degrade to *ast.Paragraph, got %T", doc.Children[0])
	assert.Equal(t, "- only one item", text(t, para.Lines[0], src))
}

// S4: two or more list items with no preceding blank never form a List at
// all — they merge into the preceding paragraph instead.
func TestAssembleListRequiresPrecedingBlank(t *testing.T) {
	src := "intro\n- a\n- b\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	para, ok := doc.Children[0].(*ast.Paragraph)
	require.True(t, ok, "expected everything to merge into one *ast.Paragraph, got %T", doc.Children[0])
	require.Len(t, para.Lines, 3)
	assert.Equal(t, "intro", text(t, para.Lines[0], src))
	assert.Equal(t, "- a", text(t, para.Lines[1], src))
	assert.Equal(t, "- b", text(t, para.Lines[2], src))
}

// The same two items, preceded by a blank line, do form a List.
func TestAssembleListWithPrecedingBlank(t *testing.T) {
	src := "\n- a\n- b\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	list, ok := doc.Children[0].(*ast.List)
	require.True(t, ok, "expected *ast.List, got %T", doc.Children[0])
	require.Len(t, list.Items, 2)
	assert.Equal(t, ast.StyleDash, list.Style)
	assert.Equal(t, "a", text(t, list.Items[0].Head, src))
	assert.Equal(t, "b", text(t, list.Items[1].Head, src))
}

// S5: Verbatim preserves the raw body bytes exactly, independent of
// classification.
func TestAssembleVerbatimPreservesContent(t *testing.T) {
	src := "Code:\n    line one\n    line two\n:: lang language=python\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	v, ok := doc.Children[0].(*ast.Verbatim)
	require.True(t, ok, "expected *ast.Verbatim, got %T", doc.Children[0])
	require.Len(t, v.Pairs, 1)
	assert.Equal(t, "Code:", text(t, v.Pairs[0].Subject, src))
	assert.Equal(t, "    line one\n    line two\n", v.Pairs[0].Body.Text([]byte(src)))
	assert.Equal(t, "lang", v.Closing.Label)
	require.Len(t, v.Closing.Params, 1)
	assert.Equal(t, "python", v.Closing.Params[0].Value)
}

func TestAssembleVerbatimMultiplePairsShareCloser(t *testing.T) {
	src := "First:\n    a\nSecond:\n    b\n:: done\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	v, ok := doc.Children[0].(*ast.Verbatim)
	require.True(t, ok, "expected *ast.Verbatim, got %T", doc.Children[0])
	require.Len(t, v.Pairs, 2)
	assert.Equal(t, "First:", text(t, v.Pairs[0].Subject, src))
	assert.Equal(t, "Second:", text(t, v.Pairs[1].Subject, src))
}

func TestAssembleAnnotationInlineForm(t *testing.T) {
	src := ":: note :: this is it\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	ann, ok := doc.Children[0].(*ast.Annotation)
	require.True(t, ok, "expected *ast.Annotation, got %T", doc.Children[0])
	assert.Equal(t, "note", ann.Data.Label)
	assert.Equal(t, ast.InlineBody, ann.Body.Kind)
	assert.Equal(t, "this is it", text(t, ann.Body.Inline, src))
}

func TestAssembleAnnotationBlockForm(t *testing.T) {
	src := ":: note ::\n    body text\n::\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	ann, ok := doc.Children[0].(*ast.Annotation)
	require.True(t, ok, "expected *ast.Annotation, got %T", doc.Children[0])
	assert.Equal(t, ast.BlockBody, ann.Body.Kind)
	require.Len(t, ann.Body.Block, 1)
}

func TestAssembleAnnotationMarkerFormWithoutBody(t *testing.T) {
	src := ":: todo ::\n"
	doc, _ := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	ann, ok := doc.Children[0].(*ast.Annotation)
	require.True(t, ok, "expected *ast.Annotation, got %T", doc.Children[0])
	assert.Equal(t, ast.NoBody, ann.Body.Kind)
}

func TestAssembleDocumentTitlePromotion(t *testing.T) {
	src := "My Document\n\nfirst paragraph\n"
	doc, _ := parseDoc(t, src)
	require.NotNil(t, doc.Title)
	assert.Equal(t, "My Document", text(t, *doc.Title, src))
	require.Len(t, doc.Children, 1)
}

func TestAssembleDefinitionExcludesSession(t *testing.T) {
	// A Session nested directly under a Definition is not allowed: it
	// degrades to a paragraph with a diagnostic instead.
	src := "Outer:\n    Inner:\n\n        deep\n"
	doc, r := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	def, ok := doc.Children[0].(*ast.Definition)
	require.True(t, ok)
	require.Len(t, def.Children, 1)
	para, isParagraph := def.Children[0].(*ast.Paragraph)
	require.True(t, isParagraph, "expected the disallowed nested session to demote to a paragraph")
	require.Len(t, para.Lines, 2, "the demoted paragraph must preserve every consumed line, not just the subject")
	assert.Equal(t, "Inner:", text(t, para.Lines[0], src))
	assert.Equal(t, "deep", text(t, para.Lines[1], src))

	var sawCaution bool
	for _, d := range r.All() {
		if d.Kind == diag.ContentCaution {
			sawCaution = true
		}
	}
	assert.True(t, sawCaution)
}

// Same restriction, inside an Annotation's block body instead of a
// Definition: the disallowed Session still demotes to a paragraph that
// preserves every line it consumed, not just the subject.
func TestAssembleSessionInsideAnnotationDemotesToParagraph(t *testing.T) {
	src := ":: note ::\n    Inner:\n\n        deep\n::\n"
	doc, r := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	ann, ok := doc.Children[0].(*ast.Annotation)
	require.True(t, ok, "expected *ast.Annotation, got %T", doc.Children[0])
	require.Equal(t, ast.BlockBody, ann.Body.Kind)
	require.Len(t, ann.Body.Block, 1)
	para, ok := ann.Body.Block[0].(*ast.Paragraph)
	require.True(t, ok, "expected the disallowed nested session to demote to a paragraph")
	require.Len(t, para.Lines, 2)
	assert.Equal(t, "Inner:", text(t, para.Lines[0], src))
	assert.Equal(t, "deep", text(t, para.Lines[1], src))

	var sawCaution bool
	for _, d := range r.All() {
		assert.NotEqual(t, diag.InvariantViolation, d.Kind, "demotion must not desync the cursor's depth bookkeeping")
		if d.Kind == diag.ContentCaution {
			sawCaution = true
		}
	}
	assert.True(t, sawCaution)
	assert.NoError(t, r.InvariantErr())
}

// A block-form Annotation nested inside another Annotation's block body is
// disallowed (spec.md §7.2): it demotes to a paragraph that consumes its
// own indented body and closing "::" in full, so the cursor lands back at
// the outer annotation's own depth instead of overshooting and tripping
// the depth-mismatch InvariantViolation.
func TestAssembleAnnotationNestedInAnnotationConsumesFullSpan(t *testing.T) {
	src := ":: outer ::\n    :: inner ::\n        body line\n    ::\n    after\n::\n"
	doc, r := parseDoc(t, src)
	require.Len(t, doc.Children, 1)
	outer, ok := doc.Children[0].(*ast.Annotation)
	require.True(t, ok, "expected *ast.Annotation, got %T", doc.Children[0])
	assert.Equal(t, "outer", outer.Data.Label)
	require.Equal(t, ast.BlockBody, outer.Body.Kind)
	require.Len(t, outer.Body.Block, 1)

	para, ok := outer.Body.Block[0].(*ast.Paragraph)
	require.True(t, ok, "expected the disallowed nested annotation to demote to a paragraph")
	require.Len(t, para.Lines, 4)
	assert.Equal(t, ":: inner ::", text(t, para.Lines[0], src))
	assert.Equal(t, "body line", text(t, para.Lines[1], src))
	assert.Equal(t, "::", text(t, para.Lines[2], src))
	assert.Equal(t, "after", text(t, para.Lines[3], src))

	var sawCaution bool
	for _, d := range r.All() {
		assert.NotEqual(t, diag.InvariantViolation, d.Kind, "demotion must not desync the cursor's depth bookkeeping")
		if d.Kind == diag.ContentCaution {
			sawCaution = true
		}
	}
	assert.True(t, sawCaution)
	assert.NoError(t, r.InvariantErr())
}
