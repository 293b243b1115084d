package inline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lex/ast"
)

func ref(t *testing.T, src string) ast.Inline {
	t.Helper()
	tc := parse(src)
	for _, n := range tc.Content {
		if n.Kind == ast.Reference {
			return n
		}
	}
	t.Fatalf("no Reference node found in %q", src)
	return ast.Inline{}
}

func TestReferenceClassifyTK(t *testing.T) {
	assert.Equal(t, ast.TK, ref(t, "see [TK]").RefKind)
	assert.Equal(t, ast.TK, ref(t, "see [TK-fixme]").RefKind)
}

func TestReferenceClassifyCitation(t *testing.T) {
	src := "see [@smith2020]"
	n := ref(t, src)
	assert.Equal(t, ast.Citation, n.RefKind)
	require.Len(t, n.Citations, 1)
	assert.Equal(t, "smith2020", n.Citations[0].Span.Text([]byte(src)))
	assert.True(t, n.Locator.Empty())
}

func TestReferenceClassifyCitationWithLocator(t *testing.T) {
	src := "see [@smith2020, p. 5]"
	n := ref(t, src)
	assert.Equal(t, ast.Citation, n.RefKind)
	require.Len(t, n.Citations, 1)
	assert.Equal(t, "smith2020", n.Citations[0].Span.Text([]byte(src)))
	assert.Equal(t, ", p. 5", n.Locator.Text([]byte(src)))
}

func TestReferenceClassifyMultipleCitationKeys(t *testing.T) {
	src := "see [@smith2020; @doe2021]"
	n := ref(t, src)
	assert.Equal(t, ast.Citation, n.RefKind)
	require.Len(t, n.Citations, 2)
	assert.Equal(t, "smith2020", n.Citations[0].Span.Text([]byte(src)))
	assert.Equal(t, "doe2021", n.Citations[1].Span.Text([]byte(src)))
}

func TestReferenceClassifyFootnoteLabeled(t *testing.T) {
	assert.Equal(t, ast.FootnoteLabeled, ref(t, "see [^note]").RefKind)
}

func TestReferenceClassifySession(t *testing.T) {
	assert.Equal(t, ast.SessionRef, ref(t, "see [#4.2]").RefKind)
	assert.Equal(t, ast.SessionRef, ref(t, "see [#4-2]").RefKind)
}

func TestReferenceClassifyUrl(t *testing.T) {
	assert.Equal(t, ast.Url, ref(t, "see [https://example.com]").RefKind)
	assert.Equal(t, ast.Url, ref(t, "see [mailto:a@b.com]").RefKind)
}

func TestReferenceClassifyFile(t *testing.T) {
	assert.Equal(t, ast.File, ref(t, "see [./path/to/file]").RefKind)
	assert.Equal(t, ast.File, ref(t, "see [/abs/path]").RefKind)
}

func TestReferenceClassifyFootnoteNumbered(t *testing.T) {
	assert.Equal(t, ast.FootnoteNumbered, ref(t, "see [42]").RefKind)
}

func TestReferenceClassifyGeneral(t *testing.T) {
	assert.Equal(t, ast.General, ref(t, "see [hello]").RefKind)
}

func TestReferenceClassifyUnsure(t *testing.T) {
	assert.Equal(t, ast.Unsure, ref(t, "see [!!!]").RefKind)
}
