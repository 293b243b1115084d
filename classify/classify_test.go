package classify_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lex/classify"
	"github.com/lexfmt/lex/indent"
	"github.com/lexfmt/lex/line"
	"github.com/lexfmt/lex/scan"
)

func Example() {
	src := []byte("Term:\n- item\nplain text\n")
	lines := line.Group(indent.Lift(scan.Scan(src)))
	cls := classify.Classify(lines, src)
	for i, cl := range cls {
		fmt.Printf("%d: %v %q\n", i, cl.Type, cl.Body.Text(src))
	}
	// Output:
	// 0: Subject "Term:"
	// 1: ListItem "item"
	// 2: Paragraph "plain text"
}

func classifySrc(src string) ([]classify.ClassifiedLine, []byte) {
	b := []byte(src)
	lines := line.Group(indent.Lift(scan.Scan(b)))
	return classify.Classify(lines, b), b
}

func TestClassifyBlank(t *testing.T) {
	cls, _ := classifySrc("   \n")
	require.Len(t, cls, 1)
	assert.Equal(t, classify.Blank, cls[0].Type)
}

func TestClassifyAnnotationEnd(t *testing.T) {
	cls, _ := classifySrc("::\n")
	require.Len(t, cls, 1)
	assert.Equal(t, classify.AnnotationEnd, cls[0].Type)
}

func TestClassifyDataHeader(t *testing.T) {
	cls, src := classifySrc(":: Cache ttl=60, name=\"x y\"\n")
	require.Len(t, cls, 1)
	require.Equal(t, classify.DataHeader, cls[0].Type)
	assert.Equal(t, "Cache", cls[0].Label.Text(src))
	require.Len(t, cls[0].Params, 2)
	assert.Equal(t, "ttl", cls[0].Params[0].Key.Text(src))
	assert.Equal(t, "60", cls[0].Params[0].Value.Text(src))
	assert.False(t, cls[0].Params[0].Quoted)
	assert.Equal(t, "name", cls[0].Params[1].Key.Text(src))
	assert.True(t, cls[0].Params[1].Quoted)
	assert.Equal(t, `:: Cache ttl=60, name="x y"`, cls[0].Body.Text(src))
}

func TestClassifyAnnotationStartInline(t *testing.T) {
	cls, src := classifySrc(":: note :: this is the body\n")
	require.Len(t, cls, 1)
	require.Equal(t, classify.AnnotationStart, cls[0].Type)
	assert.Equal(t, "note", cls[0].Label.Text(src))
	assert.Equal(t, "this is the body", cls[0].InlineText.Text(src))
}

func TestClassifyHeaderWithoutClosingMarkerIsDataHeader(t *testing.T) {
	cls, src := classifySrc(":: note\n")
	require.Len(t, cls, 1)
	require.Equal(t, classify.DataHeader, cls[0].Type)
	assert.Equal(t, "note", cls[0].Label.Text(src))
}

func TestClassifySubject(t *testing.T) {
	cls, _ := classifySrc("Overview:\n")
	require.Len(t, cls, 1)
	assert.Equal(t, classify.Subject, cls[0].Type)
}

func TestClassifyParagraph(t *testing.T) {
	cls, _ := classifySrc("just some text\n")
	require.Len(t, cls, 1)
	assert.Equal(t, classify.Paragraph, cls[0].Type)
}

func TestClassifyListItem(t *testing.T) {
	cls, src := classifySrc("- an item\n")
	require.Len(t, cls, 1)
	require.Equal(t, classify.ListItem, cls[0].Type)
	assert.Equal(t, classify.DashMarker, cls[0].Marker.Kind)
	assert.Equal(t, "an item", cls[0].Body.Text(src))
}

func TestClassifySubjectOrListItem(t *testing.T) {
	cls, _ := classifySrc("- Code:\n")
	require.Len(t, cls, 1)
	assert.Equal(t, classify.SubjectOrListItem, cls[0].Type)
}

func TestClassifyNumberAndLetterMarkers(t *testing.T) {
	for _, tt := range []struct {
		src  string
		kind classify.MarkerKind
	}{
		{"1. first\n", classify.NumberMarker},
		{"a. first\n", classify.LetterMarker},
		{"(1) first\n", classify.ParenNumberMarker},
		{"(a) first\n", classify.ParenLetterMarker},
	} {
		cls, _ := classifySrc(tt.src)
		require.Len(t, cls, 1)
		assert.Equal(t, tt.kind, cls[0].Marker.Kind, tt.src)
	}
}

func TestClassifyAmbiguousSingleLetterRomanDegrades(t *testing.T) {
	// A single ambiguous roman letter like "V." is rejected as a marker
	// (spec.md §9 open question) and degrades to Subject/Paragraph.
	cls, _ := classifySrc("V. first\n")
	require.Len(t, cls, 1)
	assert.NotEqual(t, classify.RomanMarker, cls[0].Marker.Kind)
}

func TestClassifyMultiLetterRomanMarker(t *testing.T) {
	cls, _ := classifySrc("III. first\n")
	require.Len(t, cls, 1)
	assert.Equal(t, classify.RomanMarker, cls[0].Marker.Kind)
}

func TestDialogPassMarksFollowingLines(t *testing.T) {
	cls, _ := classifySrc("- Speaker..\nhello there\nmore words\n\nnot dialog\n")
	require.Len(t, cls, 5)
	cls = classify.RunDialogPass(cls)
	assert.Equal(t, classify.ListItem, cls[0].Type)
	assert.Equal(t, classify.Dialog, cls[1].Type)
	assert.Equal(t, classify.Dialog, cls[2].Type)
	assert.Equal(t, classify.Blank, cls[3].Type)
	assert.Equal(t, classify.Paragraph, cls[4].Type)
}
