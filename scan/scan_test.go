package scan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lex/scan"
	"github.com/lexfmt/lex/token"
)

func Example() {
	toks := scan.Scan([]byte("a: b\n"))
	for _, t := range toks {
		fmt.Printf("%+v\n", t)
	}
	// Output:
	// Char@[0:1)
	// Colon@[1:2)
	// Whitespace@[2:3) run=Spaces
	// Char@[3:4)
	// Newline@[4:5)
}

func TestScanKinds(t *testing.T) {
	toks := scan.Scan([]byte(":: a-b.c (x=1)\n"))
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.DoubleColon, token.Whitespace, token.Char, token.Dash, token.Char,
		token.Period, token.Char, token.Whitespace, token.OpenParen, token.Char,
		token.Char, token.Char, token.CloseParen, token.Newline,
	}, kinds)
}

func TestScanReproducesSource(t *testing.T) {
	src := []byte("Cache:\r\n    line one\n\tline two\n")
	toks := scan.Scan(src)
	require.NotEmpty(t, toks)

	var out []byte
	for _, tok := range toks {
		out = append(out, tok.Span.Slice(src)...)
	}
	assert.Equal(t, src, out)
}

func TestScanSingleColonVsDouble(t *testing.T) {
	toks := scan.Scan([]byte(": ::"))
	require.Len(t, toks, 3)
	assert.Equal(t, token.Colon, toks[0].Kind)
	assert.Equal(t, token.Whitespace, toks[1].Kind)
	assert.Equal(t, token.DoubleColon, toks[2].Kind)
}

func TestScanWhitespaceRunsBreakOnKindChange(t *testing.T) {
	toks := scan.Scan([]byte("  \t\t  "))
	require.Len(t, toks, 3)
	assert.Equal(t, token.Spaces, toks[0].Run)
	assert.Equal(t, token.Tabs, toks[1].Run)
	assert.Equal(t, token.Spaces, toks[2].Run)
}

func TestScanBareCRIsChar(t *testing.T) {
	toks := scan.Scan([]byte("a\rb\n"))
	require.Len(t, toks, 4)
	assert.Equal(t, token.Char, toks[1].Kind)
	assert.Equal(t, "\r", toks[1].Span.Text([]byte("a\rb\n")))
}

func TestScanEmpty(t *testing.T) {
	assert.Empty(t, scan.Scan(nil))
	assert.Empty(t, scan.Scan([]byte{}))
}
