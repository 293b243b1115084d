// Package token defines the core token vocabulary produced by scan (S1) and
// indent (S2): the flat, line-agnostic stream that every later stage builds
// on.
package token

import (
	"fmt"
	"io"

	"github.com/lexfmt/lex/span"
)

// Kind identifies the variant of a Token, per spec.md §3 "Core token".
type Kind int

// Kind constants. The zero value is never produced by Scan.
const (
	noKind Kind = iota

	// Char is one non-structural printable character.
	Char

	// Whitespace is a maximal run of a single whitespace kind: see Run.
	Whitespace

	// Newline terminates a logical line. Its span includes a preceding
	// CR byte, if the source used CRLF endings there.
	Newline

	// Colon is a lone ':' not part of a DoubleColon.
	Colon

	// DoubleColon is the lex marker: two ':' with no intervening byte.
	DoubleColon

	// Dash is '-'.
	Dash

	// Period is '.'.
	Period

	// OpenParen is '('.
	OpenParen

	// CloseParen is ')'.
	CloseParen

	// Indent is a synthetic, zero-width token marking one step (+1) of
	// increased structural depth. Emitted by indent (S2).
	Indent

	// Dedent is a synthetic, zero-width token marking one step (-1) of
	// decreased structural depth. Emitted by indent (S2).
	Dedent
)

// Run distinguishes the kind of a Whitespace token's run.
type Run int

// Run constants.
const (
	NoRun Run = iota
	Spaces
	Tabs
)

// Token is one element of the core token stream.
type Token struct {
	Kind Kind
	Span span.Span

	// Run is meaningful only when Kind == Whitespace: which rune the run
	// is made of (Spaces or Tabs; mixing breaks the run per spec.md §4.1).
	Run Run

	// Level is meaningful only when Kind == Indent (+1) or Dedent (-1):
	// the step delta synthesized by indent (S2).
	Level int
}

// MakeChar returns a Char token covering a single rune at the given span.
func MakeChar(sp span.Span) Token { return Token{Kind: Char, Span: sp} }

// MakeWhitespace returns a Whitespace token of the given run kind.
func MakeWhitespace(sp span.Span, run Run) Token {
	return Token{Kind: Whitespace, Span: sp, Run: run}
}

// MakeIndent returns a synthetic Indent token at the zero-width offset.
func MakeIndent(offset int) Token {
	return Token{Kind: Indent, Span: span.At(offset), Level: 1}
}

// MakeDedent returns a synthetic Dedent token at the zero-width offset.
func MakeDedent(offset int) Token {
	return Token{Kind: Dedent, Span: span.At(offset), Level: -1}
}

// Text returns the source bytes the token covers, as a string.
func (t Token) Text(src []byte) string { return t.Span.Text(src) }

// Structural reports whether t is a synthetic Indent/Dedent token, which
// carries no source bytes of its own (though it has a real offset).
func (t Token) Structural() bool { return t.Kind == Indent || t.Kind == Dedent }

// Format implements fmt.Formatter for improved Printf display, following the
// same "%v terse, %+v verbose" convention as scandown.Block.
func (t Token) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "%v@%v", t.Kind, t.Span)
		if t.Kind == Whitespace {
			fmt.Fprintf(f, " run=%v", t.Run)
		}
		if t.Structural() {
			fmt.Fprintf(f, " level=%+d", t.Level)
		}
		return
	}
	io.WriteString(f, t.Kind.String())
}

// Format implements fmt.Formatter for Kind.
func (k Kind) Format(f fmt.State, verb rune) {
	io.WriteString(f, k.String())
}

// String names the Kind.
func (k Kind) String() string {
	switch k {
	case Char:
		return "Char"
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	case Colon:
		return "Colon"
	case DoubleColon:
		return "DoubleColon"
	case Dash:
		return "Dash"
	case Period:
		return "Period"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case Indent:
		return "Indent"
	case Dedent:
		return "Dedent"
	default:
		return fmt.Sprintf("InvalidKind%d", int(k))
	}
}

// String names the Run.
func (r Run) String() string {
	switch r {
	case Spaces:
		return "Spaces"
	case Tabs:
		return "Tabs"
	default:
		return "NoRun"
	}
}
