package classify

import (
	"unicode/utf8"

	"github.com/lexfmt/lex/span"
)

// dataHeader is the result of parsing a "::  label (params)? (:: text?)?"
// prefix, shared by DataHeader (spec.md §4.4 rule 4) and AnnotationStart
// (rule 3).
type dataHeader struct {
	label        span.Span
	params       []Param
	closed       bool // a trailing "::" was found: AnnotationStart, not DataHeader
	trailingText span.Span
}

// parseDataHeader attempts to parse body (a line's content, leading
// whitespace and trailing newline already trimmed) as a data header prefix.
// bodyStart is body's offset within the source buffer, for span construction.
func parseDataHeader(body []byte, bodyStart int) (dataHeader, bool) {
	var hdr dataHeader

	if len(body) < 2 || body[0] != ':' || body[1] != ':' {
		return hdr, false
	}
	i := 2

	wsStart := i
	for i < len(body) && isSpaceByte(body[i]) {
		i++
	}
	if i == wsStart {
		return hdr, false
	}

	labelStart := i
	if ok, w := isLabelStart(body, i); !ok {
		return hdr, false
	} else {
		i += w
	}
	for {
		ok, w := isLabelCont(body, i)
		if !ok {
			break
		}
		i += w
	}
	labelEnd := i
	hdr.label = span.New(bodyStart+labelStart, bodyStart+labelEnd)

	if params, newI, ok := parseParams(body, i, bodyStart); ok {
		hdr.params = params
		i = newI
	}

	for i < len(body) && isSpaceByte(body[i]) {
		i++
	}

	if i+1 < len(body) && body[i] == ':' && body[i+1] == ':' {
		hdr.closed = true
		i += 2
		for i < len(body) && isSpaceByte(body[i]) {
			i++
		}
		if i < len(body) {
			hdr.trailingText = span.New(bodyStart+i, bodyStart+len(body))
		}
		return hdr, true
	}

	if i == len(body) {
		return hdr, true
	}
	return hdr, false
}

// parseParams parses a leading run of "WS key=value (, key=value)*". It
// returns ok=false (without error) if there is no whitespace-then-key at i,
// meaning simply that no params are present — not a parse failure of the
// enclosing header.
func parseParams(body []byte, i, bodyStart int) ([]Param, int, bool) {
	save := i
	wsStart := i
	for i < len(body) && isSpaceByte(body[i]) {
		i++
	}
	if i == wsStart {
		return nil, save, false
	}
	if ok, _ := isLabelStart(body, i); !ok {
		return nil, save, false
	}

	var params []Param
	for {
		keyStart := i
		for {
			ok, w := isKeyCont(body, i)
			if !ok {
				break
			}
			i += w
		}
		keyEnd := i
		if keyEnd == keyStart || i >= len(body) || body[i] != '=' {
			return nil, save, false
		}
		key := span.New(bodyStart+keyStart, bodyStart+keyEnd)
		i++ // consume '='

		var value span.Span
		quoted := false
		if i < len(body) && body[i] == '"' {
			quoted = true
			valStart := i // the span keeps the surrounding quotes
			i++
			for i < len(body) && body[i] != '"' {
				if body[i] == '\\' && i+1 < len(body) {
					i += 2
				} else {
					i++
				}
			}
			if i >= len(body) {
				return nil, save, false // unterminated quoted value
			}
			i++ // consume closing quote
			value = span.New(bodyStart+valStart, bodyStart+i)
		} else {
			valStart := i
			for i < len(body) && isUnquotedValueByte(body[i]) {
				i++
			}
			if i == valStart {
				return nil, save, false
			}
			value = span.New(bodyStart+valStart, bodyStart+i)
		}

		params = append(params, Param{Key: key, Value: value, Quoted: quoted})

		j := i
		for j < len(body) && isSpaceByte(body[j]) {
			j++
		}
		if j < len(body) && body[j] == ',' {
			j++
			for j < len(body) && isSpaceByte(body[j]) {
				j++
			}
			i = j
			continue
		}
		break
	}
	return params, i, true
}

func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' }

func isASCIILetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// isLabelStart reports whether body[i:] begins with a label-starting
// character (an ASCII letter, or permissively any non-ASCII rune), and how
// many bytes it occupies.
func isLabelStart(body []byte, i int) (ok bool, width int) {
	if i >= len(body) {
		return false, 0
	}
	if isASCIILetter(body[i]) {
		return true, 1
	}
	if body[i] < 0x80 {
		return false, 1
	}
	_, w := utf8.DecodeRune(body[i:])
	return true, w
}

// isLabelCont reports whether body[i:] continues a label: letter, digit,
// '_', '-', or '.' (spec.md §4.4 "Label grammar").
func isLabelCont(body []byte, i int) (ok bool, width int) {
	if i >= len(body) {
		return false, 0
	}
	b := body[i]
	if isASCIILetter(b) || isASCIIDigit(b) || b == '_' || b == '-' || b == '.' {
		return true, 1
	}
	if b < 0x80 {
		return false, 1
	}
	_, w := utf8.DecodeRune(body[i:])
	return true, w
}

// isKeyCont is the label grammar without '.' (spec.md §4.4 "Parameters":
// `key = letter (letter | digit | '_' | '-')*`).
func isKeyCont(body []byte, i int) (ok bool, width int) {
	if i >= len(body) {
		return false, 0
	}
	b := body[i]
	if isASCIILetter(b) || isASCIIDigit(b) || b == '_' || b == '-' {
		return true, 1
	}
	if b < 0x80 {
		return false, 1
	}
	_, w := utf8.DecodeRune(body[i:])
	return true, w
}

func isUnquotedValueByte(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '-' || b == '.'
}
