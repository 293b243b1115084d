package classify

import (
	"regexp"

	"github.com/lexfmt/lex/span"
)

// romanPattern validates well-formed Roman numerals from 1 to 3999,
// resolving the open question in spec.md §9 ("Roman-numeral list markers").
var romanPattern = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// matchMarker recognizes a list-item marker at the start of body, per the
// grammar in spec.md §4.4 ("List marker recognition"). It returns the
// marker, the remainder of body after the marker and its one required
// trailing space, and whether a marker was found at all.
func matchMarker(body []byte, bodyStart int) (Marker, []byte, int, bool) {
	if len(body) == 0 {
		return Marker{}, nil, 0, false
	}

	switch {
	case body[0] == '-':
		return afterMarker(body, bodyStart, 1, DashMarker)

	case body[0] == '(':
		j := 1
		digitsStart := j
		for j < len(body) && isASCIIDigit(body[j]) {
			j++
		}
		if j > digitsStart && j < len(body) && body[j] == ')' {
			return afterMarker(body, bodyStart, j+1, ParenNumberMarker)
		}
		if len(body) >= 3 && isASCIILetter(body[1]) && body[2] == ')' {
			return afterMarker(body, bodyStart, 3, ParenLetterMarker)
		}
		return Marker{}, nil, 0, false

	case isASCIIDigit(body[0]):
		j := 0
		for j < len(body) && isASCIIDigit(body[j]) {
			j++
		}
		if j < len(body) && (body[j] == '.' || body[j] == ')') {
			return afterMarker(body, bodyStart, j+1, NumberMarker)
		}
		return Marker{}, nil, 0, false

	case isASCIILetter(body[0]):
		// Try the longest Roman-numeral run first; a multi-letter run is
		// unambiguous. A single ambiguous Roman letter (e.g. "V.") is
		// deliberately rejected here, per the open question, and falls
		// through to the plain single-letter marker check below, which
		// also rejects it — such lines degrade to Subject/Paragraph.
		j := 0
		for j < len(body) && isRomanLetter(body[j]) {
			j++
		}
		if j >= 2 && j < len(body) && (body[j] == '.' || body[j] == ')') {
			if romanPattern.MatchString(string(body[:j])) {
				return afterMarker(body, bodyStart, j+1, RomanMarker)
			}
		}

		if len(body) >= 2 && (body[1] == '.' || body[1] == ')') && !isRomanLetter(body[0]) {
			return afterMarker(body, bodyStart, 2, LetterMarker)
		}
		return Marker{}, nil, 0, false

	default:
		return Marker{}, nil, 0, false
	}
}

func afterMarker(body []byte, bodyStart, markEnd int, kind MarkerKind) (Marker, []byte, int, bool) {
	if markEnd >= len(body) || body[markEnd] != ' ' {
		return Marker{}, nil, 0, false
	}
	m := Marker{Kind: kind, Span: span.New(bodyStart, bodyStart+markEnd+1)}
	rest := body[markEnd+1:]
	restStart := bodyStart + markEnd + 1
	return m, rest, restStart, true
}

func isRomanLetter(b byte) bool {
	switch b {
	case 'I', 'V', 'X', 'L', 'C', 'D', 'M':
		return true
	default:
		return false
	}
}
