package classify

import (
	"github.com/lexfmt/lex/line"
	"github.com/lexfmt/lex/token"
)

// RunDialogPass implements S5: after S4 classification, rescan lines in
// document order. A ListItem whose last two non-whitespace tokens are both
// '.' triggers Dialog for every subsequent non-Blank line, until a Blank
// line resets the state (spec.md §4.5). It returns a new slice; the input
// is not mutated.
func RunDialogPass(lines []ClassifiedLine) []ClassifiedLine {
	out := make([]ClassifiedLine, len(lines))
	copy(out, lines)

	dialog := false
	for i := range out {
		cl := &out[i]
		origType := cl.Type

		if origType == Blank {
			dialog = false
			continue
		}
		if dialog {
			cl.Type = Dialog
		}
		if origType == ListItem && endsInDoublePeriod(cl.Line) {
			dialog = true
		}
	}
	return out
}

func endsInDoublePeriod(l line.Line) bool {
	toks := l.Tokens
	end := len(toks)
	if end > 0 && toks[end-1].Kind == token.Newline {
		end--
	}

	var last [2]token.Token
	n := 0
	for i := end - 1; i >= 0 && n < 2; i-- {
		if toks[i].Kind == token.Whitespace {
			continue
		}
		last[n] = toks[i]
		n++
	}
	if n < 2 {
		return false
	}
	return last[0].Kind == token.Period && last[1].Kind == token.Period
}
