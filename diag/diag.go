// Package diag implements the lex error reporter (spec.md §7): an
// append-only collector of span-annotated diagnostics that, per spec.md §2,
// never halts the pipeline on its own — the caller decides what to do with
// what's collected.
package diag

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lexfmt/lex/span"
)

// Kind is one of the three diagnostic kinds from spec.md §7.
type Kind int

// Kind constants.
const (
	// StructuralWarning: a candidate element failed to match and degraded
	// to a paragraph.
	StructuralWarning Kind = iota

	// ContentCaution: a detected pattern violates a documented
	// restriction (e.g. a Session nested in a Definition); the offending
	// child is kept as a paragraph.
	ContentCaution

	// InvariantViolation: an implementation bug (indent stack underflow,
	// broken span envelope). These should halt the affected document.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case StructuralWarning:
		return "StructuralWarning"
	case ContentCaution:
		return "ContentCaution"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "InvalidKind"
	}
}

// Diagnostic carries everything spec.md §7 requires: kind, message, a
// primary span, and optional secondary spans (e.g. the matching opener of a
// construct that failed to close).
type Diagnostic struct {
	Kind       Kind
	Message    string
	Primary    span.Span
	Secondary  []span.Span
}

// Error lets a Diagnostic satisfy the error interface, so InvariantViolation
// diagnostics can be folded into a multierror.Error.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%v at %v: %s", d.Kind, d.Primary, d.Message)
}

// Reporter accumulates diagnostics across a single document's pipeline run.
// It is append-only: no stage may remove or mutate a previously reported
// diagnostic.
type Reporter struct {
	diags []Diagnostic
}

// Report appends one diagnostic.
func (r *Reporter) Report(d Diagnostic) {
	r.diags = append(r.diags, d)
}

// Warnf reports a StructuralWarning.
func (r *Reporter) Warnf(primary span.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: StructuralWarning, Primary: primary, Message: fmt.Sprintf(format, args...)})
}

// Cautionf reports a ContentCaution.
func (r *Reporter) Cautionf(primary span.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: ContentCaution, Primary: primary, Message: fmt.Sprintf(format, args...)})
}

// Invariantf reports an InvariantViolation.
func (r *Reporter) Invariantf(primary span.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: InvariantViolation, Primary: primary, Message: fmt.Sprintf(format, args...)})
}

// All returns every diagnostic reported so far, in report order.
func (r *Reporter) All() []Diagnostic {
	return r.diags
}

// InvariantErr folds every InvariantViolation diagnostic reported so far
// into a single error via hashicorp/go-multierror, or nil if there were
// none. This is the one place a lex diagnostic becomes a Go error, per
// spec.md §7 ("these indicate an implementation bug and should halt the
// affected document").
func (r *Reporter) InvariantErr() error {
	var merr *multierror.Error
	for _, d := range r.diags {
		if d.Kind == InvariantViolation {
			merr = multierror.Append(merr, d)
		}
	}
	if merr == nil {
		return nil
	}
	return merr
}
