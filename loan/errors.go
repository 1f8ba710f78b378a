/*
errors.go - Error types for loan construction and mutation

PURPOSE:
  All validation happens at the package boundary (New, AddSpecialPayment).
  The engine itself never raises: once terms are accepted, every schedule
  computation is total. Arithmetic hazards (zero rates, over-large special
  payments, unconverged root finding) are absorbed by safe defaults, not
  surfaced as errors.

USAGE:
  Callers can branch on the sentinel:

    if errors.Is(err, loan.ErrInvalidTerms) { ... }

  or inspect the field that failed:

    var terr *loan.TermsError
    if errors.As(err, &terr) { log.Println(terr.Field) }
*/
package loan

import (
	"errors"
	"fmt"
)

// ErrInvalidTerms is wrapped by every validation failure.
var ErrInvalidTerms = errors.New("invalid loan terms")

// TermsError reports which constructor field failed validation and why.
type TermsError struct {
	Field  string
	Reason string
}

func (e *TermsError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *TermsError) Unwrap() error { return ErrInvalidTerms }

func termsErr(field, format string, args ...any) error {
	return &TermsError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
