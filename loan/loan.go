/*
loan.go - Construction and validation

PURPOSE:
  New is the single entry point for building a Loan. It validates every
  field of Terms, applies the documented defaults, and normalizes the
  terms (rate percent -> fraction, term -> payment count, dates -> UTC
  midnight). Everything downstream assumes this normalization.

VALIDATION CONTRACT:
  Every rejection wraps ErrInvalidTerms and names the field via TermsError.
  Once New succeeds, no schedule computation can fail.

SEE ALSO:
  - errors.go: TermsError
  - schedule.go: what the normalized fields feed
*/
package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincalc/loan-engine/daycount"
)

// New validates terms and builds a Loan.
func New(t Terms) (*Loan, error) {
	if !t.LoanAmount.IsPositive() {
		return nil, termsErr("LoanAmount", "must be positive, got %s", t.LoanAmount)
	}
	if t.InterestRate.IsNegative() {
		return nil, termsErr("InterestRate", "must be non-negative, got %s", t.InterestRate)
	}
	if t.LoanTerm < 1 {
		return nil, termsErr("LoanTerm", "must be at least 1, got %d", t.LoanTerm)
	}

	unit := t.TermUnit
	if unit == "" {
		unit = TermYears
	}
	if unit != TermYears && unit != TermMonths {
		return nil, termsErr("TermUnit", "must be %q or %q, got %q", TermYears, TermMonths, unit)
	}

	start, err := parseDate(t.StartDate)
	if err != nil {
		return nil, termsErr("StartDate", "must be a valid YYYY-MM-DD date, got %q", t.StartDate)
	}

	var firstPayment *time.Time
	if t.FirstPaymentDate != "" {
		fp, err := parseDate(t.FirstPaymentDate)
		if err != nil {
			return nil, termsErr("FirstPaymentDate", "must be a valid YYYY-MM-DD date, got %q", t.FirstPaymentDate)
		}
		if fp.Before(start) {
			return nil, termsErr("FirstPaymentDate", "cannot be before StartDate")
		}
		fp = dateKey(fp)
		firstPayment = &fp
	}

	annual := t.AnnualPayments
	if annual == 0 {
		annual = 12
	}
	switch annual {
	case 1, 2, 4, 12:
	default:
		return nil, termsErr("AnnualPayments", "must be 1, 2, 4 or 12, got %d", annual)
	}

	termMonths := t.LoanTerm
	if unit == TermYears {
		termMonths = t.LoanTerm * 12
	}
	numPayments := termMonths * annual / 12
	if numPayments < 1 {
		return nil, termsErr("LoanTerm", "term of %d months yields no payments at %d payments per year", termMonths, annual)
	}

	if t.InterestOnlyPeriod < 0 {
		return nil, termsErr("InterestOnlyPeriod", "must be non-negative, got %d", t.InterestOnlyPeriod)
	}
	if t.InterestOnlyPeriod > numPayments {
		return nil, termsErr("InterestOnlyPeriod", "%d exceeds total payment count %d", t.InterestOnlyPeriod, numPayments)
	}

	conv := t.Convention
	if conv == "" {
		conv = daycount.ThirtyE360
	}
	if !daycount.Valid(conv) {
		return nil, termsErr("Convention", "unknown day-count convention %q", conv)
	}

	loanType := t.Type
	if loanType == "" {
		loanType = Annuity
	}
	switch loanType {
	case Annuity, Linear, InterestOnly:
	default:
		return nil, termsErr("Type", "unknown loan type %q", loanType)
	}

	if t.PaymentAmount != nil && !t.PaymentAmount.IsPositive() {
		return nil, termsErr("PaymentAmount", "must be positive, got %s", t.PaymentAmount)
	}

	endOfMonth := true
	if t.EndOfMonth != nil {
		endOfMonth = *t.EndOfMonth
	}

	hundred := decimal.NewFromInt(100)
	return &Loan{
		principal:       t.LoanAmount,
		annualRate:      t.InterestRate.Div(hundred),
		start:           dateKey(start),
		firstPayment:    firstPayment,
		endOfMonth:      endOfMonth,
		annualPayments:  annual,
		numPayments:     numPayments,
		stepMonths:      12 / annual,
		interestOnly:    t.InterestOnlyPeriod,
		convention:      conv,
		loanType:        loanType,
		paymentOverride: t.PaymentAmount,
	}, nil
}
